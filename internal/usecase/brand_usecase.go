package usecase

import (
	"context"
	"encoding/json"
	"time"

	"threadline/internal/domain/entity"
	"threadline/internal/domain/repository"
	"threadline/pkg/errors"
)

// BrandUseCase drives the admin brand CRUD surface. All writes land in the
// session store only; nothing here survives a restart.
type BrandUseCase struct {
	brandRepo repository.BrandRepository
}

func NewBrandUseCase(brandRepo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{
		brandRepo: brandRepo,
	}
}

func (uc *BrandUseCase) ListBrands(ctx context.Context) ([]entity.Brand, error) {
	return uc.brandRepo.List(ctx)
}

func (uc *BrandUseCase) GetBrandByID(ctx context.Context, id string) (*entity.Brand, error) {
	return uc.brandRepo.GetByID(ctx, id)
}

// SaveBrand creates or replaces a brand. Required fields are validated here so
// the admin UI gets the combined message back verbatim.
func (uc *BrandUseCase) SaveBrand(ctx context.Context, brand entity.Brand) (*entity.Brand, error) {
	if brand.ID == "" || brand.Name == "" || brand.Tagline == "" {
		return nil, errors.BadRequest("Missing required fields (id, name, tagline)", nil)
	}

	now := time.Now().UTC()
	brand.Metadata.UpdatedAt = now
	if brand.Metadata.CreatedAt.IsZero() {
		brand.Metadata.CreatedAt = now
	}

	if err := uc.brandRepo.Save(ctx, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

// ReplaceBrand overwrites an existing brand wholesale; unknown ids are a 404,
// unlike SaveBrand which upserts.
func (uc *BrandUseCase) ReplaceBrand(ctx context.Context, brand entity.Brand) (*entity.Brand, error) {
	if brand.ID == "" {
		return nil, errors.BadRequest("Brand ID is required", nil)
	}

	if _, err := uc.brandRepo.GetByID(ctx, brand.ID); err != nil {
		return nil, err
	}

	brand.Metadata.UpdatedAt = time.Now().UTC()

	if err := uc.brandRepo.Save(ctx, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

// PatchBrand shallow-merges a partial JSON payload over the stored brand.
// The id cannot be changed, createdAt is preserved, and updatedAt is always
// refreshed.
func (uc *BrandUseCase) PatchBrand(ctx context.Context, id string, patch json.RawMessage) (*entity.Brand, error) {
	existing, err := uc.brandRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if err := json.Unmarshal(patch, &merged); err != nil {
		return nil, errors.BadRequest("Invalid brand payload", err)
	}

	merged.ID = id
	merged.Metadata.CreatedAt = existing.Metadata.CreatedAt
	merged.Metadata.UpdatedAt = time.Now().UTC()

	if err := uc.brandRepo.Save(ctx, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// DeleteBrand removes a brand from the session store and returns the removed
// record so callers can reference its name.
func (uc *BrandUseCase) DeleteBrand(ctx context.Context, id string) (*entity.Brand, error) {
	brand, err := uc.brandRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.brandRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return brand, nil
}
