package repository

import (
	"context"
	"sync"

	"threadline/internal/domain/entity"
	"threadline/internal/domain/repository"
	"threadline/internal/registry"
	"threadline/pkg/errors"
)

// memoryBrandRepository is the session store behind the admin API: a
// process-lifetime mutable clone of the static brand registry, lazily built on
// first access. Not durable by design; a restart silently reverts every edit
// to the registry's contents.
type memoryBrandRepository struct {
	registry *registry.Registry

	mu     sync.RWMutex
	ids    []string
	brands map[string]entity.Brand
}

func NewMemoryBrandRepository(reg *registry.Registry) repository.BrandRepository {
	return &memoryBrandRepository{
		registry: reg,
	}
}

// init clones the registry into the mutable map. Callers must hold mu.
func (r *memoryBrandRepository) init() {
	if r.brands != nil {
		return
	}

	seed := r.registry.All()
	r.ids = make([]string, 0, len(seed))
	r.brands = make(map[string]entity.Brand, len(seed))
	for _, b := range seed {
		r.ids = append(r.ids, b.ID)
		r.brands[b.ID] = cloneBrand(b)
	}
}

func (r *memoryBrandRepository) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	r.mu.Lock()
	r.init()
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.brands[id]
	if !ok {
		return nil, errors.NotFound("Brand", nil)
	}
	out := cloneBrand(b)
	return &out, nil
}

func (r *memoryBrandRepository) List(ctx context.Context) ([]entity.Brand, error) {
	r.mu.Lock()
	r.init()
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Brand, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, cloneBrand(r.brands[id]))
	}
	return out, nil
}

func (r *memoryBrandRepository) Save(ctx context.Context, brand *entity.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()

	if _, exists := r.brands[brand.ID]; !exists {
		r.ids = append(r.ids, brand.ID)
	}
	r.brands[brand.ID] = cloneBrand(*brand)
	return nil
}

func (r *memoryBrandRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()

	if _, exists := r.brands[id]; !exists {
		return errors.NotFound("Brand", nil)
	}
	delete(r.brands, id)
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}

// cloneBrand copies a brand along with its slice fields so stored state is
// never aliased by callers.
func cloneBrand(b entity.Brand) entity.Brand {
	out := b
	if b.Categories != nil {
		out.Categories = append([]entity.CategoryAssignment(nil), b.Categories...)
	}
	if b.Products != nil {
		out.Products = make([]entity.Product, len(b.Products))
		for i, p := range b.Products {
			out.Products[i] = p
			if p.Images != nil {
				out.Products[i].Images = append([]entity.ProductImage(nil), p.Images...)
			}
		}
	}
	return out
}
