package repository

import (
	"context"

	"threadline/internal/domain/entity"
)

type BrandRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Brand, error)
	List(ctx context.Context) ([]entity.Brand, error)
	Save(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id string) error
}
