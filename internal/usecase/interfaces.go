package usecase

import (
	"context"

	"threadline/internal/domain/entity"
)

// FeedService pulls and normalizes a merchant's public product feed. Outages
// surface as an empty slice, never an error.
type FeedService interface {
	FetchBrandProducts(ctx context.Context, domain string) []entity.ProductDetail
}
