package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadline/internal/domain/entity"
	"threadline/internal/registry"
	"threadline/pkg/errors"
)

func seedRegistry() *registry.Registry {
	return registry.New([]entity.Brand{
		{
			ID:      "bebe",
			Name:    "Bebe",
			Tagline: "Contemporary fashion",
			Source:  entity.SourceFeed, FeedDomain: "www.bebe.com",
			Active: true,
		},
		{
			ID:      "everlane",
			Name:    "Everlane",
			Tagline: "Radical transparency",
			Source:  entity.SourceStatic,
			Active:  true,
			Products: []entity.Product{
				{ID: "ev-1", Title: "Organic Cotton Crew", Images: []entity.ProductImage{{URL: "https://cdn.example.com/crew.jpg", Alt: "Organic Cotton Crew"}}},
			},
		},
	})
}

func TestListSeedsFromRegistry(t *testing.T) {
	repo := NewMemoryBrandRepository(seedRegistry())

	brands, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, "bebe", brands[0].ID)
	assert.Equal(t, "everlane", brands[1].ID)
}

func TestGetByIDUnknownBrand(t *testing.T) {
	repo := NewMemoryBrandRepository(seedRegistry())

	_, err := repo.GetByID(context.Background(), "no-such-brand")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSaveUpsertsAndAppendsNewBrands(t *testing.T) {
	repo := NewMemoryBrandRepository(seedRegistry())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Brand{
		ID: "reformation", Name: "Reformation", Tagline: "Sustainable style", Source: entity.SourceStatic, Active: true,
	}))

	brands, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 3)
	assert.Equal(t, "reformation", brands[2].ID, "new brands append to the end")

	// Saving an existing id overwrites in place without reordering.
	require.NoError(t, repo.Save(ctx, &entity.Brand{
		ID: "bebe", Name: "Bebe Updated", Tagline: "Contemporary fashion", Source: entity.SourceFeed, FeedDomain: "www.bebe.com", Active: true,
	}))

	brands, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 3)
	assert.Equal(t, "Bebe Updated", brands[0].Name)
}

func TestDeleteRemovesBrand(t *testing.T) {
	repo := NewMemoryBrandRepository(seedRegistry())
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "bebe"))

	_, err := repo.GetByID(ctx, "bebe")
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	err = repo.Delete(ctx, "bebe")
	assert.True(t, errors.Is(err, "NOT_FOUND"), "deleting twice fails the second time")
}

func TestEditsDoNotSurviveANewStore(t *testing.T) {
	reg := seedRegistry()
	ctx := context.Background()

	first := NewMemoryBrandRepository(reg)
	require.NoError(t, first.Delete(ctx, "bebe"))
	require.NoError(t, first.Save(ctx, &entity.Brand{ID: "acne", Name: "Acne Studios", Tagline: "Stockholm", Active: true}))

	// A fresh store over the same registry sees the original seed, not the
	// first store's session edits.
	second := NewMemoryBrandRepository(reg)
	brands, err := second.List(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, "bebe", brands[0].ID)
}

func TestStoredStateIsNotAliased(t *testing.T) {
	repo := NewMemoryBrandRepository(seedRegistry())
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "everlane")
	require.NoError(t, err)
	got.Products[0].Title = "mutated"
	got.Name = "mutated"

	again, err := repo.GetByID(ctx, "everlane")
	require.NoError(t, err)
	assert.Equal(t, "Everlane", again.Name)
	assert.Equal(t, "Organic Cotton Crew", again.Products[0].Title)
}
