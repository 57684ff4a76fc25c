package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadline/internal/domain/entity"
)

func testBrand(id, name string, mutate func(*entity.Brand)) entity.Brand {
	b := entity.Brand{
		ID:      id,
		Name:    name,
		Tagline: name + " tagline",
		Source:  entity.SourceStatic,
		Active:  true,
	}
	if mutate != nil {
		mutate(&b)
	}
	return b
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	r := New([]entity.Brand{
		testBrand("zeta", "Zeta", nil),
		testBrand("alpha", "Alpha", nil),
		testBrand("mid", "Mid", nil),
	})

	ids := make([]string, 0, 3)
	for _, b := range r.All() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, ids)
}

func TestByIDUnknownReturnsNil(t *testing.T) {
	r := New([]entity.Brand{testBrand("bebe", "Bebe", nil)})

	require.NotNil(t, r.ByID("bebe"))
	assert.Nil(t, r.ByID("no-such-brand"))
}

func TestActiveFiltersInactiveBrands(t *testing.T) {
	r := New([]entity.Brand{
		testBrand("live", "Live", nil),
		testBrand("paused", "Paused", func(b *entity.Brand) { b.Active = false }),
	})

	active := r.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "live", active[0].ID)
}

func TestTrendingOrdersByAscendingPriority(t *testing.T) {
	promoted := func(priority int) func(*entity.Brand) {
		return func(b *entity.Brand) {
			b.Trending = entity.TrendingConfig{Promoted: true, Priority: priority, Active: true}
		}
	}

	r := New([]entity.Brand{
		testBrand("five", "Five", promoted(5)),
		testBrand("one", "One", promoted(1)),
		testBrand("three", "Three", promoted(3)),
		testBrand("unpromoted", "Unpromoted", nil),
		testBrand("inactive-campaign", "Inactive", func(b *entity.Brand) {
			b.Trending = entity.TrendingConfig{Promoted: true, Priority: 0, Active: false}
		}),
	})

	got := r.Trending()
	require.Len(t, got, 3)
	assert.Equal(t, "one", got[0].ID)
	assert.Equal(t, "three", got[1].ID)
	assert.Equal(t, "five", got[2].ID)
}

func TestFeaturedForCategorySortsUnprioritizedLast(t *testing.T) {
	assign := func(featured bool, priority int) []entity.CategoryAssignment {
		return []entity.CategoryAssignment{{Category: "fashion", Featured: featured, Priority: priority, Active: true}}
	}

	r := New([]entity.Brand{
		testBrand("no-priority", "No Priority", func(b *entity.Brand) { b.Categories = assign(true, 0) }),
		testBrand("second", "Second", func(b *entity.Brand) { b.Categories = assign(true, 2) }),
		testBrand("first", "First", func(b *entity.Brand) { b.Categories = assign(true, 1) }),
		testBrand("not-featured", "Not Featured", func(b *entity.Brand) { b.Categories = assign(false, 1) }),
	})

	got := r.FeaturedForCategory("fashion")
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "second", got[1].ID)
	assert.Equal(t, "no-priority", got[2].ID, "zero priority sorts after explicit ranks")
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	r := New([]entity.Brand{
		testBrand("bebe", "BEBE", nil),
		testBrand("triwa", "TRIWA", func(b *entity.Brand) { b.Story = "Transforming the Industry of Watches" }),
		testBrand("oh-polly", "Oh Polly", func(b *entity.Brand) { b.Tagline = "Occasion wear, elevated" }),
	})

	assert.Len(t, r.Search("bebe"), 1)
	assert.Len(t, r.Search("WATCHES"), 1)
	assert.Len(t, r.Search("occasion"), 1)
	assert.Empty(t, r.Search("nonexistent"))
}

func TestRecentlyUpdatedSortsNewestFirstAndCapsLimit(t *testing.T) {
	at := func(day int) func(*entity.Brand) {
		return func(b *entity.Brand) {
			b.Metadata.UpdatedAt = time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC)
		}
	}

	r := New([]entity.Brand{
		testBrand("old", "Old", at(1)),
		testBrand("newest", "Newest", at(20)),
		testBrand("middle", "Middle", at(10)),
	})

	got := r.RecentlyUpdated(2)
	require.Len(t, got, 2)
	assert.Equal(t, "newest", got[0].ID)
	assert.Equal(t, "middle", got[1].ID)
}

func TestFeedDomainOnlyForLiveBrands(t *testing.T) {
	r := New([]entity.Brand{
		testBrand("bebe", "Bebe", func(b *entity.Brand) {
			b.Source = entity.SourceFeed
			b.FeedDomain = "www.bebe.com"
		}),
		testBrand("everlane", "Everlane", nil),
	})

	domain, ok := r.FeedDomain("bebe")
	require.True(t, ok)
	assert.Equal(t, "www.bebe.com", domain)
	assert.True(t, r.IsLiveBrand("bebe"))

	_, ok = r.FeedDomain("everlane")
	assert.False(t, ok)
	assert.False(t, r.IsLiveBrand("everlane"))
}

func TestDefaultRegistryShipsSeededBrands(t *testing.T) {
	r := Default()

	all := r.All()
	require.NotEmpty(t, all)

	bebe := r.ByID("bebe")
	require.NotNil(t, bebe)
	assert.True(t, bebe.IsLive())
	assert.Equal(t, "www.bebe.com", bebe.FeedDomain)

	everlane := r.ByID("everlane")
	require.NotNil(t, everlane)
	assert.False(t, everlane.IsLive())
	assert.NotEmpty(t, everlane.Products)

	for _, b := range all {
		if b.IsLive() {
			assert.NotEmptyf(t, b.FeedDomain, "live brand %s needs a feed domain", b.ID)
			assert.Emptyf(t, b.Products, "live brand %s must not embed products", b.ID)
		} else {
			assert.Emptyf(t, b.FeedDomain, "static brand %s must not carry a feed domain", b.ID)
		}
	}

	trending := r.Trending()
	require.NotEmpty(t, trending)
	for i := 1; i < len(trending); i++ {
		assert.LessOrEqual(t, trending[i-1].Trending.Priority, trending[i].Trending.Priority)
	}
}
