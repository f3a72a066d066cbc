package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilangrmdhn/topup_backend_go/internal/models"
	"github.com/gilangrmdhn/topup_backend_go/internal/repositories"
)

func TestContentService_Testimonials(t *testing.T) {
	ctx := context.Background()

	t.Run("fallback when store unavailable", func(t *testing.T) {
		svc := NewContentService(repositories.NewStore(nil, nil))

		items, err := svc.Testimonials(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Adit", items[0].Name)
		assert.Equal(t, "Sari", items[1].Name)
		assert.Equal(t, "Budi", items[2].Name)
		for _, it := range items {
			assert.Equal(t, 5, it.Rating)
		}
	})

	t.Run("store data when available", func(t *testing.T) {
		store := newFakeStore()
		store.testimonials = []models.Testimonial{{Name: "Rina", Message: "Oke banget", Rating: 4}}
		svc := NewContentService(store)

		items, err := svc.Testimonials(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Rina", items[0].Name)
	})
}

func TestContentService_BlogPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("fallback when store unavailable", func(t *testing.T) {
		svc := NewContentService(repositories.NewStore(nil, nil))

		items, err := svc.BlogPosts(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "promo-1111", items[0].Slug)
		assert.Equal(t, "tips-hemat", items[1].Slug)
	})

	t.Run("store data when available", func(t *testing.T) {
		store := newFakeStore()
		store.posts = []models.BlogPost{{Title: "Event Baru", Slug: "event-baru", Excerpt: "..."}}
		svc := NewContentService(store)

		items, err := svc.BlogPosts(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
	})
}

func TestContentService_FAQ(t *testing.T) {
	// FAQ selalu statis, tidak peduli kondisi database
	for _, store := range []repositories.Store{
		repositories.NewStore(nil, nil),
		newFakeStore(),
	} {
		items := NewContentService(store).FAQ()
		require.Len(t, items, 3)
		for _, it := range items {
			assert.NotEmpty(t, it.Question)
			assert.NotEmpty(t, it.Answer)
		}
	}
}
