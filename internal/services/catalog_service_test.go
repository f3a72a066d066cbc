package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilangrmdhn/topup_backend_go/internal/models"
	"github.com/gilangrmdhn/topup_backend_go/internal/repositories"
)

func TestCatalogService(t *testing.T) {
	ctx := context.Background()

	store := newFakeStore()
	store.games = []models.Game{
		{Name: "Mobile Legends", Slug: "mobile-legends", Tags: []string{"moba", "mlbb"}},
		{Name: "Free Fire", Slug: "free-fire", Tags: []string{"ff"}},
	}
	store.options = []models.TopupOption{
		{GameSlug: "free-fire", Title: "100 Diamonds", Amount: 100, Currency: "IDR", Price: 20000, Popular: true},
		{GameSlug: "mobile-legends", Title: "86 Diamonds", Amount: 86, Currency: "IDR", Price: 20000, Popular: true},
	}
	svc := NewCatalogService(store)

	t.Run("list games trims the query", func(t *testing.T) {
		_, err := svc.ListGames(ctx, "  mlbb ")
		require.NoError(t, err)
		assert.Equal(t, "mlbb", store.lastGamesQ)
	})

	t.Run("get game by slug", func(t *testing.T) {
		g, err := svc.GetGame(ctx, "free-fire")
		require.NoError(t, err)
		require.NotNil(t, g)
		assert.Equal(t, "Free Fire", g.Name)
	})

	t.Run("missing slug is nil not error", func(t *testing.T) {
		g, err := svc.GetGame(ctx, "valorant")
		require.NoError(t, err)
		assert.Nil(t, g)
	})

	t.Run("options filtered by game slug", func(t *testing.T) {
		opts, err := svc.ListOptions(ctx, "free-fire")
		require.NoError(t, err)
		require.Len(t, opts, 1)
		assert.Equal(t, "100 Diamonds", opts[0].Title)
		assert.Equal(t, 100, opts[0].Amount)
		assert.Equal(t, 20000, opts[0].Price)
		assert.True(t, opts[0].Popular)
	})

	t.Run("degraded store returns empty and nil", func(t *testing.T) {
		degraded := NewCatalogService(repositories.NewStore(nil, nil))

		games, err := degraded.ListGames(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, games)

		g, err := degraded.GetGame(ctx, "free-fire")
		require.NoError(t, err)
		assert.Nil(t, g)

		opts, err := degraded.ListOptions(ctx, "free-fire")
		require.NoError(t, err)
		assert.Empty(t, opts)
	})
}
