package services

import (
	"context"
	"strings"

	"github.com/gilangrmdhn/topup_backend_go/internal/models"
	"github.com/gilangrmdhn/topup_backend_go/internal/repositories"
)

// CatalogService melayani pencarian game dan daftar pilihan top-up.
type CatalogService struct {
	store repositories.Store
}

func NewCatalogService(store repositories.Store) *CatalogService {
	return &CatalogService{store: store}
}

// ListGames mengembalikan semua game, atau hasil pencarian kalau q diisi
// (substring nama case-insensitive, atau tag yang sama persis).
func (s *CatalogService) ListGames(ctx context.Context, q string) ([]models.Game, error) {
	return s.store.ListGames(ctx, strings.TrimSpace(q))
}

// GetGame mengembalikan nil kalau slug tidak ditemukan; bukan error.
func (s *CatalogService) GetGame(ctx context.Context, slug string) (*models.Game, error) {
	return s.store.GetGameBySlug(ctx, slug)
}

// ListOptions tidak memeriksa apakah slug menunjuk game yang ada: slug tanpa
// option menghasilkan array kosong.
func (s *CatalogService) ListOptions(ctx context.Context, slug string) ([]models.TopupOption, error) {
	return s.store.ListOptionsByGame(ctx, slug)
}
