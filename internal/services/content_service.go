package services

import (
	"context"

	"github.com/gilangrmdhn/topup_backend_go/internal/models"
	"github.com/gilangrmdhn/topup_backend_go/internal/repositories"
)

// ContentService melayani testimoni, blog, dan FAQ. Testimoni dan blog punya
// fallback statis saat database tidak tersedia; FAQ selalu statis.
type ContentService struct {
	store repositories.Store
}

func NewContentService(store repositories.Store) *ContentService {
	return &ContentService{store: store}
}

func (s *ContentService) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	if !s.store.Available() {
		return fallbackTestimonials(), nil
	}
	return s.store.ListTestimonials(ctx)
}

func (s *ContentService) BlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	if !s.store.Available() {
		return fallbackBlogPosts(), nil
	}
	return s.store.ListBlogPosts(ctx)
}

// FAQ tidak pernah membaca database.
func (s *ContentService) FAQ() []models.FAQ {
	return []models.FAQ{
		{Question: "Berapa lama proses top-up?", Answer: "Rata-rata 1-5 menit setelah pembayaran terverifikasi."},
		{Question: "Metode pembayaran apa saja?", Answer: "QRIS, Dana, OVO, Gopay, dan Transfer Bank."},
		{Question: "Apakah aman?", Answer: "100% aman, server resmi dan terenkripsi."},
	}
}

func fallbackTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{Name: "Adit", Message: "Proses cepat, aman, mantap!", Rating: 5},
		{Name: "Sari", Message: "Top-up MLBB cuma 1 menit.", Rating: 5},
		{Name: "Budi", Message: "Harga murah dan terpercaya.", Rating: 5},
	}
}

func fallbackBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{Title: "Promo 11.11 Diskon Besar!", Slug: "promo-1111", Excerpt: "Nikmati diskon hingga 50% untuk semua game."},
		{Title: "Tips Hemat Top-up", Slug: "tips-hemat", Excerpt: "Cara hemat top-up tapi tetap puas."},
	}
}
