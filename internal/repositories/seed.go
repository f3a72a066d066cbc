package repositories

import (
	"context"

	"github.com/gilangrmdhn/topup_backend_go/internal/models"
)

// Data awal katalog, dipakai saat collection masih kosong.
var seedGames = []any{
	models.Game{Name: "Mobile Legends", Slug: "mobile-legends", Publisher: "Moonton", Tags: []string{"moba", "mlbb", "diamonds"}, Image: "https://images.unsplash.com/photo-1606112219348-204d7d8b94ee?auto=format&fit=crop&w=800&q=60"},
	models.Game{Name: "Free Fire", Slug: "free-fire", Publisher: "Garena", Tags: []string{"ff", "diamonds"}, Image: "https://images.unsplash.com/photo-1523961131990-5ea7c61b2107?auto=format&fit=crop&w=800&q=60"},
	models.Game{Name: "PUBG Mobile", Slug: "pubg-mobile", Publisher: "Tencent", Tags: []string{"uc", "battle royale"}, Image: "https://images.unsplash.com/photo-1542751110-97427bbecf20?auto=format&fit=crop&w=800&q=60"},
	models.Game{Name: "Genshin Impact", Slug: "genshin-impact", Publisher: "HoYoverse", Tags: []string{"genesis crystals"}, Image: "https://images.unsplash.com/photo-1548082968-943d8f9d2c37?auto=format&fit=crop&w=800&q=60"},
	models.Game{Name: "Honkai Star Rail", Slug: "honkai-star-rail", Publisher: "HoYoverse", Tags: []string{"stellar jade"}, Image: "https://images.unsplash.com/photo-1511512578047-dfb367046420?auto=format&fit=crop&w=800&q=60"},
}

var seedTopupOptions = []any{
	models.TopupOption{GameSlug: "mobile-legends", Title: "86 Diamonds", Amount: 86, Currency: "IDR", Price: 20000, Popular: true},
	models.TopupOption{GameSlug: "mobile-legends", Title: "172 Diamonds", Amount: 172, Currency: "IDR", Price: 38000, Popular: true},
	models.TopupOption{GameSlug: "free-fire", Title: "100 Diamonds", Amount: 100, Currency: "IDR", Price: 20000, Popular: true},
	models.TopupOption{GameSlug: "pubg-mobile", Title: "60 UC", Amount: 60, Currency: "IDR", Price: 15000, Popular: false},
	models.TopupOption{GameSlug: "genshin-impact", Title: "60 Crystals", Amount: 60, Currency: "IDR", Price: 15000, Popular: false},
	models.TopupOption{GameSlug: "honkai-star-rail", Title: "60 Jade", Amount: 60, Currency: "IDR", Price: 15000, Popular: false},
}

// SeedCatalog mengisi collection game dan topupoption kalau masih kosong.
// Idempotent: data yang sudah ada tidak disentuh. Saat database tidak
// tersedia, seeding di-skip tanpa error.
func SeedCatalog(ctx context.Context, s Store) error {
	if !s.Available() {
		return nil
	}

	if err := seedIfEmpty(ctx, s, CollGame, seedGames); err != nil {
		return err
	}
	return seedIfEmpty(ctx, s, CollTopupOption, seedTopupOptions)
}

func seedIfEmpty(ctx context.Context, s Store, coll string, docs []any) error {
	// CountDocuments balik 0 juga untuk collection yang belum dibuat.
	n, err := s.Count(ctx, coll)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return s.InsertMany(ctx, coll, docs)
}
