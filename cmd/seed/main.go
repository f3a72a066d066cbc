package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/gilangrmdhn/topup_backend_go/internal/config"
	"github.com/gilangrmdhn/topup_backend_go/internal/database"
	"github.com/gilangrmdhn/topup_backend_go/internal/repositories"
)

// Seeder standalone: isi katalog awal tanpa menjalankan server HTTP.
func main() {
	_ = godotenv.Load()

	forceFlag := flag.Bool("force", false, "Drop collection game dan topupoption dulu sebelum seeding ulang")
	flag.Parse()

	cfg := config.Load()

	client, db, err := database.Connect(cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Fatalf("Gagal konek MongoDB: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *forceFlag {
		for _, coll := range []string{repositories.CollGame, repositories.CollTopupOption} {
			if err := db.Collection(coll).Drop(ctx); err != nil {
				log.Fatalf("Gagal drop collection %s: %v", coll, err)
			}
		}
		log.Println("Collection katalog di-drop, seeding ulang...")
	}

	store := repositories.NewStore(db, nil)
	if err := repositories.SeedCatalog(ctx, store); err != nil {
		log.Fatalf("Seeding gagal: %v", err)
	}

	games, _ := store.Count(ctx, repositories.CollGame)
	opts, _ := store.Count(ctx, repositories.CollTopupOption)
	log.Printf("Seeding selesai: %d game, %d topup option.", games, opts)
}
