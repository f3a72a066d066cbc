package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/gilangrmdhn/topup_backend_go/internal/models"
)

// nullStore dipakai saat database tidak tersedia: semua read mengembalikan
// hasil kosong, semua write gagal dengan ErrUnavailable.
type nullStore struct {
	connErr error
}

func (s *nullStore) Available() bool { return false }
func (s *nullStore) Name() string    { return "" }

func (s *nullStore) LastError() string {
	if s.connErr == nil {
		return ""
	}
	return s.connErr.Error()
}

func (s *nullStore) Collections(ctx context.Context) ([]string, error) {
	return []string{}, nil
}

func (s *nullStore) InsertOne(ctx context.Context, coll string, doc any) (string, error) {
	return "", ErrUnavailable{Message: "database unavailable"}
}

func (s *nullStore) InsertMany(ctx context.Context, coll string, docs []any) error {
	return ErrUnavailable{Message: "database unavailable"}
}

func (s *nullStore) Find(ctx context.Context, coll string, filter bson.M, limit int64) ([]bson.M, error) {
	return []bson.M{}, nil
}

func (s *nullStore) Count(ctx context.Context, coll string) (int64, error) {
	return 0, nil
}

func (s *nullStore) ListGames(ctx context.Context, q string) ([]models.Game, error) {
	return []models.Game{}, nil
}

func (s *nullStore) GetGameBySlug(ctx context.Context, slug string) (*models.Game, error) {
	return nil, nil
}

func (s *nullStore) ListOptionsByGame(ctx context.Context, slug string) ([]models.TopupOption, error) {
	return []models.TopupOption{}, nil
}

func (s *nullStore) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return []models.Testimonial{}, nil
}

func (s *nullStore) ListBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	return []models.BlogPost{}, nil
}
