package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gilangrmdhn/topup_backend_go/internal/models"
)

// fakeStore is an in-memory stand-in for the Mongo-backed store.
type fakeStore struct {
	available    bool
	games        []models.Game
	options      []models.TopupOption
	testimonials []models.Testimonial
	posts        []models.BlogPost
	orderDocs    []bson.M

	inserted      map[string][]any
	insertErr     error
	lastFindColl  string
	lastFindLimit int64
	lastGamesQ    string
}

func newFakeStore() *fakeStore {
	return &fakeStore{available: true, inserted: map[string][]any{}}
}

func (f *fakeStore) Available() bool   { return f.available }
func (f *fakeStore) Name() string      { return "indotopup_test" }
func (f *fakeStore) LastError() string { return "" }

func (f *fakeStore) Collections(ctx context.Context) ([]string, error) {
	return []string{"game", "topupoption"}, nil
}

func (f *fakeStore) InsertOne(ctx context.Context, coll string, doc any) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.inserted[coll] = append(f.inserted[coll], doc)
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeStore) InsertMany(ctx context.Context, coll string, docs []any) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted[coll] = append(f.inserted[coll], docs...)
	return nil
}

func (f *fakeStore) Find(ctx context.Context, coll string, filter bson.M, limit int64) ([]bson.M, error) {
	f.lastFindColl = coll
	f.lastFindLimit = limit
	return f.orderDocs, nil
}

func (f *fakeStore) Count(ctx context.Context, coll string) (int64, error) {
	return int64(len(f.inserted[coll])), nil
}

func (f *fakeStore) ListGames(ctx context.Context, q string) ([]models.Game, error) {
	f.lastGamesQ = q
	return f.games, nil
}

func (f *fakeStore) GetGameBySlug(ctx context.Context, slug string) (*models.Game, error) {
	for i := range f.games {
		if f.games[i].Slug == slug {
			return &f.games[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListOptionsByGame(ctx context.Context, slug string) ([]models.TopupOption, error) {
	out := []models.TopupOption{}
	for _, o := range f.options {
		if o.GameSlug == slug {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeStore) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return f.testimonials, nil
}

func (f *fakeStore) ListBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	return f.posts, nil
}
