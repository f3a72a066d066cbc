package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gilangrmdhn/topup_backend_go/internal/models"
)

// =============== Errors ===============

// ErrUnavailable berarti database tidak tersedia (mode degraded).
type ErrUnavailable struct{ Message string }

func (e ErrUnavailable) Error() string { return e.Message }

// Nama collection mengikuti lowercase nama entity.
const (
	CollGame        = "game"
	CollTopupOption = "topupoption"
	CollOrder       = "order"
	CollTestimonial = "testimonial"
	CollBlogPost    = "blogpost"
)

// Store adalah akses ke document store. Implementasi Mongo dipakai saat
// koneksi berhasil; NewStore mengembalikan varian null saat database tidak
// tersedia, jadi handler tidak perlu cek nil kemana-mana.
type Store interface {
	Available() bool
	Name() string
	LastError() string
	Collections(ctx context.Context) ([]string, error)

	// Helper generik dipakai endpoint order dan seeder.
	InsertOne(ctx context.Context, coll string, doc any) (string, error)
	InsertMany(ctx context.Context, coll string, docs []any) error
	Find(ctx context.Context, coll string, filter bson.M, limit int64) ([]bson.M, error)
	Count(ctx context.Context, coll string) (int64, error)

	// Query per-entity, semua membuang _id lewat projection.
	ListGames(ctx context.Context, q string) ([]models.Game, error)
	GetGameBySlug(ctx context.Context, slug string) (*models.Game, error)
	ListOptionsByGame(ctx context.Context, slug string) ([]models.TopupOption, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	ListBlogPosts(ctx context.Context) ([]models.BlogPost, error)
}

// NewStore memilih implementasi berdasarkan hasil koneksi: db non-nil pakai
// Mongo, selain itu varian null yang menyimpan error koneksi untuk /test.
func NewStore(db *mongo.Database, connErr error) Store {
	if db == nil {
		return &nullStore{connErr: connErr}
	}
	return &mongoStore{db: db}
}

// =============== Mongo implementation ===============

type mongoStore struct {
	db *mongo.Database
}

func (s *mongoStore) Available() bool   { return true }
func (s *mongoStore) Name() string      { return s.db.Name() }
func (s *mongoStore) LastError() string { return "" }

func (s *mongoStore) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *mongoStore) InsertOne(ctx context.Context, coll string, doc any) (string, error) {
	res, err := s.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *mongoStore) InsertMany(ctx context.Context, coll string, docs []any) error {
	_, err := s.db.Collection(coll).InsertMany(ctx, docs)
	return err
}

// Find mengembalikan dokumen mentah sesuai natural order, maksimal limit.
func (s *mongoStore) Find(ctx context.Context, coll string, filter bson.M, limit int64) ([]bson.M, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.db.Collection(coll).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *mongoStore) Count(ctx context.Context, coll string) (int64, error) {
	return s.db.Collection(coll).CountDocuments(ctx, bson.M{})
}

var noIDProjection = options.Find().SetProjection(bson.M{"_id": 0})

// ListGames cari nama case-insensitive (substring) atau tag yang sama persis.
func (s *mongoStore) ListGames(ctx context.Context, q string) ([]models.Game, error) {
	filter := bson.M{}
	if q != "" {
		filter = bson.M{"$or": bson.A{
			bson.M{"name": bson.M{"$regex": q, "$options": "i"}},
			bson.M{"tags": bson.M{"$in": bson.A{q}}},
		}}
	}
	cur, err := s.db.Collection(CollGame).Find(ctx, filter, noIDProjection)
	if err != nil {
		return nil, err
	}
	items := []models.Game{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetGameBySlug mengembalikan nil (bukan error) kalau slug tidak ada.
func (s *mongoStore) GetGameBySlug(ctx context.Context, slug string) (*models.Game, error) {
	var item models.Game
	err := s.db.Collection(CollGame).
		FindOne(ctx, bson.M{"slug": slug}, options.FindOne().SetProjection(bson.M{"_id": 0})).
		Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *mongoStore) ListOptionsByGame(ctx context.Context, slug string) ([]models.TopupOption, error) {
	cur, err := s.db.Collection(CollTopupOption).Find(ctx, bson.M{"game_slug": slug}, noIDProjection)
	if err != nil {
		return nil, err
	}
	items := []models.TopupOption{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoStore) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	cur, err := s.db.Collection(CollTestimonial).Find(ctx, bson.M{}, noIDProjection)
	if err != nil {
		return nil, err
	}
	items := []models.Testimonial{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoStore) ListBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	cur, err := s.db.Collection(CollBlogPost).Find(ctx, bson.M{}, noIDProjection)
	if err != nil {
		return nil, err
	}
	items := []models.BlogPost{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
