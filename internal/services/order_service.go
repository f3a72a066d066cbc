package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gilangrmdhn/topup_backend_go/internal/models"
	"github.com/gilangrmdhn/topup_backend_go/internal/repositories"
	myvalidator "github.com/gilangrmdhn/topup_backend_go/pkg/validator"
)

// =============== Typed errors, dipetakan ke status code di handler ===============

type ErrValidation struct{ Fields map[string]string }

func (e ErrValidation) Error() string { return "validation failed" }

type ErrUnavailable struct{ Msg string }

func (e ErrUnavailable) Error() string { return e.Msg }

// OrderReceipt adalah respon sukses pembuatan pesanan.
type OrderReceipt struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

const defaultOrderLimit = 50

type OrderService struct {
	store repositories.Store
	now   func() time.Time
}

func NewOrderService(store repositories.Store) *OrderService {
	return &OrderService{store: store, now: time.Now}
}

// Create memvalidasi payload, mengisi default status "pending", lalu insert.
// Tidak ada yang pernah memindahkan status setelah ini; perubahan status
// terjadi di luar sistem.
func (s *OrderService) Create(ctx context.Context, in models.Order) (OrderReceipt, error) {
	if in.Status == "" {
		in.Status = models.OrderStatusPending
	}
	if fields, err := myvalidator.ValidateStruct(in); err != nil {
		return OrderReceipt{}, ErrValidation{Fields: fields}
	}

	if !s.store.Available() {
		return OrderReceipt{}, ErrUnavailable{Msg: "database unavailable"}
	}

	in.CreatedAt = s.now().UTC()
	id, err := s.store.InsertOne(ctx, repositories.CollOrder, in)
	if err != nil {
		if ue, ok := err.(repositories.ErrUnavailable); ok {
			return OrderReceipt{}, ErrUnavailable{Msg: ue.Message}
		}
		return OrderReceipt{}, err
	}
	return OrderReceipt{OrderID: id, Status: in.Status}, nil
}

// List mengembalikan maksimal limit pesanan sesuai natural order dari store,
// dengan _id jadi string hex dan semua nilai waktu jadi teks RFC3339.
func (s *OrderService) List(ctx context.Context, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = defaultOrderLimit
	}
	docs, err := s.store.Find(ctx, repositories.CollOrder, bson.M{}, int64(limit))
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, serializeOrderDoc(d))
	}
	return out, nil
}

func serializeOrderDoc(doc bson.M) map[string]any {
	m := make(map[string]any, len(doc))
	for k, v := range doc {
		switch t := v.(type) {
		case primitive.ObjectID:
			m[k] = t.Hex()
		case primitive.DateTime:
			m[k] = t.Time().UTC().Format(time.RFC3339)
		case time.Time:
			m[k] = t.UTC().Format(time.RFC3339)
		default:
			m[k] = v
		}
	}
	return m
}
