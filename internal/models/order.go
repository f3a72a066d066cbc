package models

import "time"

// Status pesanan. Sistem ini hanya menulis "pending"; perubahan status
// dilakukan di luar (admin / proses pembayaran terpisah).
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusFailed     = "failed"
)

// Order adalah payload pembuatan pesanan sekaligus dokumen yang disimpan
// di collection "order".
type Order struct {
	GameSlug      string    `json:"game_slug"            bson:"game_slug"          validate:"required"`
	GameName      string    `json:"game_name"            bson:"game_name"          validate:"required"`
	UserID        string    `json:"user_id"              bson:"user_id"            validate:"required"`
	Server        string    `json:"server,omitempty"     bson:"server,omitempty"`
	TopupTitle    string    `json:"topup_title"          bson:"topup_title"        validate:"required"`
	Amount        int       `json:"amount"               bson:"amount"             validate:"required,gte=1"`
	Price         int       `json:"price"                bson:"price"              validate:"gte=0"`
	PaymentMethod string    `json:"payment_method"       bson:"payment_method"     validate:"required,oneof=QRIS Dana OVO Gopay 'Bank Transfer'"`
	Status        string    `json:"status,omitempty"     bson:"status"             validate:"omitempty,oneof=pending processing completed failed"`
	Contact       string    `json:"contact,omitempty"    bson:"contact,omitempty"`
	Note          string    `json:"note,omitempty"       bson:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty" bson:"created_at"`
}
