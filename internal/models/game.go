package models

// Game adalah satu judul game di katalog. Slug dipakai sebagai identifier
// unik untuk lookup dan relasi ke TopupOption.
type Game struct {
	Name      string   `json:"name"                bson:"name"                validate:"required"`
	Slug      string   `json:"slug"                bson:"slug"                validate:"required"`
	Publisher string   `json:"publisher,omitempty" bson:"publisher,omitempty"`
	Image     string   `json:"image,omitempty"     bson:"image,omitempty"     validate:"omitempty,url"`
	Banner    string   `json:"banner,omitempty"    bson:"banner,omitempty"    validate:"omitempty,url"`
	Tags      []string `json:"tags"                bson:"tags"`
}

// TopupOption adalah pilihan nominal top-up untuk satu game (relasi lewat
// game_slug, tanpa foreign key di MongoDB).
type TopupOption struct {
	GameSlug string `json:"game_slug" bson:"game_slug" validate:"required"`
	Title    string `json:"title"     bson:"title"     validate:"required"`
	Amount   int    `json:"amount"    bson:"amount"    validate:"required,gte=1"`
	Currency string `json:"currency"  bson:"currency"  validate:"required,oneof=IDR"`
	Price    int    `json:"price"     bson:"price"     validate:"gte=0"`
	Popular  bool   `json:"popular"   bson:"popular"`
}
