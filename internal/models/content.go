package models

type Testimonial struct {
	Name     string `json:"name"                bson:"name"    validate:"required"`
	Avatar   string `json:"avatar,omitempty"    bson:"avatar,omitempty" validate:"omitempty,url"`
	Message  string `json:"message"             bson:"message" validate:"required"`
	Rating   int    `json:"rating"              bson:"rating"  validate:"gte=1,lte=5"`
	GameSlug string `json:"game_slug,omitempty" bson:"game_slug,omitempty"`
}

type BlogPost struct {
	Title   string `json:"title"           bson:"title"   validate:"required"`
	Slug    string `json:"slug"            bson:"slug"    validate:"required"`
	Excerpt string `json:"excerpt"         bson:"excerpt" validate:"required"`
	Image   string `json:"image,omitempty" bson:"image,omitempty" validate:"omitempty,url"`
}

// FAQ tidak pernah disimpan ke database, selalu dari daftar statis.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
