package validator

import (
	"sync"

	v10 "github.com/go-playground/validator/v10"
)

// Singleton validator dari go-playground
var (
	once sync.Once
	v    *v10.Validate
)

// New mengembalikan instance validator yang sama (thread-safe).
func New() *v10.Validate {
	once.Do(func() {
		v = v10.New()
	})
	return v
}

// ValidateStruct memvalidasi struct dan merapikan error menjadi map[field]message.
func ValidateStruct(s any) (map[string]string, error) {
	err := New().Struct(s)
	if err == nil {
		return nil, nil
	}
	ve, ok := err.(v10.ValidationErrors)
	if !ok {
		// bukan error validasi terstruktur
		return map[string]string{"_": err.Error()}, err
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = msgForTag(fe)
	}
	return fields, err
}

// msgForTag bikin pesan ringkas per rule
func msgForTag(fe v10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return fe.Error() // fallback detail bawaan
	}
}
