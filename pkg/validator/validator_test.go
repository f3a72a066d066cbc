package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `validate:"required"`
	Rating int    `validate:"gte=1,lte=5"`
	Method string `validate:"required,oneof=QRIS Dana OVO Gopay 'Bank Transfer'"`
	Image  string `validate:"omitempty,url"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct returns nil map", func(t *testing.T) {
		fields, err := ValidateStruct(sample{Name: "Adit", Rating: 5, Method: "Bank Transfer"})
		require.NoError(t, err)
		assert.Nil(t, fields)
	})

	t.Run("violations map field to message", func(t *testing.T) {
		fields, err := ValidateStruct(sample{Rating: 9, Method: "Bitcoin", Image: "bukan-url"})
		require.Error(t, err)

		assert.Equal(t, "field is required", fields["Name"])
		assert.Equal(t, "must be at most 5", fields["Rating"])
		assert.Contains(t, fields["Method"], "must be one of:")
		assert.Equal(t, "must be a valid URL", fields["Image"])
	})

	t.Run("gte message includes bound", func(t *testing.T) {
		fields, err := ValidateStruct(sample{Name: "Adit", Rating: 0, Method: "QRIS"})
		require.Error(t, err)
		assert.Equal(t, "must be at least 1", fields["Rating"])
	})
}
