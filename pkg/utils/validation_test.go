package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "survey-backend/pkg/errors"
)

type contact struct {
	Name  string `json:"Name" validate:"required,max=5"`
	Email string `json:"EmailAddress,omitempty" validate:"omitempty,email"`
	Age   int    `validate:"gte=18"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name   string
		input  contact
		fields map[string]interface{}
	}{
		{
			name:  "valid",
			input: contact{Name: "Ann", Email: "ann@example.com", Age: 30},
		},
		{
			name:  "every rule broken",
			input: contact{Email: "nope", Age: 3},
			fields: map[string]interface{}{
				"Name":         "Name is required",
				"EmailAddress": "EmailAddress must be a valid email",
				"Age":          "Age must be at least 18",
			},
		},
		{
			name:  "too long",
			input: contact{Name: "Annabel", Age: 18},
			fields: map[string]interface{}{
				"Name": "Name must be at most 5 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)

			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			require.True(t, apperrors.IsValidation(err))
			appErr := apperrors.GetAppError(err)
			assert.Equal(t, tt.fields, appErr.Details["fields"])
		})
	}
}

func TestUTCNow(t *testing.T) {
	assert.Equal(t, "UTC", UTCNow().Location().String())
}
