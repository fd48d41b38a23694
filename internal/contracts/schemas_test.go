package contracts

import (
	"testing"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCreateBody = `{
	"title": "Sunny condo",
	"description": "Close to the park",
	"price": 250000,
	"location": "Lakeside Ave 4",
	"bedrooms": 2,
	"bathrooms": 1.5,
	"area": 80,
	"type": "condo",
	"images": ["https://img.example.com/1.jpg"],
	"amenities": ["parking"]
}`

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "PropertyCreate/1.0.0", generateKeyFromPath("schemas/property-create.v1.json"))
	assert.Equal(t, "PropertyUpdate/1.0.0", generateKeyFromPath("schemas/property-update.v1.json"))
	assert.Equal(t, "", generateKeyFromPath("schemas/property-fields.v1.json"))
}

func TestValidatePayload_Create(t *testing.T) {
	require.NoError(t, ValidatePayload(PropertyCreateV1, []byte(validCreateBody)))

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing title", body: `{"description":"d","price":1,"location":"l","bedrooms":1,"bathrooms":1,"area":1,"type":"house"}`, field: "body"},
		{name: "negative price", body: `{"title":"t","description":"d","price":-1,"location":"l","bedrooms":1,"bathrooms":1,"area":1,"type":"house"}`, field: "price"},
		{name: "fractional bedrooms", body: `{"title":"t","description":"d","price":1,"location":"l","bedrooms":1.5,"bathrooms":1,"area":1,"type":"house"}`, field: "bedrooms"},
		{name: "unknown type", body: `{"title":"t","description":"d","price":1,"location":"l","bedrooms":1,"bathrooms":1,"area":1,"type":"castle"}`, field: "type"},
		{name: "price as string", body: `{"title":"t","description":"d","price":"cheap","location":"l","bedrooms":1,"bathrooms":1,"area":1,"type":"house"}`, field: "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayload(PropertyCreateV1, []byte(tt.body))
			require.Error(t, err)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)

			var fields []string
			for _, p := range vErr.Problems {
				fields = append(fields, p.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidatePayload_Update(t *testing.T) {
	assert.NoError(t, ValidatePayload(PropertyUpdateV1, []byte(`{"price": 10}`)))
	assert.NoError(t, ValidatePayload(PropertyUpdateV1, []byte(`{}`)))
	assert.True(t, domain.IsValidationError(ValidatePayload(PropertyUpdateV1, []byte(`{"status":"lost"}`))))
	assert.True(t, domain.IsValidationError(ValidatePayload(PropertyUpdateV1, []byte(`[1,2]`))))
	assert.True(t, domain.IsValidationError(ValidatePayload(PropertyUpdateV1, []byte(`{not json`))))
}

func TestValidatePayload_UnknownContract(t *testing.T) {
	err := ValidatePayload("Nope/1.0.0", []byte(`{}`))
	require.Error(t, err)
	assert.False(t, domain.IsValidationError(err))
}
