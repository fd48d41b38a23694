package mongodb_adapter

import (
	"testing"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFilter(t *testing.T) {
	house := domain.PropertyTypeHouse
	sold := domain.PropertyStatusSold
	minPrice, maxPrice := 100000.0, 200000.0
	bedrooms := 3

	tests := []struct {
		name     string
		filters  domain.PropertyFilters
		expected bson.M
	}{
		{
			name:     "empty filters select everything",
			filters:  domain.PropertyFilters{},
			expected: bson.M{},
		},
		{
			name:    "enums and bedrooms are exact",
			filters: domain.PropertyFilters{Type: &house, Status: &sold, Bedrooms: &bedrooms},
			expected: bson.M{
				"type":     "house",
				"status":   "sold",
				"bedrooms": 3,
			},
		},
		{
			name:     "price range is inclusive",
			filters:  domain.PropertyFilters{MinPrice: &minPrice, MaxPrice: &maxPrice},
			expected: bson.M{"price": bson.M{"$gte": 100000.0, "$lte": 200000.0}},
		},
		{
			name:     "only lower bound",
			filters:  domain.PropertyFilters{MinPrice: &minPrice},
			expected: bson.M{"price": bson.M{"$gte": 100000.0}},
		},
		{
			name:     "location is a case-insensitive literal",
			filters:  domain.PropertyFilters{Location: "St. (North)"},
			expected: bson.M{"location": bson.M{"$regex": `St\. \(North\)`, "$options": "i"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildFilter(tt.filters))
		})
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	p := domain.Property{
		Title:    "Loft",
		Type:     domain.PropertyTypeCondo,
		Status:   domain.PropertyStatusRented,
		Location: "Center",
	}

	doc := toDocument(p)
	assert.Equal(t, []string{}, doc.Images)
	assert.Equal(t, "condo", doc.Type)

	back := doc.toDomain()
	assert.Equal(t, domain.PropertyTypeCondo, back.Type)
	assert.Equal(t, domain.PropertyStatusRented, back.Status)
	assert.Equal(t, []string{}, back.Amenities)
}
