package mongodb_adapter

import (
	"time"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// propertyDocument - форма документа в коллекции properties
type propertyDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Location    string             `bson:"location"`
	Bedrooms    int                `bson:"bedrooms"`
	Bathrooms   float64            `bson:"bathrooms"`
	Area        float64            `bson:"area"`
	Type        string             `bson:"type"`
	Status      string             `bson:"status"`
	Images      []string           `bson:"images"`
	Amenities   []string           `bson:"amenities"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func toDocument(p domain.Property) propertyDocument {
	p.Normalize()
	return propertyDocument{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Location:    p.Location,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Area:        p.Area,
		Type:        string(p.Type),
		Status:      string(p.Status),
		Images:      p.Images,
		Amenities:   p.Amenities,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d propertyDocument) toDomain() domain.Property {
	p := domain.Property{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Location:    d.Location,
		Bedrooms:    d.Bedrooms,
		Bathrooms:   d.Bathrooms,
		Area:        d.Area,
		Type:        domain.PropertyType(d.Type),
		Status:      domain.PropertyStatus(d.Status),
		Images:      d.Images,
		Amenities:   d.Amenities,
		// MongoDB хранит время с точностью до миллисекунды
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
	p.Normalize()
	return p
}
