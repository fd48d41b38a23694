package rabbitmq

import (
	"time"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

// PropertyEventDTO - тело сообщения о событии объявления
type PropertyEventDTO struct {
	Event      string               `json:"event"`
	PropertyID string               `json:"property_id"`
	Property   *PropertySnapshotDTO `json:"property,omitempty"`
	OccurredAt time.Time            `json:"occurred_at"`
}

type PropertySnapshotDTO struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   float64   `json:"bathrooms"`
	Area        float64   `json:"area"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Images      []string  `json:"images"`
	Amenities   []string  `json:"amenities"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toSnapshotDTO(p domain.Property) *PropertySnapshotDTO {
	p.Normalize()
	return &PropertySnapshotDTO{
		ID:          p.ID,
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
