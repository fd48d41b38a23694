package rest

import (
	"math"
	"time"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

// PropertyRequest - тело POST/PUT. Отсутствующее поле остается nil.
type PropertyRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Location    *string   `json:"location"`
	Bedrooms    *float64  `json:"bedrooms"`
	Bathrooms   *float64  `json:"bathrooms"`
	Area        *float64  `json:"area"`
	Type        *string   `json:"type"`
	Status      *string   `json:"status"`
	Images      *[]string `json:"images"`
	Amenities   *[]string `json:"amenities"`
}

// checkBedrooms пропускает целые значения в любой JSON-записи (2 и 2.0)
func (r PropertyRequest) checkBedrooms() error {
	if r.Bedrooms == nil {
		return nil
	}
	v := *r.Bedrooms
	if v != math.Trunc(v) {
		return domain.NewValidationError("bedrooms", "must be a whole number")
	}
	if v > math.MaxInt32 {
		return domain.NewValidationError("bedrooms", "is too large")
	}
	return nil
}

func (r PropertyRequest) toPatch() domain.PropertyPatch {
	patch := domain.PropertyPatch{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Location:    r.Location,
		Bathrooms:   r.Bathrooms,
		Area:        r.Area,
	}
	if r.Bedrooms != nil {
		n := int(*r.Bedrooms)
		patch.Bedrooms = &n
	}
	if r.Type != nil {
		t := domain.PropertyType(*r.Type)
		patch.Type = &t
	}
	if r.Status != nil {
		s := domain.PropertyStatus(*r.Status)
		patch.Status = &s
	}
	if r.Images != nil {
		patch.Images = append([]string{}, (*r.Images)...)
		patch.ImagesSet = true
	}
	if r.Amenities != nil {
		patch.Amenities = append([]string{}, (*r.Amenities)...)
		patch.AmenitiesSet = true
	}
	return patch
}

// PropertyResponse - JSON-представление объявления
type PropertyResponse struct {
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

func toPropertyResponse(p domain.Property) PropertyResponse {
	p.Normalize()
	return PropertyResponse{
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

// MessageResponse - простое подтверждение
type MessageResponse struct {
	Message string `json:"message"`
}
