package apiclient

import (
	"time"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

type propertyDTO struct {
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

func (d propertyDTO) toDomain() domain.Property {
	p := domain.Property{
		ID:          d.ID,
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
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	p.Normalize()
	return p
}

// propertyInputDTO - тело POST/PUT; непереданные поля опускаются
type propertyInputDTO struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Bedrooms    *int      `json:"bedrooms,omitempty"`
	Bathrooms   *float64  `json:"bathrooms,omitempty"`
	Area        *float64  `json:"area,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
}

func toInputDTO(patch domain.PropertyPatch) propertyInputDTO {
	dto := propertyInputDTO{
		Title:       patch.Title,
		Description: patch.Description,
		Price:       patch.Price,
		Location:    patch.Location,
		Bedrooms:    patch.Bedrooms,
		Bathrooms:   patch.Bathrooms,
		Area:        patch.Area,
	}
	if patch.Type != nil {
		t := string(*patch.Type)
		dto.Type = &t
	}
	if patch.Status != nil {
		s := string(*patch.Status)
		dto.Status = &s
	}
	if patch.ImagesSet {
		images := append([]string{}, patch.Images...)
		dto.Images = &images
	}
	if patch.AmenitiesSet {
		amenities := append([]string{}, patch.Amenities...)
		dto.Amenities = &amenities
	}
	return dto
}

type errorResponseDTO struct {
	Message string                `json:"message"`
	Error   string                `json:"error"`
	Details []domain.FieldProblem `json:"details"`
}
