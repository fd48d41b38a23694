package domain

import (
	"strings"
	"time"
)

// PropertyType - вид объекта недвижимости
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeCondo     PropertyType = "condo"
	PropertyTypeTownhouse PropertyType = "townhouse"
)

// PropertyTypes - все допустимые значения в порядке отображения
var PropertyTypes = []PropertyType{
	PropertyTypeApartment,
	PropertyTypeHouse,
	PropertyTypeCondo,
	PropertyTypeTownhouse,
}

func (t PropertyType) IsValid() bool {
	for _, known := range PropertyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// PropertyStatus - статус объявления
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusRented    PropertyStatus = "rented"
)

var PropertyStatuses = []PropertyStatus{
	PropertyStatusAvailable,
	PropertyStatusSold,
	PropertyStatusRented,
}

func (s PropertyStatus) IsValid() bool {
	for _, known := range PropertyStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Property - объявление о недвижимости в том виде, в котором оно хранится.
// ID и временные метки назначает хранилище.
type Property struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Location    string
	Bedrooms    int
	Bathrooms   float64
	Area        float64
	Type        PropertyType
	Status      PropertyStatus
	Images      []string
	Amenities   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PropertyPatch - набор полей от клиента. nil означает "поле не передано".
type PropertyPatch struct {
	Title       *string
	Description *string
	Price       *float64
	Location    *string
	Bedrooms    *int
	Bathrooms   *float64
	Area        *float64
	Type        *PropertyType
	Status      *PropertyStatus
	Images      []string
	Amenities   []string

	// Отличаем отсутствующий массив от явно пустого
	ImagesSet    bool
	AmenitiesSet bool
}

// IsEmpty сообщает, что в патче нет ни одного поля
func (p PropertyPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil && p.Location == nil &&
		p.Bedrooms == nil && p.Bathrooms == nil && p.Area == nil && p.Type == nil &&
		p.Status == nil && !p.ImagesSet && !p.AmenitiesSet
}

// NewPropertyFromDraft собирает новый объект из данных формы создания.
// Статус по умолчанию - available. Валидация выполняется отдельно.
func NewPropertyFromDraft(draft PropertyPatch) Property {
	p := Property{Status: PropertyStatusAvailable}
	p.ApplyPatch(draft)
	p.Normalize()
	return p
}

// ApplyPatch переносит переданные поля в объект
func (p *Property) ApplyPatch(patch PropertyPatch) {
	if patch.Title != nil {
		p.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Bedrooms != nil {
		p.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		p.Bathrooms = *patch.Bathrooms
	}
	if patch.Area != nil {
		p.Area = *patch.Area
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.ImagesSet {
		p.Images = append([]string(nil), patch.Images...)
	}
	if patch.AmenitiesSet {
		p.Amenities = append([]string(nil), patch.Amenities...)
	}
}

// Normalize гарантирует, что списки не nil (в JSON всегда массив)
func (p *Property) Normalize() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
}
