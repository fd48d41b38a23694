package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// PropertyFilters - типизированные критерии поиска. nil/пустая строка - без ограничения.
type PropertyFilters struct {
	Type     *PropertyType   `json:"type,omitempty"`
	Status   *PropertyStatus `json:"status,omitempty"`
	MinPrice *float64        `json:"minPrice,omitempty"`
	MaxPrice *float64        `json:"maxPrice,omitempty"`
	Bedrooms *int            `json:"bedrooms,omitempty"`
	Location string          `json:"location,omitempty"`
}

func (f PropertyFilters) IsEmpty() bool {
	return f.Type == nil && f.Status == nil && f.MinPrice == nil && f.MaxPrice == nil &&
		f.Bedrooms == nil && f.Location == ""
}

// Matches - эталонный предикат. Адаптеры хранилищ строят эквивалентный запрос.
func (f PropertyFilters) Matches(p Property) bool {
	if f.Type != nil && p.Type != *f.Type {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms != *f.Bedrooms {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Location != "" && !ContainsFold(p.Location, f.Location) {
		return false
	}
	return true
}

// ContainsFold - поиск подстроки без учета регистра (с учетом Unicode folding)
func ContainsFold(s, substr string) bool {
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(substr))
}
