package domain

import (
	"fmt"
	"math"
	"strings"
)

// ValidateProperty проверяет объект целиком перед записью в хранилище.
// Возвращает *ValidationError со всеми найденными проблемами или nil.
func ValidateProperty(p Property) error {
	vErr := &ValidationError{}

	if strings.TrimSpace(p.Title) == "" {
		vErr.Add("title", "is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		vErr.Add("description", "is required")
	}
	if strings.TrimSpace(p.Location) == "" {
		vErr.Add("location", "is required")
	}

	checkNonNegative(vErr, "price", p.Price)
	checkNonNegative(vErr, "area", p.Area)
	checkNonNegative(vErr, "bathrooms", p.Bathrooms)
	if p.Bedrooms < 0 {
		vErr.Add("bedrooms", "must be greater than or equal to 0")
	}
	if p.Bathrooms >= 0 && !isHalfStep(p.Bathrooms) {
		vErr.Add("bathrooms", "must be a multiple of 0.5")
	}

	if !p.Type.IsValid() {
		vErr.Add("type", fmt.Sprintf("must be one of %s", joinTypes()))
	}
	if !p.Status.IsValid() {
		vErr.Add("status", fmt.Sprintf("must be one of %s", joinStatuses()))
	}

	for i, img := range p.Images {
		if strings.TrimSpace(img) == "" {
			vErr.Add(fmt.Sprintf("images[%d]", i), "must not be empty")
		}
	}

	if len(vErr.Problems) > 0 {
		return vErr
	}
	return nil
}

// ValidatePatch проверяет только переданные поля. Нужна, чтобы отказать
// до похода в хранилище, если, например, пришел неизвестный type.
func ValidatePatch(patch PropertyPatch) error {
	vErr := &ValidationError{}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		vErr.Add("title", "is required")
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		vErr.Add("description", "is required")
	}
	if patch.Location != nil && strings.TrimSpace(*patch.Location) == "" {
		vErr.Add("location", "is required")
	}
	if patch.Price != nil {
		checkNonNegative(vErr, "price", *patch.Price)
	}
	if patch.Area != nil {
		checkNonNegative(vErr, "area", *patch.Area)
	}
	if patch.Bathrooms != nil {
		checkNonNegative(vErr, "bathrooms", *patch.Bathrooms)
		if *patch.Bathrooms >= 0 && !isHalfStep(*patch.Bathrooms) {
			vErr.Add("bathrooms", "must be a multiple of 0.5")
		}
	}
	if patch.Bedrooms != nil && *patch.Bedrooms < 0 {
		vErr.Add("bedrooms", "must be greater than or equal to 0")
	}
	if patch.Type != nil && !patch.Type.IsValid() {
		vErr.Add("type", fmt.Sprintf("must be one of %s", joinTypes()))
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		vErr.Add("status", fmt.Sprintf("must be one of %s", joinStatuses()))
	}

	if len(vErr.Problems) > 0 {
		return vErr
	}
	return nil
}

func checkNonNegative(vErr *ValidationError, field string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		vErr.Add(field, "must be a finite number")
		return
	}
	if v < 0 {
		vErr.Add(field, "must be greater than or equal to 0")
	}
}

func isHalfStep(v float64) bool {
	doubled := v * 2
	return doubled == math.Trunc(doubled)
}

func joinTypes() string {
	names := make([]string, len(PropertyTypes))
	for i, t := range PropertyTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func joinStatuses() string {
	names := make([]string, len(PropertyStatuses))
	for i, s := range PropertyStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
