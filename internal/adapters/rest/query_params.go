package rest

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

// ParsePropertyFilters разбирает строку запроса в типизированные фильтры.
// Некорректные значения пропускаются, запрос не отклоняется.
func ParsePropertyFilters(query url.Values) domain.PropertyFilters {
	var filters domain.PropertyFilters

	if v := strings.TrimSpace(query.Get("type")); v != "" {
		if t := domain.PropertyType(v); t.IsValid() {
			filters.Type = &t
		}
	}
	if v := strings.TrimSpace(query.Get("status")); v != "" {
		if s := domain.PropertyStatus(v); s.IsValid() {
			filters.Status = &s
		}
	}

	filters.MinPrice = parseNonNegativeFloat(query.Get("minPrice"))
	filters.MaxPrice = parseNonNegativeFloat(query.Get("maxPrice"))

	if v := strings.TrimSpace(query.Get("bedrooms")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Bedrooms = &n
		}
	}

	filters.Location = strings.TrimSpace(query.Get("location"))
	return filters
}

func parseNonNegativeFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil
	}
	return &f
}
