package views

import (
	"math"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Caser хранит состояние, поэтому создается на каждый вызов
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// FormatPrice: 1250000 -> "$1,250,000"
func FormatPrice(price float64) string {
	if price == math.Trunc(price) {
		return printer().Sprintf("$%d", int64(price))
	}
	return printer().Sprintf("$%.2f", price)
}

// FormatArea: 1200 -> "1,200 sq ft"
func FormatArea(area float64) string {
	if area == math.Trunc(area) {
		return printer().Sprintf("%d sq ft", int64(area))
	}
	return printer().Sprintf("%.1f sq ft", area)
}

// FormatBathrooms: 2 -> "2", 1.5 -> "1.5"
func FormatBathrooms(v float64) string {
	if v == math.Trunc(v) {
		return printer().Sprintf("%d", int64(v))
	}
	return printer().Sprintf("%.1f", v)
}

func statusLabel(status domain.PropertyStatus) string {
	return titleCase(string(status))
}

func typeLabel(t domain.PropertyType) string {
	return titleCase(string(t))
}
