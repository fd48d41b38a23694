package views

import (
	"fmt"
	"strings"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorMuted     = lipgloss.Color("#6B7280")
	colorAvailable = lipgloss.Color("#16A34A")
	colorSold      = lipgloss.Color("#DC2626")
	colorRented    = lipgloss.Color("#2563EB")
	colorFavorite  = lipgloss.Color("#EF4444")
	colorError     = lipgloss.Color("#E74C3C")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	priceStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	heartStyle   = lipgloss.NewStyle().Foreground(colorFavorite)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1).
			Width(72)

	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Foreground(colorError).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Padding(1, 2).
			Align(lipgloss.Center)
)

// StatusBadge - цветная метка статуса
func StatusBadge(status domain.PropertyStatus) string {
	color := colorMuted
	switch status {
	case domain.PropertyStatusAvailable:
		color = colorAvailable
	case domain.PropertyStatusSold:
		color = colorSold
	case domain.PropertyStatusRented:
		color = colorRented
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render("[" + statusLabel(status) + "]")
}

func favoriteMark(isFavorite bool) string {
	if isFavorite {
		return heartStyle.Render("♥")
	}
	return mutedStyle.Render("♡")
}

// RenderPropertyCard - краткая карточка для списков
func RenderPropertyCard(p domain.Property, isFavorite bool) string {
	header := fmt.Sprintf("%s %s %s", favoriteMark(isFavorite), titleStyle.Render(p.Title), StatusBadge(p.Status))
	lines := []string{
		header,
		fmt.Sprintf("%s  %s", priceStyle.Render(FormatPrice(p.Price)), mutedStyle.Render(p.Location)),
		fmt.Sprintf("%d bd | %s ba | %s | %s", p.Bedrooms, FormatBathrooms(p.Bathrooms), FormatArea(p.Area), typeLabel(p.Type)),
		mutedStyle.Render("id: " + p.ID),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// RenderError - блок ошибки с подсказкой повторить запрос
func RenderError(message string, err error) string {
	lines := []string{message}
	if err != nil {
		lines = append(lines, mutedStyle.Render(err.Error()))
	}
	lines = append(lines, "Run the command again to retry.")
	return errorBoxStyle.Render(strings.Join(lines, "\n"))
}

// RenderValidation перечисляет проблемы по полям
func RenderValidation(vErr *domain.ValidationError) string {
	lines := []string{"The property could not be saved:"}
	for _, p := range vErr.Problems {
		lines = append(lines, fmt.Sprintf("  - %s: %s", p.Field, p.Message))
	}
	return errorBoxStyle.Render(strings.Join(lines, "\n"))
}

func RenderEmpty(title, hint string) string {
	return emptyStyle.Render(titleStyle.Render(title) + "\n" + mutedStyle.Render(hint))
}

func RenderList(state ListState, favorites Favorites) string {
	switch {
	case state.Loading:
		return mutedStyle.Render("Loading properties...")
	case state.Err != nil:
		return RenderError("Failed to fetch properties. Please try again.", state.Err)
	case len(state.Properties) == 0:
		return RenderEmpty("No properties found", "Try adjusting your filters or add a new property to get started.")
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("%d properties", len(state.Properties))))
	for _, p := range state.Properties {
		b.WriteString("\n")
		b.WriteString(RenderPropertyCard(p, favorites != nil && favorites.IsFavorite(p.ID)))
	}
	return b.String()
}

func RenderFavorites(state FavoritesState) string {
	switch {
	case state.Loading:
		return mutedStyle.Render("Loading your favorites...")
	case state.Err != nil:
		return RenderError("Failed to fetch favorite properties. Please try again.", state.Err)
	case len(state.Properties) == 0:
		return RenderEmpty("No favorite properties yet", "Mark properties with `favorites add <id>` to keep them here.")
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("%d favorite properties", len(state.Properties))))
	for _, p := range state.Properties {
		b.WriteString("\n")
		b.WriteString(RenderPropertyCard(p, true))
	}
	return b.String()
}

// RenderDetail - полная страница объявления
func RenderDetail(state DetailState) string {
	switch {
	case state.Loading:
		return mutedStyle.Render("Loading property details...")
	case state.NotFound:
		return RenderError("Property not found", nil)
	case state.Err != nil:
		return RenderError("Failed to fetch property details. Please try again.", state.Err)
	case state.Deleted:
		return titleStyle.Render("Property deleted successfully")
	case state.Property == nil:
		return RenderError("Property not found", nil)
	}

	p := state.Property
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", favoriteMark(state.IsFavorite), titleStyle.Render(p.Title), StatusBadge(p.Status))
	fmt.Fprintf(&b, "%s\n", priceStyle.Render(FormatPrice(p.Price)))
	fmt.Fprintf(&b, "%s\n\n", mutedStyle.Render(p.Location))

	fmt.Fprintf(&b, "Bedrooms:  %d\n", p.Bedrooms)
	fmt.Fprintf(&b, "Bathrooms: %s\n", FormatBathrooms(p.Bathrooms))
	fmt.Fprintf(&b, "Area:      %s\n", FormatArea(p.Area))
	fmt.Fprintf(&b, "Type:      %s\n\n", typeLabel(p.Type))

	b.WriteString(headingStyle.Render("Description") + "\n")
	b.WriteString(p.Description + "\n")

	if len(p.Amenities) > 0 {
		b.WriteString("\n" + headingStyle.Render("Amenities") + "\n")
		for _, a := range p.Amenities {
			b.WriteString("  • " + a + "\n")
		}
	}
	if len(p.Images) > 0 {
		b.WriteString("\n" + headingStyle.Render("Images") + "\n")
		for _, img := range p.Images {
			b.WriteString("  " + img + "\n")
		}
	}

	b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("id: %s  listed: %s  updated: %s",
		p.ID, p.CreatedAt.Format("2006-01-02"), p.UpdatedAt.Format("2006-01-02"))))
	return cardStyle.Render(b.String())
}
