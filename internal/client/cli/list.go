package cli

import (
	"fmt"
	"strings"

	"github.com/Abhishek10293/PropertyManagement/internal/client/views"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/spf13/cobra"
)

type listFlags struct {
	propertyType string
	status       string
	minPrice     float64
	maxPrice     float64
	bedrooms     int
	location     string
}

func newListCommand(s *session) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := f.toFilters(cmd)
			if err != nil {
				return err
			}

			view := views.NewListView(s.api, s.favorites)
			loadErr := view.Load(cmd.Context(), filters)
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderList(view.State(), s.favorites))
			return loadErr
		},
	}

	cmd.Flags().StringVar(&f.propertyType, "type", "", "apartment, house, condo or townhouse")
	cmd.Flags().StringVar(&f.status, "status", "", "available, sold or rented")
	cmd.Flags().Float64Var(&f.minPrice, "min-price", 0, "minimum price (inclusive)")
	cmd.Flags().Float64Var(&f.maxPrice, "max-price", 0, "maximum price (inclusive)")
	cmd.Flags().IntVar(&f.bedrooms, "bedrooms", 0, "exact number of bedrooms")
	cmd.Flags().StringVar(&f.location, "location", "", "case-insensitive location substring")
	return cmd
}

// toFilters берет только явно заданные флаги
func (f listFlags) toFilters(cmd *cobra.Command) (domain.PropertyFilters, error) {
	var filters domain.PropertyFilters
	flags := cmd.Flags()

	if flags.Changed("type") {
		t := domain.PropertyType(strings.ToLower(f.propertyType))
		if !t.IsValid() {
			return filters, fmt.Errorf("unknown property type %q", f.propertyType)
		}
		filters.Type = &t
	}
	if flags.Changed("status") {
		st := domain.PropertyStatus(strings.ToLower(f.status))
		if !st.IsValid() {
			return filters, fmt.Errorf("unknown property status %q", f.status)
		}
		filters.Status = &st
	}
	if flags.Changed("min-price") {
		v := f.minPrice
		filters.MinPrice = &v
	}
	if flags.Changed("max-price") {
		v := f.maxPrice
		filters.MaxPrice = &v
	}
	if flags.Changed("bedrooms") {
		v := f.bedrooms
		filters.Bedrooms = &v
	}
	filters.Location = strings.TrimSpace(f.location)
	return filters, nil
}
