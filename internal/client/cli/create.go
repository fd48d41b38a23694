package cli

import (
	"errors"
	"fmt"

	"github.com/Abhishek10293/PropertyManagement/internal/client/apiclient"
	"github.com/Abhishek10293/PropertyManagement/internal/client/views"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/spf13/cobra"
)

var formFields = []string{
	views.FieldTitle,
	views.FieldDescription,
	views.FieldLocation,
	views.FieldPrice,
	views.FieldBedrooms,
	views.FieldBathrooms,
	views.FieldArea,
	views.FieldType,
	views.FieldStatus,
}

func newCreateCommand(s *session) *cobra.Command {
	values := make(map[string]*string, len(formFields))
	var images, amenities []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := views.NewCreateForm(s.api)
			for _, name := range formFields {
				if !cmd.Flags().Changed(name) {
					continue
				}
				if err := form.SetField(name, *values[name]); err != nil {
					return reportFormError(cmd, err)
				}
			}
			for _, img := range images {
				form.AddImage(img)
			}
			for _, a := range amenities {
				form.AddAmenity(a)
			}

			created, err := form.Submit(cmd.Context())
			if err != nil {
				return reportFormError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderPropertyCard(*created, false))
			return nil
		},
	}

	for _, name := range formFields {
		values[name] = cmd.Flags().String(name, "", "property "+name)
	}
	cmd.Flags().StringArrayVar(&images, "image", nil, "image URL (repeatable)")
	cmd.Flags().StringArrayVar(&amenities, "amenity", nil, "amenity (repeatable)")
	return cmd
}

func reportFormError(cmd *cobra.Command, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fmt.Fprintln(cmd.OutOrStdout(), views.RenderValidation(vErr))
		return err
	}
	if apiErr, ok := apiclient.AsAPIError(err); ok && apiErr.IsValidation() && len(apiErr.Details) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), views.RenderValidation(&domain.ValidationError{Problems: apiErr.Details}))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), views.RenderError("Failed to create property. Please try again.", err))
	return err
}
