package cli

import (
	"fmt"

	"github.com/Abhishek10293/PropertyManagement/internal/client/apiclient"
	"github.com/Abhishek10293/PropertyManagement/internal/client/views"
	"github.com/spf13/cobra"
)

func newDeleteCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := views.NewDetailView(s.api, s.favorites, apiclient.IsNotFound)
			if err := view.Load(cmd.Context(), args[0]); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), views.RenderDetail(view.State()))
				return err
			}
			err := view.Delete(cmd.Context())
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), views.RenderError("Failed to delete property. Please try again.", err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderDetail(view.State()))
			return nil
		},
	}
}
