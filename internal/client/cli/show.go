package cli

import (
	"fmt"

	"github.com/Abhishek10293/PropertyManagement/internal/client/apiclient"
	"github.com/Abhishek10293/PropertyManagement/internal/client/views"
	"github.com/spf13/cobra"
)

func newShowCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show property details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := views.NewDetailView(s.api, s.favorites, apiclient.IsNotFound)
			err := view.Load(cmd.Context(), args[0])
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderDetail(view.State()))
			return err
		},
	}
}
