package cli

import (
	"fmt"

	"github.com/Abhishek10293/PropertyManagement/internal/client/views"
	"github.com/spf13/cobra"
)

func newFavoritesCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorite properties",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesList(cmd, s)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show favorite properties that still exist",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runFavoritesList(cmd, s)
			},
		},
		&cobra.Command{
			Use:   "add <id>",
			Short: "Add a property to favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s.favorites.Add(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites (%d total)\n", args[0], s.favorites.Count())
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove a property from favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s.favorites.Remove(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites (%d total)\n", args[0], s.favorites.Count())
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle <id>",
			Short: "Toggle the favorite flag of a property",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if s.favorites.Toggle(args[0]) {
					fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites\n", args[0])
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", args[0])
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all favorites",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				views.NewFavoritesView(s.api, s.favorites).ClearAll()
				fmt.Fprintln(cmd.OutOrStdout(), "Favorites cleared")
				return nil
			},
		},
	)
	return cmd
}

func runFavoritesList(cmd *cobra.Command, s *session) error {
	view := views.NewFavoritesView(s.api, s.favorites)
	err := view.Load(cmd.Context())
	fmt.Fprintln(cmd.OutOrStdout(), views.RenderFavorites(view.State()))
	return err
}
