package commands

import (
	"github.com/spf13/cobra"

	"github.com/conduit-lang/pathgen/internal/cli/ui"
	"github.com/conduit-lang/pathgen/pkg/pathgen"
)

// NewTreeCommand creates the tree command
func NewTreeCommand(g *globalOptions) *cobra.Command {
	var patterns bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the merged route tree",
		Long: `Print the route tree pathgen generates accessors for, after route groups
and parallel slots are flattened and page/route conflicts are resolved.

Pages are marked [page]; route handler verbs are listed in braces.

Examples:
  pathgen tree
  pathgen tree -d app --patterns=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := g.options(cmd)
			if err != nil {
				return err
			}
			defer opts.Logger.Sync() //nolint:errcheck

			root, err := pathgen.Tree(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return ui.RenderRouteTree(cmd.OutOrStdout(), root, ui.RouteTreeOptions{Patterns: patterns})
		},
	}

	addSourceFlags(cmd.Flags())
	cmd.Flags().BoolVar(&patterns, "patterns", true, "show the directory pattern of keys that differ from it")
	registerCompletions(cmd)

	return cmd
}
