package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/pathgen/internal/cli/ui"
	"github.com/conduit-lang/pathgen/pkg/pathgen"
)

// NewRoutesCommand creates the routes command
func NewRoutesCommand(g *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List every generated accessor",
		Long: `List every {path, url, URL} record of the generated module with the
expression that reaches it and the App Router pattern it stands for.

Examples:
  pathgen routes
  pathgen routes --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := g.options(cmd)
			if err != nil {
				return err
			}
			defer opts.Logger.Sync() //nolint:errcheck

			result, err := pathgen.Build(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result.Routes)
			}

			writeWarnings(cmd.ErrOrStderr(), result.Warnings)
			table := ui.NewTable(cmd.OutOrStdout(), []string{"ACCESSOR", "PATTERN", "KIND"}, &ui.TableOptions{NoColor: color.NoColor})
			for _, r := range result.Routes {
				table.AddRow(r.Expression, r.Pattern, r.Kind)
			}
			table.Render()
			return nil
		},
	}

	addSourceFlags(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the routes as JSON")
	registerCompletions(cmd)

	return cmd
}
