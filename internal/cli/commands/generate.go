package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conduit-lang/pathgen/internal/cli/ui"
	"github.com/conduit-lang/pathgen/internal/compiler/errors"
	"github.com/conduit-lang/pathgen/pkg/pathgen"
)

// addSourceFlags registers the flags selecting and naming the scanned tree
func addSourceFlags(flags *pflag.FlagSet) {
	flags.StringP("app-dir", "d", "", "App Router directory to scan (default: src/app)")
	flags.String("case", "", "case style of generated keys: camelCase, lowerSnake, upperSnake or pascalCase")
	flags.Bool("snake", false, "shorthand for --case lowerSnake")
	flags.StringP("env", "e", "", "environment variable holding the base URL (default: NEXT_PUBLIC_APP_BASE_URL)")
}

// addOutputFlags registers the flags locating the generated file
func addOutputFlags(flags *pflag.FlagSet) {
	flags.StringP("output-dir", "o", "", "directory of the generated file (default: the app directory)")
	flags.String("file-name", "", "name of the generated file, must end with .ts (default: paths.ts)")
}

// NewGenerateCommand creates the generate command
func NewGenerateCommand(g *globalOptions) *cobra.Command {
	var toStdout, asJSON bool

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "Generate the paths module",
		Long: `Scan the app directory and write a TypeScript module of typed path builders.

Values come from flags, PATHGEN_* environment variables and pathgen.yaml,
in that order of priority.

Examples:
  pathgen generate
  pathgen generate -d app -o lib --snake
  pathgen generate --env NEXT_PUBLIC_SITE_URL --stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := g.options(cmd)
			if err != nil {
				return err
			}
			defer opts.Logger.Sync() //nolint:errcheck

			if toStdout {
				result, err := pathgen.Build(cmd.Context(), opts)
				if err != nil {
					return err
				}
				writeCompactWarnings(cmd.ErrOrStderr(), result.Warnings)
				_, err = io.WriteString(cmd.OutOrStdout(), result.Source)
				return err
			}

			result, err := pathgen.Generate(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			out := cmd.OutOrStdout()
			writeWarnings(cmd.ErrOrStderr(), result.Warnings)
			ui.WriteSuccess(out, "Generated "+result.Output, color.NoColor)

			kv := ui.NewKeyValueTable(out, color.NoColor)
			kv.AddRow("App directory", opts.AppDir)
			kv.AddRow("Case style", cfg.CaseStyle)
			kv.AddRow("Base URL from", cfg.EnvKey)
			kv.AddRow("Routes", fmt.Sprintf("%d", len(result.Routes)))
			if len(result.Warnings) > 0 {
				kv.AddRow("Warnings", fmt.Sprintf("%d", len(result.Warnings)))
			}
			if cfg.File != "" {
				kv.AddRow("Config", cfg.File)
			}
			kv.Render()
			return nil
		},
	}

	addSourceFlags(cmd.Flags())
	addOutputFlags(cmd.Flags())
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print the module instead of writing it")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.MarkFlagsMutuallyExclusive("stdout", "json")
	registerCompletions(cmd)

	return cmd
}

func writeWarnings(w io.Writer, warnings errors.ErrorList) {
	for _, warning := range warnings {
		fmt.Fprint(w, ui.CompilerError(warning, nil, color.NoColor))
	}
}

// writeCompactWarnings prints one line per warning, for output that is piped
func writeCompactWarnings(w io.Writer, warnings errors.ErrorList) {
	for _, warning := range warnings {
		fmt.Fprintln(w, errors.FormatCompact(warning))
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
