package commands

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/pathgen/internal/cli/config"
	"github.com/conduit-lang/pathgen/internal/cli/ui"
	"github.com/conduit-lang/pathgen/internal/compiler/errors"
	utilstrings "github.com/conduit-lang/pathgen/internal/util/strings"
	"github.com/conduit-lang/pathgen/pkg/pathgen"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	configFile string
	noColor    bool
	verbose    bool
}

// logger returns a development logger in verbose mode and a no-op one otherwise
func (g *globalOptions) logger() *zap.Logger {
	if !g.verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// options resolves the configuration for cmd into generator options
func (g *globalOptions) options(cmd *cobra.Command) (pathgen.Options, *config.Config, error) {
	cfg, err := config.Load(g.configFile, cmd.Flags())
	if err != nil {
		return pathgen.Options{}, nil, err
	}

	appDir, err := cfg.AbsAppDir()
	if err != nil {
		return pathgen.Options{}, nil, err
	}
	outputDir, err := cfg.AbsOutputDir()
	if err != nil {
		return pathgen.Options{}, nil, err
	}

	return pathgen.Options{
		AppDir:    appDir,
		EnvKey:    cfg.EnvKey,
		CaseStyle: cfg.CaseStyle,
		OutputDir: outputDir,
		FileName:  cfg.FileName,
		Logger:    g.logger(),
	}, cfg, nil
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "pathgen",
		Short: "Typed path builders for Next.js App Router projects",
		Long: color.CyanString(`pathgen - typed paths for the Next.js App Router

pathgen scans an app directory and writes a TypeScript module exposing
every page and route handler as a nested object of path builders.

  import { paths } from "./paths";
  paths.blog.slug("2024/hello").url`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", "config file (default: pathgen.yaml in the working directory or a parent)")
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log every scanned directory to stderr")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewGenerateCommand(g))
	rootCmd.AddCommand(NewTreeCommand(g))
	rootCmd.AddCommand(NewRoutesCommand(g))
	rootCmd.AddCommand(NewInitCommand(g))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the pathgen version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			kv := ui.NewKeyValueTable(cmd.OutOrStdout(), color.NoColor)
			kv.AddRow("pathgen version", Version)
			kv.AddRow("Git commit", GitCommit)
			kv.AddRow("Build date", BuildDate)
			kv.AddRow("Go version", goVer)
			kv.Render()
		},
	}
}

// Execute runs the root command
func Execute() error {
	return run(NewRootCommand())
}

// run executes root and reports a failure on its output streams
func run(root *cobra.Command) error {
	cmd, err := root.ExecuteC()
	if err != nil {
		reportError(root, cmd, err)
		return err
	}
	return nil
}

// reportError prints coded errors as JSON on stdout when the failed command
// was asked for JSON, and formats everything else on stderr
func reportError(root, cmd *cobra.Command, err error) {
	if ce, ok := errors.As(err); ok && wantsJSON(cmd) {
		if out, jsonErr := ce.ToJSON(); jsonErr == nil {
			fmt.Fprintln(root.OutOrStdout(), out)
			return
		}
	}
	ui.WriteCompilerError(root.ErrOrStderr(), err, suggestionsFor(cmd, err), color.NoColor)
}

func wantsJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	f := cmd.Flags().Lookup("json")
	return f != nil && f.Value.String() == "true"
}

// suggestionsFor proposes close case styles for a mistyped --case value
func suggestionsFor(cmd *cobra.Command, err error) []string {
	ce, ok := errors.As(err)
	if !ok || ce.Code != errors.ErrInvalidCaseStyle || cmd == nil {
		return nil
	}
	f := cmd.Flags().Lookup("case")
	if f == nil || !f.Changed {
		return nil
	}
	return ui.FindSimilar(f.Value.String(), utilstrings.Styles(), nil)
}
