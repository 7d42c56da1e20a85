package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conduit-lang/pathgen/internal/cli/config"
	"github.com/conduit-lang/pathgen/internal/cli/ui"
	"github.com/conduit-lang/pathgen/internal/compiler/fsys"
	utilstrings "github.com/conduit-lang/pathgen/internal/util/strings"
)

// askOne is replaced in tests
var askOne = survey.AskOne

// NewInitCommand creates the init command
func NewInitCommand(g *globalOptions) *cobra.Command {
	var yes, force bool
	var target string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a pathgen.yaml config file",
		Long: `Ask for the generator settings and write them to pathgen.yaml.

With --yes the defaults are written without prompting. The file is
written to --file, the global --config file or pathgen.yaml.

Examples:
  pathgen init
  pathgen init --yes
  pathgen init --file config/pathgen.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if target == "" {
				target = g.configFile
			}
			if target == "" {
				target = config.FileBase + ".yaml"
			}
			location, err := filepath.Abs(target)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", target, err)
			}

			fs := fsys.New()
			exists, err := fs.Exists(cmd.Context(), location)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", location, err)
			}
			if exists && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite it", location)
			}

			cfg := config.Default()
			if !yes {
				if err := ask(cfg); err != nil {
					return err
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			if err := fs.WriteFile(cmd.Context(), location, data); err != nil {
				return fmt.Errorf("failed to write %s: %w", location, err)
			}

			ui.WriteSuccess(cmd.OutOrStdout(), "Created "+location, color.NoColor)
			fmt.Fprintln(cmd.OutOrStdout(), "\nNext: pathgen generate")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "write the defaults without prompting")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().StringVar(&target, "file", "", "file to write (default: pathgen.yaml)")

	return cmd
}

// ask prompts for every setting, starting from the values in cfg
func ask(cfg *config.Config) error {
	appDir := &survey.Input{
		Message: "App Router directory:",
		Default: cfg.AppDir,
	}
	if err := askOne(appDir, &cfg.AppDir, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	envKey := &survey.Input{
		Message: "Environment variable holding the base URL:",
		Default: cfg.EnvKey,
	}
	if err := askOne(envKey, &cfg.EnvKey, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	caseStyle := &survey.Select{
		Message: "Case style of generated keys:",
		Options: utilstrings.Styles(),
		Default: cfg.CaseStyle,
	}
	if err := askOne(caseStyle, &cfg.CaseStyle); err != nil {
		return err
	}

	outputDir := &survey.Input{
		Message: "Output directory (empty for the app directory):",
		Default: cfg.OutputDir,
	}
	if err := askOne(outputDir, &cfg.OutputDir); err != nil {
		return err
	}

	fileName := &survey.Input{
		Message: "Output file name:",
		Default: cfg.FileName,
	}
	return askOne(fileName, &cfg.FileName, survey.WithValidator(survey.ComposeValidators(survey.Required, tsFileName)))
}

func tsFileName(ans interface{}) error {
	name, _ := ans.(string)
	if !strings.HasSuffix(name, ".ts") || name == ".ts" {
		return fmt.Errorf("file name must end with .ts")
	}
	return nil
}
