package commands

import (
	"github.com/spf13/cobra"

	utilstrings "github.com/conduit-lang/pathgen/internal/util/strings"
)

// NewCompletionCommand creates the completion command for shell completions
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate a shell completion script for pathgen.

Bash:

  $ source <(pathgen completion bash)

Zsh:

  $ pathgen completion zsh > "${fpath[1]}/_pathgen"

Fish:

  $ pathgen completion fish > ~/.config/fish/completions/pathgen.fish

PowerShell:

  PS> pathgen completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()

			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeCaseStyles offers the supported styles for --case
func completeCaseStyles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return utilstrings.Styles(), cobra.ShellCompDirectiveNoFileComp
}

// registerCompletions wires value completion for the source flags of cmd
func registerCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("case", completeCaseStyles)
	_ = cmd.MarkFlagDirname("app-dir")
	if cmd.Flags().Lookup("output-dir") != nil {
		_ = cmd.MarkFlagDirname("output-dir")
	}
}
