// cmd/completion.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for the bikeshare explorer.

To load completions:

Bash:
  $ source <(bikeshare completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ bikeshare completion bash > /etc/bash_completion.d/bikeshare
  # macOS:
  $ bikeshare completion bash > $(brew --prefix)/etc/bash_completion.d/bikeshare

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ bikeshare completion zsh > "${fpath[1]}/_bikeshare"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ bikeshare completion fish | source

  # To load completions for each session, execute once:
  $ bikeshare completion fish > ~/.config/fish/completions/bikeshare.fish

PowerShell:
  PS> bikeshare completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, add the output to your profile:
  PS> bikeshare completion powershell > bikeshare.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return fmt.Errorf("unsupported shell %q", args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
