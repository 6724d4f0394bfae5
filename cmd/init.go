package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/ps1/internal/config"
)

// The prompt command is single-quoted so the shell runs it when the prompt
// is drawn and never expands its output a second time: directory and
// branch names must reach the terminal as plain text.
const bashHook = `PS1=%[1]s
`

// zsh expands %-escapes in the substituted output, which the zsh dialect
// doubles.
const zshHook = `setopt promptsubst
PROMPT=%[1]s
`

var shellHooks = map[string]string{
	"bash": bashHook,
	"zsh":  zshHook,
}

func newInitCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "init <bash|zsh>",
		Short: "Print the shell snippet that installs ps1 as the prompt",
		Long: `Print a snippet that re-renders the prompt before every command.

  bash:  eval "$(ps1 init bash)"   in ~/.bashrc
  zsh:   eval "$(ps1 init zsh)"    in ~/.zshrc

A --theme given here is carried into the snippet.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runInit(cmd.OutOrStdout(), args[0], cfg)
		},
	}
}

func runInit(w io.Writer, shell string, cfg config.Config) error {
	hook, ok := shellHooks[shell]
	if !ok {
		return fmt.Errorf("unsupported shell %q: expected bash or zsh", shell)
	}

	dialect := "readline"
	if shell == "zsh" {
		dialect = "zsh"
	}
	args := []string{"command", "ps1", "--shell", dialect}
	if cfg.Theme != "" {
		args = append(args, "--theme", shellQuote(cfg.Theme))
	}
	substitution := "$(" + strings.Join(args, " ") + ")"
	if _, err := fmt.Fprintf(w, hook, shellQuote(substitution)); err != nil {
		return fmt.Errorf("writing %s snippet: %w", shell, err)
	}
	return nil
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
