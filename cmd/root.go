package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/ps1/internal/config"
	"github.com/zjrosen/ps1/internal/log"
	"github.com/zjrosen/ps1/internal/prompt"
)

// NewRootCmd builds the ps1 command tree. Each call gets its own viper
// instance so commands can be executed repeatedly in one process.
func NewRootCmd() *cobra.Command {
	v := config.NewViper()
	d := config.Defaults()

	rootCmd := &cobra.Command{
		Use:   "ps1",
		Short: "Render a git-aware shell prompt",
		Long: `Print a colored shell prompt showing the working directory, the git branch
with ahead/behind markers and a status icon, followed by "$ " or "# ".

Settings come from flags or PS1_* environment variables (PS1_THEME,
PS1_SHELL, PS1_SHORTEN_CWD, ...). NO_COLOR disables colors.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.OutOrStdout(), v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("theme", d.Theme, "color theme preset ("+joinNames(prompt.ThemeNames())+")")
	flags.String("shell", d.Shell, "zero-width marker dialect ("+joinNames(prompt.ShellNames())+")")
	flags.String("color-profile", d.ColorProfile, "color depth (truecolor, ansi256, ansi, ascii)")
	flags.Bool("shorten-cwd", d.ShortenCwd, "abbreviate every directory but the last to its first character")
	flags.String("home-token", d.HomeToken, "text that replaces $HOME at the start of the directory")
	flags.Bool("no-home-token", d.NoHomeToken, "show $HOME in full")
	flags.String("separator", d.Separator, "text between the status line and the prompt character")
	flags.StringToString("color", nil, "override a color token, e.g. --color branch=#81A1C1 (cwd, branch, clean, unstaged, staged)")
	flags.String("clean-icon", d.Icons.Clean, "icon for a clean working tree")
	flags.String("unstaged-icon", d.Icons.Unstaged, "icon for unstaged changes")
	flags.String("staged-icon", d.Icons.Staged, "icon for staged changes")
	flags.String("log-file", d.Log.File, "write debug logs to this file")
	flags.BoolP("verbose", "v", d.Log.Verbose, "log at debug level")

	bindFlags(v, flags, map[string]string{
		"theme":          "theme",
		"shell":          "shell",
		"color_profile":  "color-profile",
		"shorten_cwd":    "shorten-cwd",
		"home_token":     "home-token",
		"no_home_token":  "no-home-token",
		"separator":      "separator",
		"colors":         "color",
		"icons.clean":    "clean-icon",
		"icons.unstaged": "unstaged-icon",
		"icons.staged":   "staged-icon",
		"log.file":       "log-file",
		"log.verbose":    "verbose",
	})

	rootCmd.AddCommand(
		newThemesCmd(v),
		newInitCmd(v),
		newConfigCmd(v),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on error. Nothing is
// written to stdout on failure so a broken configuration leaves the
// shell's previous prompt in place.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ps1:", err)
		os.Exit(1)
	}
}

func runRender(w io.Writer, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if err := startLog(cfg.Log); err != nil {
		return err
	}
	defer log.Close()

	promptCfg, err := cfg.PromptConfig()
	if err != nil {
		return err
	}
	renderer, err := cfg.Renderer()
	if err != nil {
		return err
	}

	log.Debug(log.CatCLI, "Rendering prompt", "theme", cfg.Theme, "shell", cfg.Shell, "profile", cfg.ColorProfile)
	return prompt.New(promptCfg, prompt.WithRenderer(renderer)).Show(w)
}

func startLog(c config.LogConfig) error {
	if c.File == "" {
		return nil
	}
	if err := log.Init(c.File, c.Verbose); err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	log.Info(log.CatCLI, "Logging started", "file", c.File, "verbose", c.Verbose)
	return nil
}
