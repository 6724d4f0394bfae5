package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/ps1/internal/config"
	"github.com/zjrosen/ps1/internal/prompt"
)

// defaultThemeLabel names the built-in palette in the listing.
const defaultThemeLabel = "default"

func newThemesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available theme presets",
		Long:  `Display every theme preset with a sample of its directory, branch and status colors.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runThemes(cmd.OutOrStdout(), cfg)
		},
	}
}

func runThemes(w io.Writer, cfg config.Config) error {
	r := lipgloss.NewRenderer(w)
	if cfg.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}

	names := append([]string{defaultThemeLabel}, prompt.ThemeNames()...)
	width := maxWidth(names)

	var b strings.Builder
	b.WriteString("Themes:\n")
	for _, name := range names {
		themed := cfg
		themed.Theme = name
		if name == defaultThemeLabel {
			themed.Theme = ""
		}
		// User color overrides would hide the differences between presets.
		themed.Colors = nil

		pc, err := themed.PromptConfig()
		if err != nil {
			return err
		}

		marker := " "
		if themed.Theme == cfg.Theme {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s  %s\n", marker, runewidth.FillRight(name, width), swatch(r, pc))
	}

	b.WriteString("\nUse a theme with --theme <name> or PS1_THEME=<name>\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing themes: %w", err)
	}
	return nil
}

// swatch renders sample text in each of the prompt's colors.
func swatch(r *lipgloss.Renderer, pc prompt.Config) string {
	paint := func(text string, c prompt.Color) string {
		return r.NewStyle().Foreground(lipgloss.Color(string(c))).Render(text)
	}
	return paint("~/src", pc.CwdColor) + " " +
		paint("main", pc.GitBranchColor) + " " +
		paint(pc.GitStatusCleanIcon, pc.GitStatusCleanColor) + " " +
		paint(pc.GitStatusUnstagedIcon, pc.GitStatusUnstagedColor) + " " +
		paint(pc.GitStatusStagedIcon, pc.GitStatusStagedColor)
}

// maxWidth returns the display width of the widest name.
func maxWidth(names []string) int {
	maxLen := 0
	for _, n := range names {
		if w := runewidth.StringWidth(n); w > maxLen {
			maxLen = w
		}
	}
	return maxLen
}
