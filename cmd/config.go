package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/ps1/internal/config"
	"github.com/zjrosen/ps1/internal/prompt"
)

// effectiveConfig is what `ps1 config` prints: the resolved settings and
// the prompt configuration they produce.
type effectiveConfig struct {
	Settings config.Config `yaml:"settings"`
	Prompt   prompt.Config `yaml:"prompt"`
}

func newConfigCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long:  `Resolve flags and PS1_* environment variables and print the result, including the prompt colors after the theme is applied.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runConfig(cmd.OutOrStdout(), cfg)
		},
	}
}

func runConfig(w io.Writer, cfg config.Config) error {
	pc, err := cfg.PromptConfig()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(effectiveConfig{Settings: cfg, Prompt: pc}); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
