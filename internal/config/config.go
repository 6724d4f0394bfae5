// Package config resolves ps1 settings from flags and PS1_* environment
// variables. There is no configuration file.
package config

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/muesli/termenv"
	"github.com/spf13/viper"

	"github.com/zjrosen/ps1/internal/prompt"
)

// Config holds all configuration options for ps1.
type Config struct {
	Theme        string `mapstructure:"theme" yaml:"theme"`
	Shell        string `mapstructure:"shell" yaml:"shell"`
	ColorProfile string `mapstructure:"color_profile" yaml:"color_profile"`
	NoColor      bool   `mapstructure:"no_color" yaml:"no_color"`

	ShortenCwd  bool   `mapstructure:"shorten_cwd" yaml:"shorten_cwd"`
	HomeToken   string `mapstructure:"home_token" yaml:"home_token"`
	NoHomeToken bool   `mapstructure:"no_home_token" yaml:"no_home_token"`
	Separator   string `mapstructure:"separator" yaml:"separator"`

	// Colors overrides individual color tokens after the theme is applied.
	// Keys: "cwd", "branch", "clean", "unstaged", "staged".
	Colors map[string]string `mapstructure:"colors" yaml:"colors,omitempty"`

	Icons IconConfig `mapstructure:"icons" yaml:"icons"`
	Log   LogConfig  `mapstructure:"log" yaml:"log"`
}

// IconConfig holds the git status glyphs.
type IconConfig struct {
	Clean    string `mapstructure:"clean" yaml:"clean"`
	Unstaged string `mapstructure:"unstaged" yaml:"unstaged"`
	Staged   string `mapstructure:"staged" yaml:"staged"`
}

// LogConfig controls the debug log. Logging is off without a file.
type LogConfig struct {
	File    string `mapstructure:"file" yaml:"file"`
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"`
}

// Color token names accepted in Colors.
const (
	TokenCwd      = "cwd"
	TokenBranch   = "branch"
	TokenClean    = "clean"
	TokenUnstaged = "unstaged"
	TokenStaged   = "staged"
)

var validTokens = map[string]bool{
	TokenCwd:      true,
	TokenBranch:   true,
	TokenClean:    true,
	TokenUnstaged: true,
	TokenStaged:   true,
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	p := prompt.Defaults()
	return Config{
		Shell:        string(prompt.ShellReadline),
		ColorProfile: "truecolor",
		ShortenCwd:   p.ShortenCwd,
		HomeToken:    p.ShortenHomeCwd,
		Separator:    p.Separator,
		Icons: IconConfig{
			Clean:    p.GitStatusCleanIcon,
			Unstaged: p.GitStatusUnstagedIcon,
			Staged:   p.GitStatusStagedIcon,
		},
	}
}

// EnvPrefix is the prefix of environment variables read by NewViper.
const EnvPrefix = "PS1"

// NewViper returns a viper instance reading PS1_* environment variables.
// Nested keys use underscores: icons.clean is PS1_ICONS_CLEAN.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Map-valued keys are only picked up from the environment when bound.
	_ = v.BindEnv("colors")
	return v
}

// SetDefaults registers Defaults on v so unset keys fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("theme", d.Theme)
	v.SetDefault("shell", d.Shell)
	v.SetDefault("color_profile", d.ColorProfile)
	v.SetDefault("no_color", d.NoColor)
	v.SetDefault("shorten_cwd", d.ShortenCwd)
	v.SetDefault("home_token", d.HomeToken)
	v.SetDefault("no_home_token", d.NoHomeToken)
	v.SetDefault("separator", d.Separator)
	v.SetDefault("icons.clean", d.Icons.Clean)
	v.SetDefault("icons.unstaged", d.Icons.Unstaged)
	v.SetDefault("icons.staged", d.Icons.Staged)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.verbose", d.Log.Verbose)
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by environment or flags, and validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToColorMapHook,
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if termenv.EnvNoColor() {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// stringToColorMapHook decodes "cwd=#88C0D0,branch=4" into a map so that
// PS1_COLORS works like the --color flag.
func stringToColorMapHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(map[string]string{}) {
		return data, nil
	}
	return ParseColorOverrides(reflect.ValueOf(data).String())
}

// ParseColorOverrides parses comma-separated token=color pairs.
func ParseColorOverrides(s string) (map[string]string, error) {
	out := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		token, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("color override %q: expected token=color", pair)
		}
		out[strings.TrimSpace(token)] = strings.TrimSpace(value)
	}
	return out, nil
}

// Validate checks configuration for errors.
func (c Config) Validate() error {
	if c.Theme != "" {
		if _, err := prompt.ParseTheme(c.Theme); err != nil {
			return err
		}
	}
	if _, err := prompt.ParseShell(c.Shell); err != nil {
		return err
	}
	if _, err := prompt.ParseColorProfile(c.ColorProfile); err != nil {
		return err
	}
	return ValidateColors(c.Colors)
}

// ValidateColors checks color overrides for unknown tokens or bad values.
func ValidateColors(colors map[string]string) error {
	// Sorted so the reported error is stable.
	tokens := make([]string, 0, len(colors))
	for token := range colors {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for _, token := range tokens {
		if !validTokens[token] {
			return fmt.Errorf("unknown color token %q", token)
		}
		if !isValidColor(colors[token]) {
			return fmt.Errorf("color %s: invalid color %q (want #RRGGBB, #RGB or 0-255)", token, colors[token])
		}
	}
	return nil
}

var hexColorRe = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func isValidColor(s string) bool {
	if hexColorRe.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// PromptConfig builds the prompt configuration: theme (or defaults), then
// color overrides, then icons, directory options and separator.
func (c Config) PromptConfig() (prompt.Config, error) {
	base := prompt.Defaults()
	if c.Theme != "" {
		t, err := prompt.ParseTheme(c.Theme)
		if err != nil {
			return prompt.Config{}, err
		}
		base = t.Config()
	}

	token := c.HomeToken
	if c.NoHomeToken {
		token = ""
	}

	o := prompt.Overrides{
		GitStatusCleanIcon:    prompt.Ptr(c.Icons.Clean),
		GitStatusUnstagedIcon: prompt.Ptr(c.Icons.Unstaged),
		GitStatusStagedIcon:   prompt.Ptr(c.Icons.Staged),
		ShortenCwd:            prompt.Ptr(c.ShortenCwd),
		ShortenHomeCwd:        prompt.Ptr(token),
		Separator:             prompt.Ptr(c.Separator),
	}
	for token, value := range c.Colors {
		col := prompt.Ptr(prompt.Color(value))
		switch token {
		case TokenCwd:
			o.CwdColor = col
		case TokenBranch:
			o.GitBranchColor = col
		case TokenClean:
			o.GitStatusCleanColor = col
		case TokenUnstaged:
			o.GitStatusUnstagedColor = col
		case TokenStaged:
			o.GitStatusStagedColor = col
		}
	}
	return base.Merge(o), nil
}

// Renderer builds the color renderer for the configured shell and profile.
// NoColor forces the ascii profile.
func (c Config) Renderer() (prompt.Renderer, error) {
	shell, err := prompt.ParseShell(c.Shell)
	if err != nil {
		return prompt.Renderer{}, err
	}
	profile, err := prompt.ParseColorProfile(c.ColorProfile)
	if err != nil {
		return prompt.Renderer{}, err
	}
	if c.NoColor {
		profile = termenv.Ascii
	}
	return prompt.NewRenderer(profile, shell), nil
}
