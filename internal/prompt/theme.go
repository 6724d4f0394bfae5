package prompt

import (
	"errors"
	"fmt"
	"sort"
)

// Theme names a built-in color scheme.
type Theme string

const (
	ThemeNord      Theme = "nord"
	ThemeSolarized Theme = "solarized"
)

// ErrUnknownTheme is returned when a theme name is not recognized.
var ErrUnknownTheme = errors.New("unknown theme preset")

// Nord palette entries used by ThemeNord.
var (
	nord8  = RGB(0x88, 0xC0, 0xD0)
	nord9  = RGB(0x81, 0xA1, 0xC1)
	nord11 = RGB(0xBF, 0x61, 0x6A)
	nord13 = RGB(0xEB, 0xCB, 0x8B)
	nord14 = RGB(0xA3, 0xBE, 0x8C)
)

// themes holds each theme's overrides. Themes only touch colors; icons,
// shortening and separator keep their defaults.
var themes = map[Theme]Overrides{
	ThemeNord: {
		CwdColor:               Ptr(nord8),
		GitBranchColor:         Ptr(nord9),
		GitStatusCleanColor:    Ptr(nord14),
		GitStatusUnstagedColor: Ptr(nord11),
		GitStatusStagedColor:   Ptr(nord13),
	},
	ThemeSolarized: {
		CwdColor:               Ptr(RGB(0x2A, 0xA1, 0x98)),
		GitBranchColor:         Ptr(RGB(0x26, 0x8B, 0xD2)),
		GitStatusCleanColor:    Ptr(RGB(0x58, 0x6E, 0x75)),
		GitStatusUnstagedColor: Ptr(RGB(0xCB, 0x4B, 0x16)),
		GitStatusStagedColor:   Ptr(RGB(0x65, 0x7B, 0x83)),
	},
}

// ThemeNames lists the built-in theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for t := range themes {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

// ParseTheme maps a name to a Theme. Matching is case-sensitive.
func ParseTheme(name string) (Theme, error) {
	t := Theme(name)
	if _, ok := themes[t]; !ok {
		return "", fmt.Errorf("%w %q: expected one of: %s", ErrUnknownTheme, name, quoteJoin(ThemeNames()))
	}
	return t, nil
}

// Overrides returns the fields t changes relative to Defaults.
func (t Theme) Overrides() Overrides {
	return themes[t]
}

// Config returns Defaults with t's overrides applied.
func (t Theme) Config() Config {
	return Defaults().Merge(t.Overrides())
}

// WithTheme parses name and returns the resulting configuration.
func WithTheme(name string) (Config, error) {
	t, err := ParseTheme(name)
	if err != nil {
		return Config{}, err
	}
	return t.Config(), nil
}
