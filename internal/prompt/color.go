package prompt

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Color is a semantic color: an ANSI palette index ("0"-"255") or a
// "#RRGGBB" hex value, as understood by termenv.
type Color string

// The 16 standard ANSI colors.
const (
	Black        Color = "0"
	Red          Color = "1"
	Green        Color = "2"
	Yellow       Color = "3"
	Blue         Color = "4"
	Purple       Color = "5"
	Cyan         Color = "6"
	White        Color = "7"
	BrightBlack  Color = "8"
	BrightRed    Color = "9"
	BrightGreen  Color = "10"
	BrightYellow Color = "11"
	BrightBlue   Color = "12"
	BrightPurple Color = "13"
	BrightCyan   Color = "14"
	BrightWhite  Color = "15"
	NoColor      Color = ""
)

// RGB returns a true-color Color.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}

// Shell selects the zero-width markers wrapped around escape sequences so
// the line editor does not count them toward the prompt's width. It also
// decides how text is escaped for shells that expand the prompt again.
type Shell string

const (
	// ShellReadline uses RL_PROMPT_START_IGNORE/RL_PROMPT_END_IGNORE. Text is
	// emitted verbatim: the output must be the result of a prompt-time
	// command substitution such as PS1='$(ps1)', which bash does not expand
	// again.
	ShellReadline Shell = "readline"
	// ShellBash uses \[ and \], valid only when the output is stored in PS1
	// and decoded by bash, so text is escaped for that second expansion.
	ShellBash Shell = "bash"
	// ShellZsh uses %{ and %}; "%" in text is doubled.
	ShellZsh  Shell = "zsh"
	ShellNone Shell = "none"
)

// ErrUnknownShell is returned for an unrecognized marker dialect.
var ErrUnknownShell = errors.New("unknown shell")

// Markers bracket invisible bytes.
type Markers struct {
	Start string
	End   string
}

type dialect struct {
	markers Markers
	escaper *strings.Replacer
}

// bashEscaper survives backslash decoding followed by promptvars expansion:
// "\\\\" decodes to "\\" which expands to "\", "\\$" decodes to "\$"
// which expands to "$".
var bashEscaper = strings.NewReplacer(
	`\`, `\\\\`,
	`$`, `\\$`,
	"`", "\\\\`",
)

var zshEscaper = strings.NewReplacer("%", "%%")

var dialects = map[Shell]dialect{
	ShellReadline: {markers: Markers{Start: "\x01", End: "\x02"}},
	ShellBash:     {markers: Markers{Start: `\[`, End: `\]`}, escaper: bashEscaper},
	ShellZsh:      {markers: Markers{Start: "%{", End: "%}"}, escaper: zshEscaper},
	ShellNone:     {},
}

// ParseShell maps a dialect name to a Shell.
func ParseShell(name string) (Shell, error) {
	s := Shell(name)
	if _, ok := dialects[s]; !ok {
		return "", fmt.Errorf("%w %q: expected one of: %s", ErrUnknownShell, name, quoteJoin(ShellNames()))
	}
	return s, nil
}

// ShellNames lists the accepted dialect names.
func ShellNames() []string {
	names := make([]string, 0, len(dialects))
	for s := range dialects {
		names = append(names, string(s))
	}
	sort.Strings(names)
	return names
}

// ErrUnknownColorProfile is returned for an unrecognized color profile name.
var ErrUnknownColorProfile = errors.New("unknown color profile")

var profiles = map[string]termenv.Profile{
	"truecolor": termenv.TrueColor,
	"ansi256":   termenv.ANSI256,
	"ansi":      termenv.ANSI,
	"ascii":     termenv.Ascii,
}

// ParseColorProfile maps a profile name to a termenv.Profile.
func ParseColorProfile(name string) (termenv.Profile, error) {
	p, ok := profiles[name]
	if !ok {
		names := make([]string, 0, len(profiles))
		for n := range profiles {
			names = append(names, n)
		}
		sort.Strings(names)
		return termenv.Ascii, fmt.Errorf("%w %q: expected one of: %s", ErrUnknownColorProfile, name, quoteJoin(names))
	}
	return p, nil
}

// Renderer paints text with shell-safe color escapes.
type Renderer struct {
	profile termenv.Profile
	markers Markers
	escaper *strings.Replacer
}

// NewRenderer creates a Renderer that degrades colors to profile and
// brackets escapes with the markers of shell.
func NewRenderer(profile termenv.Profile, shell Shell) Renderer {
	d := dialects[shell]
	return Renderer{profile: profile, markers: d.markers, escaper: d.escaper}
}

// Escape quotes text so the shell displays it literally.
func (r Renderer) Escape(text string) string {
	if r.escaper == nil {
		return text
	}
	return r.escaper.Replace(text)
}

// Paint escapes text and wraps it in the escape sequences for c. The ON and
// OFF sequences are each bracketed by markers; text itself never is. When c
// produces no escape (empty color, ascii profile) only the escaped text is
// returned.
func (r Renderer) Paint(text string, c Color) string {
	text = r.Escape(text)
	tc := r.profile.Color(string(c))
	if tc == nil {
		return text
	}
	seq := tc.Sequence(false)
	if seq == "" {
		return text
	}

	on := termenv.CSI + seq + "m"
	off := termenv.CSI + termenv.ResetSeq + "m"
	return r.bracket(on) + text + r.bracket(off)
}

func (r Renderer) bracket(escape string) string {
	return r.markers.Start + escape + r.markers.End
}

// VisibleWidth is the number of terminal cells s occupies once markers and
// escape sequences are discarded.
func (r Renderer) VisibleWidth(s string) int {
	if r.markers.Start != "" {
		s = strings.ReplaceAll(s, r.markers.Start, "")
		s = strings.ReplaceAll(s, r.markers.End, "")
	}
	return ansi.StringWidth(s)
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ", ")
}
