package prompt

// Config holds everything that shapes a rendered prompt. It is read-only for
// the duration of a render.
type Config struct {
	CwdColor               Color `yaml:"cwd_color"`
	GitBranchColor         Color `yaml:"git_branch_color"`
	GitStatusCleanColor    Color `yaml:"git_status_clean_color"`
	GitStatusUnstagedColor Color `yaml:"git_status_unstaged_color"`
	GitStatusStagedColor   Color `yaml:"git_status_staged_color"`

	GitStatusCleanIcon    string `yaml:"git_status_clean_icon"`
	GitStatusUnstagedIcon string `yaml:"git_status_unstaged_icon"`
	GitStatusStagedIcon   string `yaml:"git_status_staged_icon"`

	// ShortenCwd prints only the first character of each directory but the
	// last, so "/tmp/my_dir/foo" becomes "/t/m/foo".
	ShortenCwd bool `yaml:"shorten_cwd"`

	// ShortenHomeCwd replaces the home directory when printing the working
	// directory: with "~", "/home/me/foo" prints as "~/foo". Empty disables it.
	ShortenHomeCwd string `yaml:"shorten_home_cwd"`

	// Separator sits between the status block and the prompt character.
	Separator string `yaml:"separator"`
}

// Defaults returns the default prompt configuration.
func Defaults() Config {
	return Config{
		CwdColor:               Cyan,
		GitBranchColor:         Blue,
		GitStatusCleanColor:    Green,
		GitStatusUnstagedColor: Red,
		GitStatusStagedColor:   Yellow,
		GitStatusCleanIcon:     "✓",
		GitStatusUnstagedIcon:  "×",
		GitStatusStagedIcon:    "±",
		ShortenCwd:             false,
		ShortenHomeCwd:         "~",
		Separator:              "\n",
	}
}

// Overrides is a partial Config. Nil fields leave the base value alone.
type Overrides struct {
	CwdColor               *Color
	GitBranchColor         *Color
	GitStatusCleanColor    *Color
	GitStatusUnstagedColor *Color
	GitStatusStagedColor   *Color

	GitStatusCleanIcon    *string
	GitStatusUnstagedIcon *string
	GitStatusStagedIcon   *string

	ShortenCwd     *bool
	ShortenHomeCwd *string
	Separator      *string
}

// Merge returns c with every non-nil field of o applied.
func (c Config) Merge(o Overrides) Config {
	set(&c.CwdColor, o.CwdColor)
	set(&c.GitBranchColor, o.GitBranchColor)
	set(&c.GitStatusCleanColor, o.GitStatusCleanColor)
	set(&c.GitStatusUnstagedColor, o.GitStatusUnstagedColor)
	set(&c.GitStatusStagedColor, o.GitStatusStagedColor)
	set(&c.GitStatusCleanIcon, o.GitStatusCleanIcon)
	set(&c.GitStatusUnstagedIcon, o.GitStatusUnstagedIcon)
	set(&c.GitStatusStagedIcon, o.GitStatusStagedIcon)
	set(&c.ShortenCwd, o.ShortenCwd)
	set(&c.ShortenHomeCwd, o.ShortenHomeCwd)
	set(&c.Separator, o.Separator)
	return c
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Ptr returns a pointer to v, for building Overrides literals.
func Ptr[T any](v T) *T {
	return &v
}
