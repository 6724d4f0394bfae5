// Package prompt composes the shell prompt: working directory, git branch
// and status, and the privilege-aware prompt character.
package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/zjrosen/ps1/internal/git/application"
	domain "github.com/zjrosen/ps1/internal/git/domain"
	"github.com/zjrosen/ps1/internal/git/infrastructure"
	"github.com/zjrosen/ps1/internal/log"
	"github.com/zjrosen/ps1/internal/paths"
	"github.com/zjrosen/ps1/internal/system"
)

// Prompt characters.
const (
	RootChar = "#"
	UserChar = "$"
)

// StatusResolver finds the git status for a working directory.
type StatusResolver interface {
	Resolve(path string) (domain.Status, bool)
}

// StatusResolverFunc adapts a function to StatusResolver.
type StatusResolverFunc func(path string) (domain.Status, bool)

func (f StatusResolverFunc) Resolve(path string) (domain.Status, bool) { return f(path) }

// Prompt renders a prompt for one Config.
type Prompt struct {
	cfg      Config
	renderer Renderer
	env      system.Environment
	identity system.Identity
	status   StatusResolver
}

// Option customizes a Prompt.
type Option func(*Prompt)

// WithRenderer sets the color renderer.
func WithRenderer(r Renderer) Option {
	return func(p *Prompt) { p.renderer = r }
}

// WithEnvironment sets where the working directory and HOME/PWD come from.
func WithEnvironment(env system.Environment) Option {
	return func(p *Prompt) { p.env = env }
}

// WithIdentity sets the effective user identity source.
func WithIdentity(id system.Identity) Option {
	return func(p *Prompt) { p.identity = id }
}

// WithStatusResolver replaces the git status resolver.
func WithStatusResolver(r StatusResolver) Option {
	return func(p *Prompt) { p.status = r }
}

// New creates a Prompt reading the real process state, rendering true color
// with readline markers unless overridden.
func New(cfg Config, opts ...Option) *Prompt {
	p := &Prompt{
		cfg:      cfg,
		renderer: NewRenderer(termenv.TrueColor, ShellReadline),
		env:      system.OS{},
		identity: system.OS{},
		status:   application.NewResolver(infrastructure.NewOpener()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render builds the prompt string. It never fails: every missing piece of
// process state degrades to a shorter prompt.
func (p *Prompt) Render() string {
	cwd := p.renderer.Paint(p.Directory(), p.cfg.CwdColor)

	// The prompt character is never colored; several shells miscount the
	// cursor position when it is.
	pchar := PromptChar(p.identity)

	var b strings.Builder
	b.WriteString(cwd)

	if status, ok := p.vcsStatus(); ok {
		icon, color := p.statusIcon(status.Category)
		b.WriteString(" ")
		b.WriteString(p.renderer.Paint(status.BranchLabel, p.cfg.GitBranchColor))
		b.WriteString(" ")
		b.WriteString(p.renderer.Paint(icon, color))
	}

	b.WriteString(p.renderer.Escape(p.cfg.Separator))
	b.WriteString(p.renderer.Escape(pchar))
	b.WriteString(" ")
	return b.String()
}

// Show writes the rendered prompt to w.
func (p *Prompt) Show(w io.Writer) error {
	out := p.Render()
	log.Debug(log.CatPrompt, "Rendered prompt", "bytes", len(out), "width", p.renderer.VisibleWidth(out))
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("writing prompt: %w", err)
	}
	return nil
}

// Directory returns the working directory as displayed: home replaced by
// the configured token first, then shortened if enabled. An unreadable
// working directory yields "".
func (p *Prompt) Directory() string {
	wd, err := p.env.Getwd()
	if err != nil {
		log.Debug(log.CatPrompt, "Working directory unavailable", "error", err)
		return ""
	}

	path := wd
	if p.cfg.ShortenHomeCwd != "" {
		if home, ok := p.env.LookupEnv("HOME"); ok {
			path = paths.SubstituteHome(path, home, p.cfg.ShortenHomeCwd)
		}
	}
	if p.cfg.ShortenCwd {
		path = paths.Shorten(path)
	}
	return path
}

// PromptChar returns RootChar for the superuser and UserChar otherwise.
func PromptChar(id system.Identity) string {
	if id != nil && id.EffectiveUID() == system.RootUID {
		return RootChar
	}
	return UserChar
}

// vcsStatus resolves status for $PWD, falling back to the working directory
// when PWD is unset.
func (p *Prompt) vcsStatus() (domain.Status, bool) {
	dir, ok := p.env.LookupEnv("PWD")
	if !ok || dir == "" {
		wd, err := p.env.Getwd()
		if err != nil {
			return domain.Status{}, false
		}
		dir = wd
	}
	return p.status.Resolve(dir)
}

func (p *Prompt) statusIcon(c domain.Category) (string, Color) {
	switch c {
	case domain.CategoryUnstaged:
		return p.cfg.GitStatusUnstagedIcon, p.cfg.GitStatusUnstagedColor
	case domain.CategoryStaged:
		return p.cfg.GitStatusStagedIcon, p.cfg.GitStatusStagedColor
	default:
		return p.cfg.GitStatusCleanIcon, p.cfg.GitStatusCleanColor
	}
}
