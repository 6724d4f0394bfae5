// Package infrastructure implements the git ports on top of go-git, reading
// repositories directly from disk without spawning a git process.
package infrastructure

import (
	"bufio"
	"container/heap"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/zjrosen/ps1/internal/git/application"
	domain "github.com/zjrosen/ps1/internal/git/domain"
	"github.com/zjrosen/ps1/internal/log"
)

// MaxDivergenceWalk bounds how many commits AheadBehind loads before it
// gives up on comparing a branch with its upstream.
const MaxDivergenceWalk = 10000

// ErrWalkLimit is returned by AheadBehind when the comparison needs more
// than its commit budget.
var ErrWalkLimit = errors.New("history walk limit reached")

// Opener opens repositories with go-git.
type Opener struct{}

// NewOpener returns an Opener.
func NewOpener() Opener { return Opener{} }

// Open opens the repository whose work tree (or bare directory) is exactly path.
func (Opener) Open(path string) (application.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit:          false,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrNotGitRepo)
		}
		return nil, fmt.Errorf("opening repository %s: %w", path, err)
	}
	return &Repository{repo: repo, walkLimit: MaxDivergenceWalk}, nil
}

// Repository adapts a go-git repository to application.Repository.
type Repository struct {
	repo      *git.Repository
	walkLimit int
}

var _ application.Repository = (*Repository)(nil)

// Head resolves HEAD and peels it to a commit.
func (r *Repository) Head() (domain.Reference, error) {
	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return domain.Reference{}, domain.ErrNoCommits
		}
		return domain.Reference{}, fmt.Errorf("reading HEAD: %w", err)
	}

	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return domain.Reference{}, fmt.Errorf("peeling HEAD to commit: %w", err)
	}

	out := domain.Reference{
		Name:     ref.Name().String(),
		Hash:     commit.Hash.String(),
		IsBranch: ref.Name().IsBranch(),
	}
	if out.IsBranch {
		out.Short = ref.Name().Short()
	}
	return out, nil
}

// StatusEntries returns the work tree status sorted by path. Files matched
// by the system, global or XDG excludes files are left out, as git does.
func (r *Repository) StatusEntries() ([]domain.StatusEntry, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	wt.Excludes = append(wt.Excludes, userExcludes(osfs.New("/"))...)
	st, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}

	entries := make([]domain.StatusEntry, 0, len(st))
	for path, fs := range st {
		entries = append(entries, domain.StatusEntry{Path: path, Kind: statusKind(fs)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// userExcludes loads the ignore patterns that live outside the repository:
// core.excludesFile from /etc/gitconfig and ~/.gitconfig, falling back to
// $XDG_CONFIG_HOME/git/ignore when the user sets none. fs must be rooted at
// the root directory. Unreadable files are skipped.
func userExcludes(fs billy.Filesystem) []gitignore.Pattern {
	system, err := gitignore.LoadSystemPatterns(fs)
	if err != nil {
		log.Debug(log.CatGit, "Skipping system excludes", "error", err)
	}
	global, err := gitignore.LoadGlobalPatterns(fs)
	if err != nil {
		log.Debug(log.CatGit, "Skipping global excludes", "error", err)
	}
	if len(global) == 0 {
		if global, err = xdgExcludes(fs); err != nil {
			log.Debug(log.CatGit, "Skipping XDG excludes", "error", err)
		}
	}
	return append(system, global...)
}

// xdgExcludes reads git's default per-user ignore file.
func xdgExcludes(fs billy.Filesystem) ([]gitignore.Pattern, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil
		}
		base = filepath.Join(home, ".config")
	}

	f, err := fs.Open(filepath.Join(base, "git", "ignore"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var ps []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, nil))
	}
	return ps, scanner.Err()
}

// statusKind converts go-git's two-column status code into a bit set.
func statusKind(fs *git.FileStatus) domain.StatusKind {
	if fs.Worktree == git.Untracked {
		return domain.StatusWTNew
	}

	var k domain.StatusKind
	switch fs.Staging {
	case git.Added, git.Copied:
		k |= domain.StatusIndexNew
	case git.Modified:
		k |= domain.StatusIndexModified
	case git.Deleted:
		k |= domain.StatusIndexDeleted
	case git.Renamed:
		k |= domain.StatusIndexRenamed
	case git.UpdatedButUnmerged:
		k |= domain.StatusConflicted
	}

	switch fs.Worktree {
	case git.Modified:
		k |= domain.StatusWTModified
	case git.Deleted:
		k |= domain.StatusWTDeleted
	case git.Renamed:
		k |= domain.StatusWTRenamed
	case git.UpdatedButUnmerged:
		// Unresolved conflict markers live in the work tree.
		k |= domain.StatusConflicted | domain.StatusWTModified
	}
	return k
}

// Upstream returns the remote-tracking ref configured for branch.
func (r *Repository) Upstream(branch string) (domain.Reference, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return domain.Reference{}, fmt.Errorf("reading config: %w", err)
	}

	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" || b.Merge == "" {
		return domain.Reference{}, domain.ErrNoUpstream
	}

	name := trackingRef(cfg, b)
	ref, err := r.repo.Reference(name, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return domain.Reference{}, fmt.Errorf("%s: %w", name, domain.ErrNoUpstream)
		}
		return domain.Reference{}, fmt.Errorf("resolving %s: %w", name, err)
	}

	return domain.Reference{
		Name:     ref.Name().String(),
		Short:    ref.Name().Short(),
		Hash:     ref.Hash().String(),
		IsBranch: ref.Name().IsBranch(),
	}, nil
}

// trackingRef maps a branch's merge ref through its remote's fetch refspecs.
// A remote of "." tracks a local branch directly.
func trackingRef(cfg *config.Config, b *config.Branch) plumbing.ReferenceName {
	if b.Remote == "." {
		return b.Merge
	}
	if remote, ok := cfg.Remotes[b.Remote]; ok {
		for _, rs := range remote.Fetch {
			if rs.Match(b.Merge) {
				return rs.Dst(b.Merge)
			}
		}
	}
	return plumbing.NewRemoteReferenceName(b.Remote, b.Merge.Short())
}

// AheadBehind reports whether each side has a commit the other lacks.
//
// Both tips are painted down their history newest first, each commit
// carrying a mark for every tip it is reachable from. Once every queued
// commit carries both marks nothing older can change the answer, so the
// walk stops at the merge base instead of reading all of history.
func (r *Repository) AheadBehind(local, upstream string) (bool, bool, error) {
	if local == upstream {
		return false, false, nil
	}

	w := &divergenceWalk{
		repo:  r.repo,
		marks: make(map[plumbing.Hash]reach),
		limit: r.walkLimit,
	}
	localHash, upstreamHash := plumbing.NewHash(local), plumbing.NewHash(upstream)
	if err := w.paint(localHash, fromLocal); err != nil {
		return false, false, err
	}
	if err := w.paint(upstreamHash, fromUpstream); err != nil {
		return false, false, err
	}
	if err := w.run(); err != nil {
		return false, false, err
	}

	ahead := w.marks[localHash]&fromUpstream == 0
	behind := w.marks[upstreamHash]&fromLocal == 0
	return ahead, behind, nil
}

// reach records which tips a commit is reachable from.
type reach uint8

const (
	fromLocal reach = 1 << iota
	fromUpstream

	fromBoth = fromLocal | fromUpstream
)

type divergenceWalk struct {
	repo   *git.Repository
	marks  map[plumbing.Hash]reach
	queue  commitQueue
	loaded int
	limit  int
}

// paint adds mark to h. A commit that gains a mark is queued again so the
// mark reaches its parents even when commit dates are out of order.
func (w *divergenceWalk) paint(h plumbing.Hash, mark reach) error {
	prev := w.marks[h]
	if prev|mark == prev {
		return nil
	}
	w.marks[h] = prev | mark

	if w.loaded >= w.limit {
		return fmt.Errorf("%w after %d commits", ErrWalkLimit, w.loaded)
	}
	c, err := w.repo.CommitObject(h)
	if err != nil {
		return fmt.Errorf("loading %s: %w", h, err)
	}
	w.loaded++
	heap.Push(&w.queue, c)
	return nil
}

func (w *divergenceWalk) run() error {
	for w.queue.Len() > 0 && !w.settled() {
		c := heap.Pop(&w.queue).(*object.Commit)
		mark := w.marks[c.Hash]
		for _, p := range c.ParentHashes {
			if err := w.paint(p, mark); err != nil {
				return err
			}
		}
	}
	return nil
}

// settled reports whether every queued commit is reachable from both tips.
func (w *divergenceWalk) settled() bool {
	for _, c := range w.queue {
		if w.marks[c.Hash] != fromBoth {
			return false
		}
	}
	return true
}

// commitQueue is a max-heap of commits ordered by committer time.
type commitQueue []*object.Commit

func (q commitQueue) Len() int { return len(q) }
func (q commitQueue) Less(i, j int) bool {
	return q[i].Committer.When.After(q[j].Committer.When)
}
func (q commitQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *commitQueue) Push(x any) { *q = append(*q, x.(*object.Commit)) }

func (q *commitQueue) Pop() any {
	old := *q
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return c
}

// Close releases pack file handles held by the object storage.
func (r *Repository) Close() error {
	if c, ok := r.repo.Storer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
