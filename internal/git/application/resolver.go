package application

import (
	"errors"
	"path/filepath"

	domain "github.com/zjrosen/ps1/internal/git/domain"
	"github.com/zjrosen/ps1/internal/log"
)

// DetachedHashLen is how many hex characters of the commit id label a
// detached HEAD.
const DetachedHashLen = 6

// Resolver computes the prompt's git status for a working directory.
type Resolver struct {
	opener Opener
}

// NewResolver creates a Resolver backed by opener.
func NewResolver(opener Opener) *Resolver {
	return &Resolver{opener: opener}
}

// Resolve returns the status of the repository enclosing path. The boolean
// is false when no repository encloses path, the repository has no commits,
// or reading HEAD or the status list fails.
func (r *Resolver) Resolve(path string) (domain.Status, bool) {
	repo, root, err := r.Discover(path)
	if err != nil {
		log.Debug(log.CatGit, "No repository found", "path", path)
		return domain.Status{}, false
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Debug(log.CatGit, "Failed to close repository", "root", root, "error", err)
		}
	}()

	head, err := repo.Head()
	if err != nil {
		if !errors.Is(err, domain.ErrNoCommits) {
			log.ErrorErr(log.CatGit, "Failed to resolve HEAD", err, "root", root)
		}
		return domain.Status{}, false
	}

	label := BranchLabel(head, Divergence(repo, head))

	entries, err := repo.StatusEntries()
	if err != nil {
		log.ErrorErr(log.CatGit, "Failed to read status", err, "root", root)
		return domain.Status{}, false
	}

	status := domain.Status{BranchLabel: label, Category: Classify(entries)}
	log.Debug(log.CatGit, "Resolved status", "root", root, "branch", status.BranchLabel, "category", status.Category.String())
	return status, true
}

// Discover opens the repository rooted at path or its nearest ancestor,
// returning the handle and the directory it was found at. Returns
// ErrNotGitRepo when no ancestor is a repository.
func (r *Resolver) Discover(path string) (Repository, string, error) {
	dir := filepath.Clean(path)
	for {
		repo, err := r.opener.Open(dir)
		if err == nil {
			return repo, dir, nil
		}
		if !errors.Is(err, domain.ErrNotGitRepo) {
			log.Warn(log.CatGit, "Skipping unreadable repository", "path", dir, "error", err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, "", domain.ErrNotGitRepo
		}
		dir = parent
	}
}

// Divergence compares a branch HEAD with its upstream. Any failure
// (detached HEAD, no upstream, graph walk error) yields no divergence.
func Divergence(repo Repository, head domain.Reference) domain.Divergence {
	if !head.IsBranch {
		return domain.Divergence{}
	}

	upstream, err := repo.Upstream(head.Short)
	if err != nil {
		if !errors.Is(err, domain.ErrNoUpstream) {
			log.Debug(log.CatGit, "Failed to resolve upstream", "branch", head.Short, "error", err)
		}
		return domain.Divergence{}
	}

	ahead, behind, err := repo.AheadBehind(head.Hash, upstream.Hash)
	if err != nil {
		log.Warn(log.CatGit, "Failed to compare with upstream", "branch", head.Short, "upstream", upstream.Name, "error", err)
		return domain.Divergence{}
	}
	return domain.Divergence{Ahead: ahead, Behind: behind}
}

// BranchLabel names HEAD by branch shorthand, or by abbreviated commit id
// when detached, followed by the divergence marker.
func BranchLabel(head domain.Reference, div domain.Divergence) string {
	name := head.Short
	if !head.IsBranch {
		name = head.ShortHash(DetachedHashLen)
	}
	return name + div.Marker()
}

// Classify scans entries in order. The first unstaged entry decides the
// result immediately; staged entries raise the category but keep scanning
// so a later unstaged entry can still win.
func Classify(entries []domain.StatusEntry) domain.Category {
	category := domain.CategoryClean
	for _, e := range entries {
		if e.Kind.IsWorktreeChange() {
			return domain.CategoryUnstaged
		}
		if e.Kind.IsIndexChange() {
			category = domain.CategoryStaged
		}
	}
	return category
}
