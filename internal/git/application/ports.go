// Package application defines ports (interfaces) for git operations and the
// status resolver built on top of them.
package application

import (
	domain "github.com/zjrosen/ps1/internal/git/domain"
)

// Opener opens a repository rooted at exactly the given directory.
// This abstraction allows for easy testing with mock implementations.
type Opener interface {
	// Open returns ErrNotGitRepo when path is not a repository root.
	// It does not search parent directories.
	Open(path string) (Repository, error)
}

// Repository is an open repository handle. Callers must Close it.
type Repository interface {
	// Head resolves HEAD to a commit.
	// Returns ErrNoCommits when HEAD points at an unborn branch.
	Head() (domain.Reference, error)

	// StatusEntries returns file-level status records ordered by path.
	StatusEntries() ([]domain.StatusEntry, error)

	// Upstream returns the tip of the remote-tracking branch configured for
	// the local branch name. Returns ErrNoUpstream when none is configured
	// or the tracking ref does not exist.
	Upstream(branch string) (domain.Reference, error)

	// AheadBehind reports whether some commit is reachable from local but
	// not upstream (ahead) and whether some commit is reachable from
	// upstream but not local (behind).
	AheadBehind(local, upstream string) (ahead, behind bool, err error)

	Close() error
}
