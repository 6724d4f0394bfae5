package domain

import "errors"

// Git-specific errors for status resolution.
var (
	// ErrNotGitRepo indicates the directory is not a git repository.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrNoCommits indicates HEAD does not resolve to a commit (unborn branch).
	ErrNoCommits = errors.New("repository has no commits")

	// ErrNoUpstream indicates the branch has no tracked upstream.
	ErrNoUpstream = errors.New("branch has no upstream")
)
