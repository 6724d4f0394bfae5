// Package domain provides domain types for git status resolution.
package domain

import "strings"

// Reference is the repository's current HEAD, resolved to a commit.
type Reference struct {
	Name     string // Full reference name (e.g., "refs/heads/main")
	Short    string // Shorthand (e.g., "main"); empty when detached
	Hash     string // Full 40-char SHA of the peeled commit
	IsBranch bool   // True if HEAD points at a local branch
}

// ShortHash returns the first n hex characters of the commit hash.
func (r Reference) ShortHash(n int) string {
	if len(r.Hash) <= n {
		return r.Hash
	}
	return r.Hash[:n]
}

// StatusKind is a bit set describing how a single path differs from HEAD.
// Index bits describe staged changes, worktree bits describe unstaged ones.
type StatusKind uint16

const (
	StatusCurrent StatusKind = 0

	StatusIndexNew StatusKind = 1 << iota
	StatusIndexModified
	StatusIndexDeleted
	StatusIndexRenamed
	StatusIndexTypeChange

	StatusWTNew
	StatusWTModified
	StatusWTDeleted
	StatusWTTypeChange
	StatusWTRenamed

	StatusIgnored
	StatusConflicted
)

const (
	indexMask = StatusIndexNew | StatusIndexModified | StatusIndexDeleted |
		StatusIndexRenamed | StatusIndexTypeChange
	worktreeMask = StatusWTNew | StatusWTModified | StatusWTDeleted |
		StatusWTTypeChange | StatusWTRenamed
)

// IsWorktreeChange reports whether the entry has unstaged changes.
func (k StatusKind) IsWorktreeChange() bool { return k&worktreeMask != 0 }

// IsIndexChange reports whether the entry has staged changes.
func (k StatusKind) IsIndexChange() bool { return k&indexMask != 0 }

func (k StatusKind) String() string {
	if k == StatusCurrent {
		return "current"
	}
	names := []struct {
		bit  StatusKind
		name string
	}{
		{StatusIndexNew, "index-new"},
		{StatusIndexModified, "index-modified"},
		{StatusIndexDeleted, "index-deleted"},
		{StatusIndexRenamed, "index-renamed"},
		{StatusIndexTypeChange, "index-typechange"},
		{StatusWTNew, "wt-new"},
		{StatusWTModified, "wt-modified"},
		{StatusWTDeleted, "wt-deleted"},
		{StatusWTTypeChange, "wt-typechange"},
		{StatusWTRenamed, "wt-renamed"},
		{StatusIgnored, "ignored"},
		{StatusConflicted, "conflicted"},
	}
	var parts []string
	for _, n := range names {
		if k&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// StatusEntry is one file-level status record.
type StatusEntry struct {
	Path string
	Kind StatusKind
}

// Category is the overall repository state shown in the prompt.
type Category int

const (
	CategoryClean Category = iota
	CategoryStaged
	CategoryUnstaged
)

func (c Category) String() string {
	switch c {
	case CategoryClean:
		return "clean"
	case CategoryStaged:
		return "staged"
	case CategoryUnstaged:
		return "unstaged"
	default:
		return "unknown"
	}
}

// Divergence glyphs appended to the branch label.
const (
	AheadGlyph  = " ↑"
	BehindGlyph = " ↓"
)

// Divergence marks whether the local branch is ahead of and/or behind its upstream.
type Divergence struct {
	Ahead  bool
	Behind bool
}

// Marker returns the suffix appended to the branch label. Ahead always
// precedes behind.
func (d Divergence) Marker() string {
	var b strings.Builder
	if d.Ahead {
		b.WriteString(AheadGlyph)
	}
	if d.Behind {
		b.WriteString(BehindGlyph)
	}
	return b.String()
}

// Status is the resolved repository state for a single render.
type Status struct {
	BranchLabel string
	Category    Category
}
