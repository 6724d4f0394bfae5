package paths

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSubstituteHome_TableDriven(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		home     string
		token    string
		expected string
	}{
		{"home itself", "/home/alice", "/home/alice", "~", "~"},
		{"child of home", "/home/alice/app", "/home/alice", "~", "~/app"},
		{"deep child", "/home/alice/a/b/c", "/home/alice", "~", "~/a/b/c"},
		{"sibling sharing prefix", "/home/alicexyz", "/home/alice", "~", "/home/alicexyz"},
		{"sibling child sharing prefix", "/home/alice2/app", "/home/alice", "~", "/home/alice2/app"},
		{"outside home", "/tmp/work", "/home/alice", "~", "/tmp/work"},
		{"home with trailing slash", "/home/alice/app", "/home/alice/", "~", "~/app"},
		{"custom token", "/home/alice/app", "/home/alice", "⌂", "⌂/app"},
		{"only first occurrence", "/home/alice/home/alice", "/home/alice", "~", "~/home/alice"},
		{"empty home", "/home/alice/app", "", "~", "/home/alice/app"},
		{"empty token", "/home/alice/app", "/home/alice", "", "/home/alice/app"},
		{"root home matches root only", "/", "/", "~", "~"},
		{"root home leaves children", "/etc", "/", "~", "/etc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := SubstituteHome(tc.path, tc.home, tc.token)
			require.Equal(t, tc.expected, result)
		})
	}
}

func TestShorten_TableDriven(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"absolute path", "/home/alice/projects/app", "/h/a/p/app"},
		{"tmp path", "/tmp/my_dir/foo", "/t/m/foo"},
		{"home token first segment", "~/projects/app", "~/p/app"},
		{"multi-char token", "HOME/projects/app", "H/p/app"},
		{"single segment", "app", "app"},
		{"root", "/", "/"},
		{"top-level dir", "/etc", "/etc"},
		{"empty", "", ""},
		{"trailing slash", "/home/alice/", "/h/alice"},
		{"dot directory", "/home/.config/nvim", "/h/./nvim"},
		{"unicode segment", "/über/straße/x", "/ü/s/x"},
		{"combining mark kept whole", "/e\u0301cole/x", "/e\u0301/x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Shorten(tc.input))
		})
	}
}

func TestShorten_AfterSubstituteHome(t *testing.T) {
	path := SubstituteHome("/home/alice/projects/app", "/home/alice", "~")
	require.Equal(t, "~/p/app", Shorten(path))
}

var segmentGen = rapid.StringMatching(`[a-zA-Z0-9_.-]{1,12}`)

func TestProperty_ShortenKeepsLastSegmentAndCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		segs := rapid.SliceOfN(segmentGen, 1, 8).Draw(t, "segments")
		path := "/" + strings.Join(segs, "/")

		got := Shorten(path)
		gotSegs := strings.Split(got, "/")

		if len(gotSegs) != len(segs)+1 {
			t.Fatalf("segment count changed: %q -> %q", path, got)
		}
		if gotSegs[len(gotSegs)-1] != segs[len(segs)-1] {
			t.Fatalf("last segment changed: %q -> %q", path, got)
		}
		for i, s := range gotSegs[1 : len(gotSegs)-1] {
			if s != segs[i][:1] {
				t.Fatalf("segment %d: got %q, want %q", i, s, segs[i][:1])
			}
		}
		if Shorten(got) != got {
			t.Fatalf("shortening twice changed %q to %q", got, Shorten(got))
		}
	})
}

func TestProperty_SubstituteHomeNeverMatchesSiblings(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		home := "/home/" + segmentGen.Draw(t, "user")
		suffix := segmentGen.Draw(t, "suffix")
		sibling := home + suffix

		if got := SubstituteHome(sibling, home, "~"); got != sibling {
			t.Fatalf("sibling %q of home %q was rewritten to %q", sibling, home, got)
		}

		child := home + "/" + suffix
		if got := SubstituteHome(child, home, "~"); got != "~/"+suffix {
			t.Fatalf("child %q of home %q rendered as %q", child, home, got)
		}
	})
}
