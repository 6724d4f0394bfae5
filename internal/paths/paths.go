// Package paths provides the pure string transforms applied to the working
// directory before it is displayed.
package paths

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Separator is the path separator used for display. Prompts only render on
// hosts whose shells speak POSIX paths.
const Separator = "/"

// SubstituteHome replaces a leading home directory with token. Only the exact
// home directory or paths below it qualify: "/home/alice2" is left alone for
// home "/home/alice". An empty home or token disables substitution.
func SubstituteHome(path, home, token string) string {
	if home == "" || token == "" {
		return path
	}
	home = trimTrailingSeparator(home)
	if path == home {
		return token
	}
	if strings.HasPrefix(path, home+Separator) {
		return token + path[len(home):]
	}
	return path
}

// Shorten abbreviates every segment but the last to its first character.
// "/home/alice/projects/app" becomes "/h/a/p/app" and "~/src/ps1" becomes
// "~/s/ps1". Characters are grapheme clusters, so "/über/x" becomes "/ü/x".
func Shorten(path string) string {
	path = trimTrailingSeparator(path)
	segments := strings.Split(path, Separator)
	last := len(segments) - 1
	for i := 0; i < last; i++ {
		segments[i] = firstGrapheme(segments[i])
	}
	return strings.Join(segments, Separator)
}

func firstGrapheme(s string) string {
	if s == "" {
		return s
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster
}

func trimTrailingSeparator(p string) string {
	for len(p) > 1 && strings.HasSuffix(p, Separator) {
		p = p[:len(p)-1]
	}
	return p
}
