package passmgr

import (
	"fmt"
	"path"
	"strings"
)

// match pairs a resolved pass with the parent/index it was found at,
// so structural operations can splice without a second lookup.
type match struct {
	node   *Pass
	parent *Pass
	index  int
}

// resolveMatches walks root's descendants for every node matching the
// dotted, wildcard-capable segments (§4.6 "Path language"): `*` and
// `?` match within one name element, and a literal `**` element
// recursively descends zero or more levels.
func resolveMatches(root *Pass, segments []string) []match {
	if len(segments) == 0 {
		return []match{{node: root, parent: root.parent, index: indexIn(root.parent, root)}}
	}
	return resolveFrom(root, segments)
}

func resolveFrom(n *Pass, segments []string) []match {
	seg := segments[0]
	rest := segments[1:]

	if seg == "**" {
		var out []match
		if len(rest) > 0 {
			out = append(out, resolveFrom(n, rest)...)
		}
		for i, c := range n.children {
			if len(rest) == 0 {
				out = append(out, match{node: c, parent: n, index: i})
			}
			out = append(out, resolveFrom(c, segments)...)
		}
		return dedupMatches(out)
	}

	var out []match
	for i, c := range n.children {
		if !globMatch(seg, c.name) {
			continue
		}
		if len(rest) == 0 {
			out = append(out, match{node: c, parent: n, index: i})
			continue
		}
		out = append(out, resolveFrom(c, rest)...)
	}
	return out
}

func globMatch(pattern, name string) bool {
	ok, err := path.Match(pattern, name)
	return err == nil && ok
}

func indexIn(parent, n *Pass) int {
	if parent == nil {
		return -1
	}
	for i, c := range parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

func dedupMatches(in []match) []match {
	seen := make(map[*Pass]bool, len(in))
	var out []match
	for _, m := range in {
		if seen[m.node] {
			continue
		}
		seen[m.node] = true
		out = append(out, m)
	}
	return out
}

// resolveOne resolves target to exactly one pass reachable from root,
// as structural operations require a single, unambiguous sub-pass.
func resolveOne(root *Pass, target string) (match, error) {
	segs := splitPath(target)
	matches := resolveMatches(root, segs)
	switch len(matches) {
	case 0:
		return match{}, fmt.Errorf("passmgr: no pass matches %q", target)
	case 1:
		return matches[0], nil
	default:
		return match{}, fmt.Errorf("passmgr: %q is ambiguous, matches %d passes", target, len(matches))
	}
}

func splitPath(dotted string) []string {
	if dotted == "" {
		return nil
	}
	return strings.Split(dotted, ".")
}
