package filter

import (
	"sort"
	"strconv"
	"strings"
)

// canonicalNames deduplicates, drops empty names, and sorts, so structurally
// equivalent name lists from different call sites produce the same key.
func canonicalNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// keyFor serializes a canonical name list unambiguously. Each name is
// length-prefixed, so a name that happens to contain the separator can never
// collide with a multi-name list.
func keyFor(op string, names []string) string {
	var b strings.Builder
	b.WriteString(op)
	b.WriteByte('(')
	for _, name := range names {
		b.WriteString(strconv.Itoa(len(name)))
		b.WriteByte(':')
		b.WriteString(name)
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}
