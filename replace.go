package lingo

import (
	"sort"
	"strings"
)

// ReplaceAll substitutes every pair key with its value in a single pass
// over s. Each input position is replaced at most once and the longest
// matching key wins, so replacements never cascade into each other.
func ReplaceAll(s string, pairs map[string]string) string {
	if len(pairs) == 0 {
		return s
	}

	keys := make([]string, 0, len(pairs))
	for key := range pairs {
		if key != "" {
			keys = append(keys, key)
		}
	}

	// strings.Replacer tries patterns in argument order at each position,
	// so longer keys must come first.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	oldnew := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		oldnew = append(oldnew, key, pairs[key])
	}

	return strings.NewReplacer(oldnew...).Replace(s)
}
