// File: pkg/bundle/rollup.go
package bundle

import "strings"

// Rollup adds every block size to the root and to each proper ancestor
// prefix of its path. The block path itself gets no entry.
func Rollup(sizes SizeMap) DirSizeMap {
	dirs := DirSizeMap{}
	for path, size := range sizes {
		for _, prefix := range Ancestors(path) {
			dirs[prefix] += size
		}
	}
	return dirs
}

// Ancestors returns the root followed by every proper "/"-separated prefix of path,
// shortest first. "a/b/c.js" yields [".", "a", "a/b"].
func Ancestors(path string) []string {
	parts := strings.Split(path, "/")
	ancestors := make([]string, 0, len(parts))
	ancestors = append(ancestors, RootPrefix)
	for n := 1; n < len(parts); n++ {
		ancestors = append(ancestors, strings.Join(parts[:n], "/"))
	}
	return ancestors
}

// Total returns the sum of all block sizes.
func (s SizeMap) Total() int {
	total := 0
	for _, size := range s {
		total += size
	}
	return total
}
