// Package filter decides whether filesystem paths should be indexed.
//
// Matching is deliberately plain-string: exclude patterns match as
// substrings anywhere in the path, include patterns match as directory
// prefixes (trailing separator), exact extensions (leading "*."), or
// substrings. There is no glob or regex support, so a substring pattern can
// match across unrelated path segments.
package filter

import (
	"path/filepath"
	"strings"
)

// ShouldInclude reports whether path is eligible for indexing under the
// given pattern lists. Exclusion is checked first and always wins. An empty
// include list admits nothing.
func ShouldInclude(path string, include, exclude []string) bool {
	for _, pattern := range exclude {
		if strings.Contains(path, pattern) {
			return false
		}
	}

	for _, pattern := range include {
		switch {
		case strings.HasSuffix(pattern, "/"):
			// Directory prefix pattern.
			if strings.HasPrefix(path, pattern) {
				return true
			}
		case strings.HasPrefix(pattern, "*."):
			// Extension pattern: the path's extension must equal it exactly.
			ext := strings.TrimPrefix(filepath.Ext(path), ".")
			if ext != "" && ext == pattern[2:] {
				return true
			}
		default:
			// Substring pattern.
			if strings.Contains(path, pattern) {
				return true
			}
		}
	}

	return false
}
