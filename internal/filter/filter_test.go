package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TS01: Extension Pattern Matching
func TestShouldInclude_ExtensionPattern(t *testing.T) {
	include := []string{"*.md"}

	assert.True(t, ShouldInclude("docs/readme.md", include, nil))
	assert.True(t, ShouldInclude("a.md", include, nil))
	assert.False(t, ShouldInclude("notes.txt", include, nil))
	// Extension must match exactly, not as a suffix of a longer extension
	assert.False(t, ShouldInclude("archive.mdx", include, nil))
	// A file literally named "md" has no extension
	assert.False(t, ShouldInclude("md", include, nil))
}

// TS02: Directory Prefix Pattern
func TestShouldInclude_DirectoryPrefixPattern(t *testing.T) {
	include := []string{"src/"}

	assert.True(t, ShouldInclude("src/main.go", include, nil))
	assert.True(t, ShouldInclude("src/nested/deep.go", include, nil))
	assert.False(t, ShouldInclude("other/src.go", include, nil))
	assert.False(t, ShouldInclude("mysrc/file.go", include, nil))
}

// TS03: Substring Pattern
func TestShouldInclude_SubstringPattern(t *testing.T) {
	include := []string{"README"}

	assert.True(t, ShouldInclude("README.md", include, nil))
	assert.True(t, ShouldInclude("docs/README.txt", include, nil))
	// Substring matching is lenient: it matches across path segments too
	assert.True(t, ShouldInclude("READMEs/other.txt", include, nil))
	assert.False(t, ShouldInclude("readme.md", include, nil))
}

// TS04: Exclusion Dominates Inclusion
func TestShouldInclude_ExclusionAlwaysWins(t *testing.T) {
	include := []string{"*.go"}
	exclude := []string{"vendor"}

	// Matches both an include and an exclude pattern: excluded
	assert.False(t, ShouldInclude("vendor/pkg/lib.go", include, exclude))
	assert.True(t, ShouldInclude("cmd/main.go", include, exclude))

	// Exclusion is a plain substring check anywhere in the path
	assert.False(t, ShouldInclude("src/vendored.go", include, exclude))
}

// TS05: Empty Include List Rejects Everything
func TestShouldInclude_EmptyIncludeRejectsAll(t *testing.T) {
	assert.False(t, ShouldInclude("a.md", nil, nil))
	assert.False(t, ShouldInclude("src/main.go", []string{}, nil))
}

// TS06: Empty Exclude List Pre-Rejects Nothing
func TestShouldInclude_EmptyExcludeList(t *testing.T) {
	include := []string{"*.txt"}

	assert.True(t, ShouldInclude("notes.txt", include, []string{}))
}

// TS07: First Matching Include Short-Circuits
func TestShouldInclude_MultipleIncludePatterns(t *testing.T) {
	include := []string{"*.md", "src/", "config"}

	assert.True(t, ShouldInclude("README.md", include, nil))
	assert.True(t, ShouldInclude("src/app.py", include, nil))
	assert.True(t, ShouldInclude("etc/config.json", include, nil))
	assert.False(t, ShouldInclude("bin/tool", include, nil))
}
