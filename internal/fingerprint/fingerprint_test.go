package fingerprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TS01: Determinism
func TestHash_Deterministic(t *testing.T) {
	content := "package main\n\nfunc main() {}\n"

	first := Hash(content)
	second := Hash(content)

	assert.Equal(t, first, second)
}

// TS02: Fixed-Length Hex Output
func TestHash_HexEncoded256Bit(t *testing.T) {
	digest := Hash("hello")

	// 256 bits as lowercase hex
	require.Len(t, digest, 64)
	assert.Equal(t, strings.ToLower(digest), digest)
	for _, r := range digest {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

// TS03: Sensitivity to Single-Character Changes
func TestHash_SingleCharacterDifference(t *testing.T) {
	assert.NotEqual(t, Hash("hello world"), Hash("hello worle"))
	assert.NotEqual(t, Hash("ab"), Hash("ba"))
}

// TS04: Empty Input
func TestHash_EmptyContent(t *testing.T) {
	// SHA-256 of the empty string is a well-known constant
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Hash(""))
}

// TS05: Known Vector
func TestHash_KnownVector(t *testing.T) {
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		Hash("hello"))
}
