// Package fingerprint computes content fingerprints for change tracking.
// Fingerprints are stored with every indexed chunk as provenance; they are
// not consulted to skip unchanged files.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the lowercase hex SHA-256 digest of the raw content bytes.
// The digest is a pure function of content: any single-byte difference
// anywhere in the input yields a different digest.
func Hash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
