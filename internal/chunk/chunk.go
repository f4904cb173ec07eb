// Package chunk splits file content into bounded-size text chunks.
//
// The splitter is a greedy line packer, not a semantic one: lines are
// accumulated in order until the size bound would be crossed, there is no
// overlap between chunks, and the last chunk is never re-balanced.
package chunk

import "strings"

// MaxChunkSize is the accumulation bound in bytes. A single line longer
// than this is never split mid-line; it becomes one oversized chunk.
const MaxChunkSize = 1000

// Split breaks content into chunks along line boundaries. Every chunk is
// trimmed of surrounding whitespace. Any non-empty input yields at least one
// chunk: when line-based splitting produces nothing (empty or
// whitespace-only content), the entire original content is returned
// verbatim as a single chunk.
func Split(content string) []string {
	var chunks []string
	var current strings.Builder

	for _, line := range splitLines(content) {
		if current.Len()+len(line) > MaxChunkSize && current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}

		current.WriteString(line)
		current.WriteByte('\n')
	}

	if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
		chunks = append(chunks, trimmed)
	}

	if len(chunks) == 0 {
		chunks = append(chunks, content)
	}

	return chunks
}

// splitLines splits on newlines without producing a phantom final line for
// trailing-newline input. Carriage returns from CRLF endings are stripped.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
