package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TS01: Short Content Yields One Chunk
func TestSplit_ShortContent(t *testing.T) {
	chunks := Split("hello\nworld")

	require.Len(t, chunks, 1)
	assert.Equal(t, "hello\nworld", chunks[0])
}

// TS02: Trailing Newline Does Not Add a Chunk
func TestSplit_TrailingNewline(t *testing.T) {
	chunks := Split("hello\nworld\n")

	require.Len(t, chunks, 1)
	assert.Equal(t, "hello\nworld", chunks[0])
}

// TS03: Greedy Packing at Line Boundaries
func TestSplit_GreedyLinePacking(t *testing.T) {
	// Three 400-char lines. The accumulator holds line+newline, and the
	// flush check compares accumulated length plus the next line's length:
	//   line 1: 0+400 <= 1000, accumulate (401)
	//   line 2: 401+400 <= 1000, accumulate (802)
	//   line 3: 802+400 > 1000, flush lines 1-2, accumulate line 3
	line := strings.Repeat("a", 400)
	content := line + "\n" + line + "\n" + line

	chunks := Split(content)

	require.Len(t, chunks, 2)
	assert.Equal(t, line+"\n"+line, chunks[0])
	assert.Equal(t, line, chunks[1])
}

// TS04: Each Full Line Beyond the Bound Becomes Its Own Chunk
func TestSplit_LinesNearBound(t *testing.T) {
	// Three 830-char lines: after the first line accumulates, every
	// subsequent line trips the bound, so each line flushes separately.
	line := strings.Repeat("x", 830)
	content := strings.Join([]string{line, line, line}, "\n")

	chunks := Split(content)

	require.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.Equal(t, line, c)
	}
}

// TS05: Oversized Single Line Is Never Split
func TestSplit_OversizedSingleLine(t *testing.T) {
	line := strings.Repeat("y", 2500)

	chunks := Split(line)

	require.Len(t, chunks, 1)
	assert.Equal(t, line, chunks[0])
	assert.Greater(t, len(chunks[0]), MaxChunkSize)
}

// TS06: Size Bound Holds for Multi-Line Chunks
func TestSplit_ChunkSizeBound(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString(strings.Repeat("z", 80))
		sb.WriteByte('\n')
	}

	chunks := Split(sb.String())

	require.NotEmpty(t, chunks)
	for _, c := range chunks {
		// Flushed chunks stay within the bound; only oversized single
		// lines may exceed it, and none exist here.
		assert.LessOrEqual(t, len(c), MaxChunkSize)
		assert.NotEmpty(t, strings.TrimSpace(c))
	}
}

// TS07: Reconstruction Preserves Line Order
func TestSplit_ReconstructionPreservesLines(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, strings.Repeat("w", 50+i%37))
	}
	content := strings.Join(lines, "\n")

	chunks := Split(content)

	var got []string
	for _, c := range chunks {
		got = append(got, strings.Split(c, "\n")...)
	}
	assert.Equal(t, lines, got)
}

// TS08: Empty Input Falls Back to One Empty Chunk
func TestSplit_EmptyContent(t *testing.T) {
	chunks := Split("")

	require.Len(t, chunks, 1)
	assert.Equal(t, "", chunks[0])
}

// TS09: Whitespace-Only Content Falls Back to the Original Text
func TestSplit_WhitespaceOnlyContent(t *testing.T) {
	content := "   \n\t\n  "

	chunks := Split(content)

	require.Len(t, chunks, 1)
	assert.Equal(t, content, chunks[0])
}

// TS10: CRLF Line Endings
func TestSplit_CRLFContent(t *testing.T) {
	chunks := Split("alpha\r\nbeta\r\n")

	require.Len(t, chunks, 1)
	assert.Equal(t, "alpha\nbeta", chunks[0])
}
