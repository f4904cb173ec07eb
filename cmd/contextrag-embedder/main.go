// Package main provides the contextrag-embedder utility.
//
// The embedder exchanges chunk JSON over stdin/stdout and emits
// deterministic hash-derived placeholder vectors, not real model output.
// It exists so the indexing pipeline's embedding boundary can be exercised
// end to end without a model runtime.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/context-rag/contextrag/internal/embed"
	"github.com/context-rag/contextrag/pkg/version"
)

const legacyModelName = "sentence-transformers/all-MiniLM-L6-v2"

// batchCacheSize bounds the per-invocation embedding cache. Batches often
// repeat identical chunks (empty files, boilerplate headers), so caching
// within one run is worthwhile even though the process is short-lived.
const batchCacheSize = 1024

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx := context.Background()

	if len(args) > 0 && args[0] == "--version" {
		fmt.Printf("contextrag-embedder %s\n", version.Short())
		return nil
	}

	// Single text mode: --text <text> --model <model>
	if len(args) > 3 && args[0] == "--text" && args[2] == "--model" {
		e := embed.NewStaticEmbedder(args[3])
		defer func() { _ = e.Close() }()

		resp, err := embed.EmbedText(ctx, e, args[1])
		if err != nil {
			return err
		}
		return emit(resp)
	}

	// Batch chunk mode: --model <model> with {"chunks": [...]} on stdin
	if len(args) > 1 && args[0] == "--model" {
		e := embed.NewCachedEmbedder(embed.NewStaticEmbedder(args[1]), batchCacheSize)
		defer func() { _ = e.Close() }()

		resp, err := embed.EmbedChunks(ctx, e, os.Stdin)
		if err != nil {
			return err
		}
		return emit(resp)
	}

	// Legacy mode: embed with {"texts": [...]} on stdin
	if len(args) > 0 && args[0] == "embed" {
		e := embed.NewStaticEmbedder(legacyModelName)
		defer func() { _ = e.Close() }()

		resp, err := embed.EmbedTexts(ctx, e, os.Stdin)
		if err != nil {
			return err
		}
		return emit(resp)
	}

	usage()
	os.Exit(1)
	return nil
}

// emit writes a response as a single JSON line on stdout.
func emit(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: contextrag-embedder [--version | --text <text> --model <model> | --model <model_name> | embed]")
	fmt.Fprintln(os.Stderr, "For --text command: returns single embedding for the provided text")
	fmt.Fprintln(os.Stderr, "For --model command, provide JSON input via stdin with format:")
	fmt.Fprintln(os.Stderr, `{"chunks": [{"content": "text", "file_path": "path", "chunk_index": 0}, ...]}`)
	fmt.Fprintln(os.Stderr, "For embed command, provide JSON input via stdin with format:")
	fmt.Fprintln(os.Stderr, `{"texts": ["text1", "text2", ...]}`)
}
