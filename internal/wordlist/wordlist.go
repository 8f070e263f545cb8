// Package wordlist loads and normalizes word lists for the inference
// engine.
//
// The engine itself is case-sensitive and performs no normalization, so
// everything here runs strictly before invocation: NFC normalization,
// Unicode case folding, whitespace trimming, and dropping of empty
// entries. File handling errors are command-level concerns and never
// reach the engine's error taxonomy.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Options controls normalization behavior.
type Options struct {
	// CaseSensitive skips Unicode case folding when true. NFC
	// normalization and whitespace trimming always apply.
	CaseSensitive bool
}

// Load reads a newline-delimited word list from a file and normalizes
// it. A missing or unreadable file is returned as a wrapped error for
// the caller to map to its exit codes.
func Load(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var raw []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		raw = append(raw, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}

	return Normalize(raw, opts), nil
}

// FromArgs normalizes an inline word list taken from command arguments.
func FromArgs(args []string, opts Options) []string {
	return Normalize(args, opts)
}

// Normalize applies NFC normalization, optional case folding, and
// whitespace trimming to each word, preserving input order. Words that
// are empty after trimming are dropped; the engine requires non-empty
// strings.
func Normalize(words []string, opts Options) []string {
	folder := cases.Fold()

	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		w = norm.NFC.String(w)
		if !opts.CaseSensitive {
			w = folder.String(w)
		}
		out = append(out, w)
	}
	return out
}
