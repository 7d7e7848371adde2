// Package wordlist reads newline-delimited word lists.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

// Options controls how lines become words.
type Options struct {
	// Lowercase folds every word to lower case.
	Lowercase bool
	// KeepBlank keeps empty lines as empty words.
	KeepBlank bool
}

// Read returns the words in r, one per line, in input order. Surrounding
// whitespace and carriage returns are trimmed.
func Read(r io.Reader, opts Options) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	words := lo.Map(lines, func(line string, _ int) string {
		word := strings.TrimSpace(line)
		if opts.Lowercase {
			word = strings.ToLower(word)
		}
		return word
	})
	if opts.KeepBlank {
		return words, nil
	}
	return lo.Compact(words), nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return Read(f, opts)
}
