// Package report formats the outcome of a compound word search.
package report

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	trie "github.com/sarthakjha889/go-compound-trie"
)

// ErrUnknownFormat is returned by Write for a format other than text or yaml.
var ErrUnknownFormat = errors.New("unknown report format")

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Entry is one ranked compound word.
type Entry struct {
	Word   string   `yaml:"word"`
	Length int      `yaml:"length"`
	Parts  []string `yaml:"parts,omitempty"`
}

// Report is what gets printed after a run.
type Report struct {
	Words     int     `yaml:"words"`
	Longest   []Entry `yaml:"longest"`
	Compounds int     `yaml:"compounds"`
	// Trace holds every decomposition found when requested.
	Trace trie.DecompositionMap `yaml:"trace,omitempty"`
}

// New builds a Report for a dictionary of size words. Empty slots of top are
// kept so the report always ranks two entries.
func New(size int, top [2]string, parts trie.DecompositionMap, trace bool) Report {
	r := Report{Words: size, Compounds: len(parts)}
	for _, word := range top {
		r.Longest = append(r.Longest, Entry{Word: word, Length: len(word), Parts: parts[word]})
	}
	if trace {
		r.Trace = parts
	}
	return r
}

// Write writes r to w in the given format.
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case FormatText, "":
		return WriteText(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteText writes each ranked word followed by its length in parentheses.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "The two longest compound words among %d words are:\n\n", r.Words)
	for _, e := range r.Longest {
		if e.Word == "" {
			b.WriteString("(none)\n")
			continue
		}
		fmt.Fprintf(&b, "%s(%d)", e.Word, e.Length)
		if len(e.Parts) > 0 {
			fmt.Fprintf(&b, " = %s", strings.Join(e.Parts, " + "))
		}
		b.WriteByte('\n')
	}
	if len(r.Trace) > 0 {
		fmt.Fprintf(&b, "\n%d compound words found:\n", len(r.Trace))
		for _, word := range sortedKeys(r.Trace) {
			fmt.Fprintf(&b, "  %s = %s\n", word, strings.Join(r.Trace[word], " + "))
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteYAML writes r as a YAML document.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
