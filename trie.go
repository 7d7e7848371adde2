package trie

import (
	"slices"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Dictionary is a prefix trie holding a word list for exact membership queries,
// ordered traversal and compound decomposition.
type Dictionary struct {
	root                      *node
	mu                        sync.RWMutex
	normalised, caseSensitive bool
	size                      int
}

// node is a node in a Dictionary. Each node owns its children, keyed by the
// next byte of the words passing through it.
type node struct {
	letter    byte
	isWordEnd bool
	children  map[byte]*node
}

func newNode(letter byte) *node {
	return &node{letter: letter, children: make(map[byte]*node)}
}

// sortedChildren returns the children of n in ascending letter order.
func (n *node) sortedChildren() []*node {
	letters := make([]byte, 0, len(n.children))
	for letter := range n.children {
		letters = append(letters, letter)
	}
	slices.Sort(letters)
	kids := make([]*node, len(letters))
	for i, letter := range letters {
		kids[i] = n.children[letter]
	}
	return kids
}

// New creates a new empty Dictionary. By default words are stored exactly as
// given: no normalisation, case sensitive.
func New() *Dictionary {
	d := new(Dictionary)
	d.root = newNode(0)
	d.WithoutNormalisation()
	d.CaseSensitive()
	return d
}

// WithNormalisation sets the Dictionary to strip combining marks from words
// on insert and lookup, so Jürgen and Jurgen are the same entry.
func (d *Dictionary) WithNormalisation() *Dictionary {
	d.normalised = true
	return d
}

// WithoutNormalisation stores and looks up words byte for byte.
func (d *Dictionary) WithoutNormalisation() *Dictionary {
	d.normalised = false
	return d
}

// CaseSensitive sets the Dictionary to treat upper and lower case as distinct.
func (d *Dictionary) CaseSensitive() *Dictionary {
	d.caseSensitive = true
	return d
}

// CaseInsensitive sets the Dictionary to lowercase words on insert and lookup.
func (d *Dictionary) CaseInsensitive() *Dictionary {
	d.caseSensitive = false
	return d
}

// normalise applies the Dictionary's settings to a word.
func (d *Dictionary) normalise(word string) string {
	if d.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normal, _, err := transform.String(transformer, word); err == nil {
			word = normal
		}
	}
	if !d.caseSensitive {
		word = strings.ToLower(word)
	}
	return word
}

// Insert adds words to the Dictionary. Inserting a word twice has no effect
// and inserting the empty string marks the root as a word end.
func (d *Dictionary) Insert(words ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, word := range words {
		d.insertInternal(d.normalise(word))
	}
}

// insertInternal performs the actual insertion without locking.
func (d *Dictionary) insertInternal(word string) {
	current := d.root
	for i := 0; i < len(word); i++ {
		child, ok := current.children[word[i]]
		if !ok {
			child = newNode(word[i])
			current.children[word[i]] = child
		}
		current = child
	}
	if !current.isWordEnd {
		current.isWordEnd = true
		d.size++
	}
}

// Contains reports whether word was inserted. A word that only exists as the
// prefix of longer entries is not contained.
func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.contains(d.normalise(word))
}

// contains looks word up without locking or normalising.
func (d *Dictionary) contains(word string) bool {
	current := d.root
	for i := 0; i < len(word); i++ {
		next, ok := current.children[word[i]]
		if !ok {
			return false
		}
		current = next
	}
	return current.isWordEnd
}

// Len returns the number of distinct words in the Dictionary.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.size
}

// Walk calls fn for every word in the Dictionary in ascending byte order.
// Returning false from fn stops the walk.
func (d *Dictionary) Walk(fn func(word string) bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	buf := make([]byte, 0, 32)
	if d.root.isWordEnd && !fn("") {
		return
	}
	for _, child := range d.root.sortedChildren() {
		if !child.walk(&buf, fn) {
			return
		}
	}
}

// walk is the recursive part of Walk. It reports false once fn asked to stop.
func (n *node) walk(buf *[]byte, fn func(word string) bool) bool {
	*buf = append(*buf, n.letter)
	defer func() { *buf = (*buf)[:len(*buf)-1] }()
	if n.isWordEnd && !fn(string(*buf)) {
		return false
	}
	for _, child := range n.sortedChildren() {
		if !child.walk(buf, fn) {
			return false
		}
	}
	return true
}

// Words returns every word in the Dictionary in ascending byte order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, d.Len())
	d.Walk(func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

// RunDecomposition runs a default Decomposer over the Dictionary and returns
// the two longest compound words, longest first, with the decomposition of
// every compound found.
func (d *Dictionary) RunDecomposition() ([2]string, DecompositionMap) {
	return NewDecomposer(d).Run()
}
