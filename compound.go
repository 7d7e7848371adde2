package trie

import (
	"math"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// DecompositionMap maps each compound word found by a Decomposer to the
// ordered dictionary words it was built from.
type DecompositionMap map[string][]string

// Result holds the two longest compound words found so far.
type Result struct {
	topTwo [2]string
	// found records when each slot was filled, for ordering equal lengths.
	found               [2]int
	seen                int
	secondLongestLength int
}

func newResult() *Result {
	return &Result{
		found:               [2]int{math.MaxInt, math.MaxInt},
		secondLongestLength: 1,
	}
}

// offer replaces the shorter of the two champions with word when word is
// strictly longer. Equal lengths keep the word found first.
func (r *Result) offer(word string) bool {
	r.seen++
	slot := 1
	if len(r.topTwo[0]) < len(r.topTwo[1]) {
		slot = 0
	}
	if len(word) <= len(r.topTwo[slot]) {
		return false
	}
	r.topTwo[slot] = word
	r.found[slot] = r.seen
	r.secondLongestLength = min(len(r.topTwo[0]), len(r.topTwo[1]))
	return true
}

// TopTwo returns the two longest compound words, longest first. A slot that
// was never filled holds the empty string.
func (r *Result) TopTwo() [2]string {
	first, second := 0, 1
	if len(r.topTwo[1]) > len(r.topTwo[0]) ||
		(len(r.topTwo[1]) == len(r.topTwo[0]) && r.found[1] < r.found[0]) {
		first, second = 1, 0
	}
	return [2]string{r.topTwo[first], r.topTwo[second]}
}

// SecondLongestLength is the length a candidate must reach to be considered.
func (r *Result) SecondLongestLength() int {
	return r.secondLongestLength
}

type outcome struct {
	parts []string
	ok    bool
}

// Decomposer walks a Dictionary looking for words made of other words in the
// same Dictionary, keeping the two longest.
type Decomposer struct {
	dict   *Dictionary
	result *Result
	parts  DecompositionMap
	memo   *lru.Cache[string, outcome]
	logger *zap.Logger

	// buf is the path from the root to the node being visited and boundaries
	// the offsets in buf where a word ends along that path.
	buf        []byte
	boundaries []int
}

// NewDecomposer creates a Decomposer over d. It does not memoise and logs
// nothing until configured otherwise.
func NewDecomposer(d *Dictionary) *Decomposer {
	return &Decomposer{
		dict:   d,
		result: newResult(),
		parts:  make(DecompositionMap),
		logger: zap.NewNop(),
	}
}

// WithMemo caches the outcome of up to size sub-segments between splits.
// Results are identical with or without it.
// WARNING, this function will panic if size is not positive.
func (c *Decomposer) WithMemo(size int) *Decomposer {
	if size <= 0 {
		panic("invalid memo size for Decomposer")
	}
	memo, err := lru.New[string, outcome](size)
	if err != nil {
		panic(err)
	}
	c.memo = memo
	return c
}

// WithoutMemo turns memoisation off.
func (c *Decomposer) WithoutMemo() *Decomposer {
	c.memo = nil
	return c
}

// WithLogger sets the logger compound discoveries are reported to at debug level.
func (c *Decomposer) WithLogger(logger *zap.Logger) *Decomposer {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
	return c
}

// Result returns the ranking of the last Run.
func (c *Decomposer) Result() *Result {
	return c.result
}

// Run walks the whole Dictionary and returns the two longest compound words,
// longest first, along with the decomposition of every compound found.
func (c *Decomposer) Run() ([2]string, DecompositionMap) {
	c.result = newResult()
	c.parts = make(DecompositionMap)
	c.buf = c.buf[:0]
	c.boundaries = c.boundaries[:0]
	if c.memo != nil {
		c.memo.Purge()
	}
	c.dict.traverseAndDecompose(c)
	top := c.result.TopTwo()
	c.logger.Debug("decomposition finished",
		zap.Int("compounds", len(c.parts)),
		zap.String("longest", top[0]),
		zap.String("second", top[1]))
	return top, c.parts
}

// traverseAndDecompose visits every node below the root depth first, one
// top-level branch at a time in ascending letter order.
func (d *Dictionary) traverseAndDecompose(c *Decomposer) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, child := range d.root.sortedChildren() {
		c.visit(child, 0)
	}
}

// visit extends the path with n and checks whether the word ending at n is a
// compound, then descends into n's children. boundaryCount is the number of
// word ends on the path above n.
func (c *Decomposer) visit(n *node, boundaryCount int) {
	c.buf = append(c.buf, n.letter)
	defer func(size int) { c.buf = c.buf[:size] }(len(c.buf) - 1)

	if n.isWordEnd {
		end := len(c.buf)
		c.boundaries = append(c.boundaries[:boundaryCount], end)
		// Only words with no longer word below them and at least one shorter
		// word on their path are candidates.
		if end >= c.result.secondLongestLength && len(n.children) == 0 && boundaryCount >= 1 {
			c.consider(c.boundaries[boundaryCount-1], end)
		}
		boundaryCount++
	}

	for _, child := range n.sortedChildren() {
		c.visit(child, boundaryCount)
	}
}

// consider tests whether buf[:end] is a compound whose last word boundary
// before end is at start.
func (c *Decomposer) consider(start, end int) {
	word := string(c.buf[:end])
	tail := string(c.buf[start:end])
	parts, ok := c.composed(tail)
	if !ok {
		return
	}
	// buf[:start] ends on a boundary so it is a dictionary word.
	parts = append([]string{string(c.buf[:start])}, parts...)
	c.parts[word] = parts
	c.logger.Debug("compound found", zap.String("word", word), zap.Strings("parts", parts))

	if c.result.offer(word) {
		c.logger.Debug("new champion",
			zap.String("word", word),
			zap.Int("length", len(word)),
			zap.Int("threshold", c.result.secondLongestLength))
	}
}

// composed reports whether segment is a dictionary word or splits into
// dictionary words, returning the words in order.
func (c *Decomposer) composed(segment string) ([]string, bool) {
	if segment == "" {
		return nil, false
	}
	if c.dict.contains(segment) {
		return []string{segment}, true
	}
	return c.split(segment)
}

// split reports whether segment can be cut into two or more dictionary words.
func (c *Decomposer) split(segment string) ([]string, bool) {
	if c.memo != nil {
		if out, ok := c.memo.Get(segment); ok {
			return out.parts, out.ok
		}
	}
	parts, ok := c.splitInternal(segment)
	if c.memo != nil {
		c.memo.Add(segment, outcome{parts: parts, ok: ok})
	}
	return parts, ok
}

func (c *Decomposer) splitInternal(segment string) ([]string, bool) {
	for i := 1; i < len(segment); i++ {
		left, right := segment[:i], segment[i:]
		if c.dict.contains(left) {
			if c.dict.contains(right) {
				return []string{left, right}, true
			}
			if rest, ok := c.split(right); ok {
				return append([]string{left}, rest...), true
			}
		}
		if lp, ok := c.split(left); ok {
			if rp, ok := c.split(right); ok {
				return slices.Concat(lp, rp), true
			}
		}
	}
	return nil, false
}
