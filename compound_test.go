package trie

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func dictionary(words ...string) *Dictionary {
	d := New()
	d.Insert(words...)
	return d
}

func TestDecomposer(t *testing.T) {
	t.Run("Two word compound", func(t *testing.T) {
		top, parts := dictionary("cat", "dog", "catdog").RunDecomposition()
		assert.Equal(t, [2]string{"catdog", ""}, top)
		assert.Equal(t, []string{"cat", "dog"}, parts["catdog"])
	})

	t.Run("Three word compound", func(t *testing.T) {
		top, parts := dictionary("cat", "dog", "house", "catdoghouse").RunDecomposition()
		assert.Equal(t, "catdoghouse", top[0])
		assert.Equal(t, []string{"cat", "dog", "house"}, parts["catdoghouse"])
	})

	t.Run("No false positives", func(t *testing.T) {
		top, parts := dictionary("cat", "dogcat").RunDecomposition()
		assert.Equal(t, [2]string{"", ""}, top)
		assert.Empty(t, parts)
	})

	t.Run("Tail must split completely", func(t *testing.T) {
		top, parts := dictionary("cat", "catdogx", "dog").RunDecomposition()
		assert.Equal(t, [2]string{"", ""}, top)
		assert.Empty(t, parts)
	})

	t.Run("Tail split recursively", func(t *testing.T) {
		top, parts := dictionary("a", "bc", "de", "abcde", "b", "c").RunDecomposition()
		assert.Equal(t, "abcde", top[0])
		assert.Equal(t, []string{"a", "b", "c", "de"}, parts["abcde"])
	})

	t.Run("Prefix of a longer entry is not a candidate", func(t *testing.T) {
		top, parts := dictionary("cat", "dog", "catdog", "catdogcat", "cat").RunDecomposition()
		assert.Equal(t, [2]string{"catdogcat", ""}, top)
		assert.Equal(t, []string{"catdog", "cat"}, parts["catdogcat"])
		assert.NotContains(t, parts, "catdog")
	})

	t.Run("Longest first", func(t *testing.T) {
		top, _ := dictionary("cat", "dog", "catdog", "house", "doghouse").RunDecomposition()
		assert.Equal(t, [2]string{"doghouse", "catdog"}, top)
	})

	t.Run("Equal length keeps the first found", func(t *testing.T) {
		top, parts := dictionary("ab", "cd", "ef", "abcd", "cdab", "efab").RunDecomposition()
		assert.Equal(t, [2]string{"abcd", "cdab"}, top)
		assert.Equal(t, []string{"ef", "ab"}, parts["efab"])
	})

	t.Run("Shorter candidates are pruned", func(t *testing.T) {
		c := NewDecomposer(dictionary("cat", "dog", "house", "catdoghouse", "doghouse", "housecat", "zz", "zzdog"))
		top, parts := c.Run()
		assert.Equal(t, [2]string{"catdoghouse", "doghouse"}, top)
		assert.Equal(t, 8, c.Result().SecondLongestLength())
		assert.Equal(t, []string{"cat", "doghouse"}, parts["catdoghouse"])
		assert.Equal(t, []string{"house", "cat"}, parts["housecat"])
		assert.NotContains(t, parts, "zzdog")
	})

	t.Run("Idempotent insert", func(t *testing.T) {
		once, onceParts := dictionary("cat", "dog", "catdog").RunDecomposition()
		twice, twiceParts := dictionary("cat", "cat", "dog", "catdog", "dog", "catdog").RunDecomposition()
		assert.Equal(t, once, twice)
		assert.Equal(t, onceParts, twiceParts)
	})

	t.Run("Run is repeatable", func(t *testing.T) {
		c := NewDecomposer(dictionary("cat", "dog", "catdog"))
		first, _ := c.Run()
		second, parts := c.Run()
		assert.Equal(t, first, second)
		assert.Len(t, parts, 1)
	})

	t.Run("Initial threshold", func(t *testing.T) {
		c := NewDecomposer(New())
		top, parts := c.Run()
		assert.Equal(t, [2]string{"", ""}, top)
		assert.Empty(t, parts)
		assert.Equal(t, 1, c.Result().SecondLongestLength())
	})
}

func TestDecomposerMemo(t *testing.T) {
	dicts := [][]string{
		{"cat", "dog", "house", "catdoghouse"},
		{"a", "bc", "de", "abcde", "b", "c"},
		{"cat", "dog", "house", "catdoghouse", "doghouse", "housecat", "zz", "zzdog"},
		{"ab", "cd", "ef", "abcd", "cdab", "efab"},
	}
	// Long runs of a single letter make the plain search revisit the same
	// segments many times.
	var repeated []string
	for i := 1; i <= 12; i++ {
		repeated = append(repeated, fmt.Sprintf("%0*d", i, 0))
	}
	dicts = append(dicts, append(repeated, strings.Repeat("0", 20)+"1"))

	for i, words := range dicts {
		d := dictionary(words...)
		plainTop, plainParts := NewDecomposer(d).Run()
		memoTop, memoParts := NewDecomposer(d).WithMemo(4).Run()
		assert.Equal(t, plainTop, memoTop, "dictionary %d", i)
		assert.Equal(t, plainParts, memoParts, "dictionary %d", i)
	}

	assert.Panics(t, func() { NewDecomposer(New()).WithMemo(0) })
}

func TestDecomposerLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := NewDecomposer(dictionary("cat", "dog", "catdog")).WithLogger(zap.New(core))
	c.Run()

	found := logs.FilterMessage("compound found").All()
	require.Len(t, found, 1)
	assert.Equal(t, "catdog", found[0].ContextMap()["word"])
	assert.Equal(t, 1, logs.FilterMessage("new champion").Len())
	assert.Equal(t, 1, logs.FilterMessage("decomposition finished").Len())
}
