/*
Package trie finds compound words in a word list: words that can be rebuilt by
concatenating two or more other words from the same list.

Words are loaded into a Dictionary, a prefix trie supporting exact membership
and ordered traversal. A Decomposer then walks the trie, splits each candidate
recursively into dictionary words and keeps the two longest compounds together
with their decompositions.

Only words with no longer entry below them in the trie are considered: a word
that is also the prefix of another entry is never reported as a compound.
*/
package trie
