// Package textutil holds rune and grapheme helpers shared by the extractor
// and the normalizer.
package textutil

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// RuneIndexToByteOffset converts a rune index to a byte offset in a string.
// Returns -1 if runeIndex is out of bounds.
func RuneIndexToByteOffset(s string, runeIndex int) int {
	if runeIndex < 0 {
		return -1
	}
	if runeIndex == 0 {
		return 0
	}
	byteOffset := 0
	currentRune := 0
	for byteOffset < len(s) {
		if currentRune == runeIndex {
			return byteOffset
		}
		_, size := utf8.DecodeRuneInString(s[byteOffset:])
		byteOffset += size
		currentRune++
	}
	if currentRune == runeIndex {
		return len(s)
	} // Allow index at the very end
	return -1 // Index out of bounds
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// SplitAt splits s at the given rune column.
// ok is false when col is outside [0, RuneLen(s)].
func SplitAt(s string, col int) (prefix, suffix string, ok bool) {
	off := RuneIndexToByteOffset(s, col)
	if off < 0 {
		return "", "", false
	}
	return s[:off], s[off:], true
}

// FirstChar returns the base rune of the first grapheme cluster of s.
func FirstChar(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	r, _ := utf8.DecodeRuneInString(cluster)
	return r, true
}

// LastChar returns the base rune of the last grapheme cluster of s, so a
// trailing combining mark reports the letter it belongs to.
func LastChar(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	var last string
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = cluster
	}
	r, _ := utf8.DecodeRuneInString(last)
	return r, true
}
