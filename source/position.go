// Package source tracks byte offsets into the raw sentence string being
// tokenized, so that errors and debug traces can point back at the input.
package source

import (
	"fmt"
	"sort"
)

// Pos identifies a location in the sentence being tokenized.
//
// Unlike a file-backed parser, the tokenizer operates on a single in-memory
// sentence string, so Pos carries a byte Offset plus the code-point Column
// computed from it; there is no Line, since sentence segmentation happens
// upstream of this package.
type Pos struct {
	Sentence string
	Offset   int
	Column   int
}

func (p Pos) String() string {
	if p.Sentence == "" {
		return fmt.Sprintf("offset %d", p.Offset)
	}
	return fmt.Sprintf("%s@%d: %s", p.Sentence, p.Offset, excerpt(p.Sentence, p.Offset))
}

// excerpt returns a short slice of s centered on offset, for error messages.
func excerpt(s string, offset int) string {
	const radius = 12
	start := offset - radius
	if start < 0 {
		start = 0
	}
	end := offset + radius
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}

// Tracker accumulates code-point offsets as a sentence is scanned, so that
// byte offsets can be converted into 1-based column numbers on demand.
// Mirrors the line-offset table in a conventional file lexer, collapsed to
// a single "line" since a sentence never contains the segmentation that
// would introduce more than one.
type Tracker struct {
	sentence string
	// codePointOffsets[i] is the byte offset of the i-th code point.
	codePointOffsets []int
}

// NewTracker creates a Tracker over the given sentence text.
func NewTracker(sentence string) *Tracker {
	return &Tracker{sentence: sentence}
}

// AddCodePoint records that a code point starts at the given byte offset.
// Offsets must be added in non-decreasing order; an offset equal to the
// last one recorded is ignored, so each code point is counted once.
func (t *Tracker) AddCodePoint(offset int) {
	if n := len(t.codePointOffsets); n > 0 && offset <= t.codePointOffsets[n-1] {
		return
	}
	t.codePointOffsets = append(t.codePointOffsets, offset)
}

// Pos computes the Pos for the given byte offset into the sentence.
func (t *Tracker) Pos(offset int) Pos {
	col := sort.SearchInts(t.codePointOffsets, offset) + 1
	return Pos{Sentence: t.sentence, Offset: offset, Column: col}
}
