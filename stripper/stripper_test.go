package stripper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkgrammar/tokenizer/affix"
	"github.com/linkgrammar/tokenizer/disjunct"
	"github.com/linkgrammar/tokenizer/internal/intern"
	"github.com/linkgrammar/tokenizer/lattice"
	"github.com/linkgrammar/tokenizer/stripper"
)

type fakeDict struct {
	words map[string]bool
}

func (d *fakeDict) Lookup(word string) bool                { return d.words[word] }
func (d *fakeDict) FindWord(word string) bool              { return d.words[word] }
func (d *fakeDict) MatchRegex(string) (string, bool)       { return "", false }
func (d *fakeDict) BuildExpressions(string) disjunct.Chain { return nil }
func (d *fakeDict) IsCommonEntity(string) bool             { return false }
func (d *fakeDict) HasUnknownWord() bool                   { return false }

func newSentence() *lattice.Sentence {
	interner := new(intern.Table)
	markers := lattice.Markers{InfixMark: '.', EmptyWord: "<empty>"}
	return lattice.New(interner, markers, nil)
}

func TestLeftStripPeelsPunctuation(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	table.Set(affix.LPUNC, []string{"(", "\""})

	sent := newSentence()
	remaining, consumed := stripper.LeftStrip(sent, table, `("hello`, false)
	assert.False(t, consumed)
	assert.Equal(t, "hello", remaining)
	require.Equal(t, 2, sent.Length())
}

func TestLeftStripConsumesEntireToken(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	table.Set(affix.LPUNC, []string{"(", "\""})

	sent := newSentence()
	remaining, consumed := stripper.LeftStrip(sent, table, `("`, false)
	assert.True(t, consumed)
	assert.Equal(t, "", remaining)
}

func TestRightStripRefusesUnitOnNonDigitStart(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	table.Set(affix.UNITS, []string{"ft"})

	d := &fakeDict{words: map[string]bool{}}
	result := stripper.RightStrip(d, table, "Delft")
	assert.Equal(t, "Delft", result.Core)
	assert.Empty(t, result.Pieces)
}

func TestRightStripAllowsUnitOnDigitStart(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	table.Set(affix.UNITS, []string{"mm"})

	d := &fakeDict{words: map[string]bool{}}
	result := stripper.RightStrip(d, table, "86mm")
	assert.Equal(t, "86", result.Core)
	assert.Equal(t, []string{"mm"}, result.Pieces)
}

// A trailing "." can be read either as a bare RPUNC mark or as the tail
// of a longer UNITS entry; the longer match must win so a shorter unit
// underneath it ("sq.") still gets a chance to strip on the next pass,
// even though that means two UNITS entries strip back to back here with
// no bare "." ever surfacing as its own piece.
func TestRightStripPrefersLongerUnitOverBarePunctuation(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	table.Set(affix.UNITS, []string{"sq.", "ft."})
	table.Set(affix.RPUNC, []string{"."})

	d := &fakeDict{words: map[string]bool{}}
	result := stripper.RightStrip(d, table, "12sq.ft.")
	assert.Equal(t, "12", result.Core)
	assert.Equal(t, []string{"sq.", "ft."}, result.Pieces)
}
