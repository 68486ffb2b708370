package morph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkgrammar/tokenizer/affix"
	"github.com/linkgrammar/tokenizer/dict"
	"github.com/linkgrammar/tokenizer/internal/intern"
	"github.com/linkgrammar/tokenizer/lattice"
	"github.com/linkgrammar/tokenizer/morph"
)

func newSentence() (*lattice.Sentence, *intern.Table) {
	interner := new(intern.Table)
	markers := lattice.Markers{InfixMark: '.', EmptyWord: "<empty>"}
	return lattice.New(interner, markers, nil), interner
}

func TestSuffixSplitFindsDictionaryStem(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	table.Set(affix.SUF, []string{"'ve"})

	d := dict.NewMapDictionary("")
	d.Add("you", dict.Entry{})

	sent, interner := newSentence()
	splitter := morph.New(d, table)

	ok := splitter.SuffixSplit(sent, "you've", false)
	require.True(t, ok)
	require.True(t, sent.IssueAlternatives("you've", false))
	require.Equal(t, 2, sent.Length())
	assert.Equal(t, "you", interner.Value(sent.Slot(0).Alternatives[0]))
	assert.Equal(t, "'ve", interner.Value(sent.Slot(1).Alternatives[0]))
}

func TestSuffixSplitStemSubscriptEmitsOnePerHit(t *testing.T) {
	table := affix.New('.', '\\', "<empty>", "", "", "<unk>")
	table.Set(affix.SUF, []string{"s"})
	table.Set(affix.STEMSUBSCR, []string{".n", ".v"})

	d := dict.NewMapDictionary("")
	// dictionary_lookup gates on the bare stem first; only once that
	// passes does add_alternative_with_subscr test stem+subscript
	// combinations (§4.D).
	d.Add("walk", dict.Entry{})
	d.Add("walk.v", dict.Entry{})

	sent, interner := newSentence()
	splitter := morph.New(d, table)

	ok := splitter.SuffixSplit(sent, "walks", false)
	require.True(t, ok)
	require.True(t, sent.IssueAlternatives("walks", false))

	stems := []string{}
	for _, id := range sent.Slot(0).Alternatives {
		stems = append(stems, interner.Value(id))
	}
	assert.Contains(t, stems, "walk.v")
	assert.NotContains(t, stems, "walk.n")
}

func TestSuffixSplitSkipBareWordSuppressesSelfDuplicate(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	d := dict.NewMapDictionary("")
	d.Add("hello", dict.Entry{})

	sent, _ := newSentence()
	splitter := morph.New(d, table)

	// The caller already added "hello" itself as a literal alternative;
	// skipBareWord=true must not re-emit it via the implicit empty-suffix
	// candidate (whose stem is always the whole word).
	ok := splitter.SuffixSplit(sent, "hello", true)
	assert.False(t, ok)
}

func TestSuffixSplitReturnsFalseWhenNothingMatches(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	d := dict.NewMapDictionary("")

	sent, _ := newSentence()
	splitter := morph.New(d, table)
	assert.False(t, splitter.SuffixSplit(sent, "zzz", false))
}

func TestMultiPrefixSplitPeelsStackedSubwords(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	table.SetMPRE(map[string]affix.MPREProps{
		"ha": {},
		"ve": {},
	})

	d := dict.NewMapDictionary("")
	d.Add("bayit", dict.Entry{})

	sent, interner := newSentence()
	splitter := morph.New(d, table)

	ok := splitter.MultiPrefixSplit(sent, "habayit")
	require.True(t, ok)
	require.True(t, sent.IssueAlternatives("habayit", false))

	prefixes := interner.Value(sent.Slot(0).Alternatives[0])
	assert.Equal(t, "ha.", prefixes)
}

func TestMultiPrefixSplitFullyConsumingEmitsEmptyResidue(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	table.SetMPRE(map[string]affix.MPREProps{"ha": {}})

	d := dict.NewMapDictionary("")

	sent, _ := newSentence()
	splitter := morph.New(d, table)

	ok := splitter.MultiPrefixSplit(sent, "ha")
	require.True(t, ok)
	require.True(t, sent.IssueAlternatives("ha", false))
	// A single-subword prefix stack that consumes the whole token emits
	// only that prefix component -- there is no residue slot for "∅".
	require.Equal(t, 1, sent.Length())
}

func TestMultiPrefixSplitFirstPositionOnlyGate(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	table.SetMPRE(map[string]affix.MPREProps{
		"ha": {FirstPositionOnly: true},
		"ve": {},
	})

	d := dict.NewMapDictionary("")
	// "bayit" is only reachable by peeling both "ve" and "ha"; "habayit"
	// (the residue after peeling only "ve") is deliberately absent.
	d.Add("bayit", dict.Entry{})

	sent, _ := newSentence()
	splitter := morph.New(d, table)

	// "ha" may only be peeled in the first position; peeling "ve" first
	// pushes "ha" to depth 1, where the first-position-only gate must
	// block it. If the gate were (incorrectly) ignored, this would split
	// via ve+ha+bayit -- it must not.
	ok := splitter.MultiPrefixSplit(sent, "vehabayit")
	assert.False(t, ok)
}
