package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkgrammar/tokenizer/affix"
	"github.com/linkgrammar/tokenizer/dict"
	"github.com/linkgrammar/tokenizer/disjunct"
	"github.com/linkgrammar/tokenizer/expr"
	"github.com/linkgrammar/tokenizer/internal/intern"
	"github.com/linkgrammar/tokenizer/lattice"
)

func newSentence(table *affix.Table) (*lattice.Sentence, *intern.Table) {
	interner := new(intern.Table)
	markers := lattice.Markers{InfixMark: table.InfixMark, EmptyWord: table.EmptyWord}
	return lattice.New(interner, markers, nil), interner
}

func TestBuildLiteralWordGetsItsOwnExpressions(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	d := dict.NewMapDictionary("")
	d.Add("dog", dict.Entry{Expressions: chainOf("dog")})

	sent, _ := newSentence(table)
	require.True(t, sent.IssueSentenceWord("dog", false))

	builder := expr.New(d, table, expr.Options{})
	builder.Build(sent, 0)

	require.Len(t, sent.Slot(0).X, 1)
	assert.Equal(t, "dog", sent.Slot(0).X[0].Word)
}

func TestBuildSpellTaggedAlternativeTagsEveryDisjunct(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	d := dict.NewMapDictionary("")
	d.Add("hello", dict.Entry{Expressions: chainOf("hello")})

	sent, interner := newSentence(table)
	require.True(t, sent.AddAlternative(nil, []string{"hello[~]"}, nil))
	require.True(t, sent.IssueAlternatives("helo", false))

	builder := expr.New(d, table, expr.Options{})
	builder.Build(sent, 0)

	require.Len(t, sent.Slot(0).X, 1)
	assert.Equal(t, "hello[~]", sent.Slot(0).X[0].Word)
	// the committed alternative string itself is left untouched by tagging
	assert.Equal(t, "hello[~]", interner.Value(sent.Slot(0).Alternatives[0]))
}

func TestBuildRegexMatchTagsWithRegexName(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	d := dict.NewMapDictionary("")
	regexTable, err := dict.CompileRegexTable([]dict.RegexSource{{Name: "NUMBER", Pattern: `^[0-9]+$`}})
	require.NoError(t, err)
	d.SetRegexTable(regexTable)
	d.Add("NUMBER", dict.Entry{Expressions: chainOf("NUMBER")})

	sent, _ := newSentence(table)
	require.True(t, sent.AddAlternative(nil, []string{"123[!]"}, nil))
	require.True(t, sent.IssueAlternatives("123", false))

	builder := expr.New(d, table, expr.Options{DisplayMorphology: true})
	builder.Build(sent, 0)

	require.Len(t, sent.Slot(0).X, 1)
	assert.Equal(t, "NUMBER[!NUMBER]", sent.Slot(0).X[0].Word)
}

func TestBuildRegexMatchTagsBareWithoutDisplayMorphology(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	d := dict.NewMapDictionary("")
	regexTable, err := dict.CompileRegexTable([]dict.RegexSource{{Name: "NUMBER", Pattern: `^[0-9]+$`}})
	require.NoError(t, err)
	d.SetRegexTable(regexTable)
	d.Add("NUMBER", dict.Entry{Expressions: chainOf("NUMBER")})

	sent, _ := newSentence(table)
	require.True(t, sent.AddAlternative(nil, []string{"123[!]"}, nil))
	require.True(t, sent.IssueAlternatives("123", false))

	builder := expr.New(d, table, expr.Options{DisplayMorphology: false})
	builder.Build(sent, 0)

	assert.Equal(t, "NUMBER[!]", sent.Slot(0).X[0].Word)
}

func TestBuildFallsBackToUnknownWord(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "UNKNOWN-WORD")
	d := dict.NewMapDictionary("UNKNOWN-WORD")
	d.Add("UNKNOWN-WORD", dict.Entry{Expressions: chainOf("UNKNOWN-WORD")})

	sent, _ := newSentence(table)
	require.True(t, sent.AddAlternative(nil, []string{"zzz"}, nil))
	require.True(t, sent.IssueAlternatives("zzz", false))

	builder := expr.New(d, table, expr.Options{UseUnknownWord: true})
	builder.Build(sent, 0)

	require.Len(t, sent.Slot(0).X, 1)
	assert.Equal(t, "UNKNOWN-WORD[?]", sent.Slot(0).X[0].Word)
}

func TestBuildCapitalizedWordAppendsLowerWhenCommonEntity(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	d := dict.NewMapDictionary("")
	d.Add("Hello", dict.Entry{Expressions: chainOf("Hello")})
	d.Add("hello", dict.Entry{Expressions: chainOf("hello"), Common: true})

	sent, interner := newSentence(table)
	require.True(t, sent.IssueSentenceWord("Hello", false))

	builder := expr.New(d, table, expr.Options{})
	builder.Build(sent, 0)

	words := wordsOf(sent.Slot(0).X)
	assert.Equal(t, []string{"Hello", "hello"}, words)
	// appending (not replacing) leaves the surface alternative untouched
	assert.Equal(t, "Hello", interner.Value(sent.Slot(0).Alternatives[0]))
}

func TestBuildCapitalizedWordReplacesLowerWhenNotCommonEntity(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	d := dict.NewMapDictionary("")
	d.Add("Acme", dict.Entry{Expressions: chainOf("Acme")})
	d.Add("acme", dict.Entry{Expressions: chainOf("acme"), Common: false})

	sent, interner := newSentence(table)
	require.True(t, sent.IssueSentenceWord("Acme", false))

	builder := expr.New(d, table, expr.Options{})
	builder.Build(sent, 0)

	words := wordsOf(sent.Slot(0).X)
	assert.Equal(t, []string{"acme"}, words)
	assert.Equal(t, "acme", interner.Value(sent.Slot(0).Alternatives[0]))
}

// An affix/punctuation piece (here a right-stripped "." committed via
// IssueSentenceWord, never registered in the dictionary) has no literal
// entry, no regex match, and no unknown-word fallback configured; it must
// still get a bare pass-through chain rather than panic.
func TestBuildPassesThroughUnregisteredAffixPiece(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "", "", "<unk>")
	d := dict.NewMapDictionary("")

	sent, _ := newSentence(table)
	require.True(t, sent.IssueSentenceWord(".", false))

	builder := expr.New(d, table, expr.Options{})
	builder.Build(sent, 0)

	require.Len(t, sent.Slot(0).X, 1)
	assert.Equal(t, ".", sent.Slot(0).X[0].Word)
}

func chainOf(word string) disjunct.Chain {
	return disjunct.Chain{{Word: word}}
}

func wordsOf(chain disjunct.Chain) []string {
	out := make([]string, len(chain))
	for i, e := range chain {
		out[i] = e.Word
	}
	return out
}
