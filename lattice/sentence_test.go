package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkgrammar/tokenizer/internal/intern"
	"github.com/linkgrammar/tokenizer/lattice"
)

func newTestSentence() (*lattice.Sentence, *intern.Table) {
	interner := new(intern.Table)
	markers := lattice.Markers{
		InfixMark:     '.',
		SubscriptMark: '\\',
		EmptyWord:     "<empty>",
		LeftWall:      "LEFT-WALL",
		RightWall:     "RIGHT-WALL",
	}
	return lattice.New(interner, markers, nil), interner
}

func TestIssueSentenceWord(t *testing.T) {
	sent, interner := newTestSentence()

	ok := sent.IssueSentenceWord("hello", false)
	require.True(t, ok)
	require.Equal(t, 1, sent.Length())

	slot := sent.Slot(0)
	require.Len(t, slot.Alternatives, 1)
	assert.Equal(t, "hello", interner.Value(slot.Alternatives[0]))
	assert.Equal(t, "hello", slot.UnsplitWord)
	assert.False(t, slot.PostQuote)
}

func TestAddAlternativeBalancesShorterDecompositions(t *testing.T) {
	sent, interner := newTestSentence()

	// First decomposition: prefix + stem (2 components).
	require.True(t, sent.AddAlternative([]string{"un"}, []string{"happy"}, nil))
	// Second decomposition for the same raw word: stem only (1
	// component). Per §4.B.1, alternatives align by component offset,
	// not by role, so this lands in the same slot as the prefix above.
	require.True(t, sent.AddAlternative(nil, []string{"unhappy"}, nil))

	require.True(t, sent.IssueAlternatives("unhappy", false))
	require.Equal(t, 2, sent.Length())

	// Balance: every slot in the group has the same alternative count.
	n := len(sent.Slot(0).Alternatives)
	for i := 1; i < 2; i++ {
		assert.Equal(t, n, len(sent.Slot(i).Alternatives), "slot %d", i)
	}
	assert.Equal(t, 2, n)

	v0 := []string{interner.Value(sent.Slot(0).Alternatives[0]), interner.Value(sent.Slot(0).Alternatives[1])}
	assert.Equal(t, []string{"un.", "unhappy"}, v0)

	// The second decomposition never reached slot 1, so it gets the
	// empty-word marker there.
	v1 := []string{interner.Value(sent.Slot(1).Alternatives[0]), interner.Value(sent.Slot(1).Alternatives[1])}
	assert.Equal(t, []string{"happy", "<empty>"}, v1)
}

func TestSuffixBeginningNonAlphaIsVerbatim(t *testing.T) {
	sent, interner := newTestSentence()

	require.True(t, sent.AddAlternative(nil, []string{"you"}, []string{"'ve"}))
	require.True(t, sent.IssueAlternatives("you've", false))

	assert.Equal(t, "you", interner.Value(sent.Slot(0).Alternatives[0]))
	assert.Equal(t, "'ve", interner.Value(sent.Slot(1).Alternatives[0]))
}

func TestAddAlternativeRejectsEmptyLeadingComponent(t *testing.T) {
	sent, _ := newTestSentence()

	ok := sent.AddAlternative(nil, []string{""}, nil)
	assert.False(t, ok)
	assert.Equal(t, 0, sent.PendingCount())
}

func TestIssueAlternativesOnEmptyGroupIsNoop(t *testing.T) {
	sent, _ := newTestSentence()
	ok := sent.IssueAlternatives("whatever", false)
	assert.False(t, ok)
	assert.Equal(t, 0, sent.Length())
}

func TestUnsplitWordSetOnlyOnFirstSlotOfGroup(t *testing.T) {
	sent, _ := newTestSentence()

	require.True(t, sent.AddAlternative([]string{"un"}, []string{"do"}, nil))
	require.True(t, sent.IssueAlternatives("undo", false))
	require.Equal(t, 2, sent.Length())

	assert.Equal(t, "undo", sent.Slot(0).UnsplitWord)
	assert.Equal(t, "", sent.Slot(1).UnsplitWord)
}

func TestLengthGrowsMonotonically(t *testing.T) {
	sent, _ := newTestSentence()

	require.True(t, sent.IssueSentenceWord("one", false))
	require.Equal(t, 1, sent.Length())
	require.True(t, sent.IssueSentenceWord("two", false))
	require.Equal(t, 2, sent.Length())
}
