package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkgrammar/tokenizer/affix"
	"github.com/linkgrammar/tokenizer/classify"
)

func TestFirstRune(t *testing.T) {
	r, ok := classify.FirstRune("")
	assert.False(t, ok)
	assert.Zero(t, r)

	r, ok = classify.FirstRune("hello")
	require.True(t, ok)
	assert.Equal(t, 'h', r)

	// A base letter followed by a combining acute accent is one grapheme
	// cluster; FirstRune should report the base letter, not the mark.
	r, ok = classify.FirstRune("étude")
	require.True(t, ok)
	assert.Equal(t, 'e', r)
}

func TestIsDigitUpperStart(t *testing.T) {
	assert.True(t, classify.IsDigitStart("123abc"))
	assert.False(t, classify.IsDigitStart("abc123"))
	assert.True(t, classify.IsUpperStart("Hello"))
	assert.False(t, classify.IsUpperStart("hello"))
}

func TestIsAlphaStart(t *testing.T) {
	assert.True(t, classify.IsAlphaStart("ve"))
	assert.False(t, classify.IsAlphaStart("'ve"))
	assert.False(t, classify.IsAlphaStart(""))
}

func TestIsNumber(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"123", true},
		{"1.234", true},
		{"1,234,567", true},
		{"12:30", true},
		{"", false},
		{"abc", false},
		{"12.", false},
		{".12", false},
		{"1..2", false},
		{"12a", false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, classify.IsNumber(c.in), "IsNumber(%q)", c.in)
	}
}

func TestIsQuoteAndBullet(t *testing.T) {
	table := affix.New('.', '.', "<empty>", "LEFT-WALL", "RIGHT-WALL", "<unk>")
	table.Set(affix.QUOTES, []string{`"`, "'"})
	table.Set(affix.BULLETS, []string{"*", "-"})

	assert.True(t, classify.IsQuote('"', table))
	assert.False(t, classify.IsQuote('x', table))
	assert.True(t, classify.IsBullet('*', table))
	assert.True(t, classify.IsBulletStr("-", table))
	assert.False(t, classify.IsBulletStr("--", table))
}
