// Package classify implements the Unicode byte/char helpers of §4.A: the
// leaf-level classifiers every other component builds on.
package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/linkgrammar/tokenizer/affix"
)

// nbsp is U+00A0, explicitly called out alongside Unicode whitespace in §4.A.
const nbsp = ' '

// FirstRune returns the first code point of s, classified grapheme-cluster
// aware: using uniseg.FirstGraphemeClusterInString to find the boundary of
// the first user-perceived character means a base letter followed by a
// combining mark is still treated as a single unit when we ask "is the
// first character upper-case" or "is it a digit", rather than accidentally
// inspecting a bare combining mark that carries no case or digit-ness of
// its own.
func FirstRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	r, _ := utf8.DecodeRuneInString(cluster)
	if r == utf8.RuneError {
		return 0, false
	}
	return r, true
}

// IsSpace reports whether r is Unicode whitespace or U+00A0.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || r == nbsp
}

// IsDigitStart reports whether s begins with a decimal digit.
func IsDigitStart(s string) bool {
	r, ok := FirstRune(s)
	return ok && unicode.IsDigit(r)
}

// IsUpperStart reports whether s begins with an upper-case code point.
func IsUpperStart(s string) bool {
	r, ok := FirstRune(s)
	return ok && unicode.IsUpper(r)
}

// IsQuote reports whether r is a member of the dictionary's QUOTES class.
func IsQuote(r rune, table *affix.Table) bool {
	quotes, _ := table.Strings(affix.QUOTES)
	return runeIn(r, quotes)
}

// IsBullet reports whether r is a member of the dictionary's BULLETS class.
func IsBullet(r rune, table *affix.Table) bool {
	bullets, _ := table.Strings(affix.BULLETS)
	return runeIn(r, bullets)
}

// IsBulletStr reports whether s (typically a single committed alternative)
// is itself one of the dictionary's BULLETS strings. Used by the
// capitalizable-position policy (§4.F), which asks about a whole
// committed alternative, not a single code point.
func IsBulletStr(s string, table *affix.Table) bool {
	bullets, _ := table.Strings(affix.BULLETS)
	for _, b := range bullets {
		if b == s {
			return true
		}
	}
	return false
}

func runeIn(r rune, strs []string) bool {
	for _, s := range strs {
		first, ok := FirstRune(s)
		if ok && first == r && utf8.RuneLen(first) == len(s) {
			return true
		}
	}
	return false
}

// IsNumber reports whether s is a sequence of digits, optionally
// containing '.', ',', ':', or U+00A0 between digits, that begins with a
// digit. Per §4.A this exists to veto spell correction and regex handling
// on numeric tokens.
func IsNumber(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	if !unicode.IsDigit(runes[0]) {
		return false
	}
	for i, r := range runes {
		switch {
		case unicode.IsDigit(r):
			continue
		case r == '.' || r == ',' || r == ':' || r == nbsp:
			// separators must sit strictly between two digits
			if i == 0 || i == len(runes)-1 {
				return false
			}
			if !unicode.IsDigit(runes[i-1]) || !unicode.IsDigit(runes[i+1]) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func isSeparator(r rune) bool {
	return r == '.' || r == ',' || r == ':' || r == nbsp
}

// ToLower lower-cases s using the same code-point rules as the rest of
// this package (used for the capitalization-aware retries in §4.D/§4.F).
func ToLower(s string) string {
	return strings.ToLower(s)
}

// IsAlphaStart reports whether s begins with a letter. Used by the
// alternative buffer (§4.B) to decide whether a suffix component must be
// emitted verbatim because it begins with a non-alphabetic code point
// (e.g. the apostrophe in "'ve").
func IsAlphaStart(s string) bool {
	r, ok := FirstRune(s)
	return ok && unicode.IsLetter(r)
}
