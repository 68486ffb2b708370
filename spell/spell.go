// Package spell declares the spell-checker oracle named in §6
// (spell_test, spell_suggest). Spell-checker bindings are an external
// collaborator per §1's Out of scope list, so this package only defines
// the interface plus a minimal default usable without an external spell
// engine.
package spell

// Oracle is the spell-checker collaborator consumed by spellexpand (§4.E).
type Oracle interface {
	// Test is spell_test: whether word is considered correctly spelled.
	Test(word string) bool
	// Suggest is spell_suggest: candidate corrections/expansions for word,
	// in the oracle's preferred order. The caller truncates to
	// MAX_NUM_SPELL_GUESSES (§6); an Oracle may return more or fewer.
	Suggest(word string) []string
}

// None is an Oracle that never suggests anything, for configurations with
// use_spell_guess disabled.
type None struct{}

func (None) Test(string) bool        { return true }
func (None) Suggest(string) []string { return nil }
