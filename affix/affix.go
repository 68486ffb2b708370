// Package affix holds the read-only affix-class tables supplied by a
// language's dictionary: LPUNC, RPUNC, UNITS, PRE, SUF, MPRE, STEMSUBSCR,
// QUOTES, and BULLETS, per §3 and §6 of the tokenizer spec.
package affix

import (
	"bufio"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/btree"
	"golang.org/x/exp/slices"
)

// Class names one of the nine affix classes. Each is an ordered list of
// strings plus a count, per §3.
type Class int

const (
	LPUNC Class = iota
	RPUNC
	UNITS
	PRE
	SUF
	MPRE
	STEMSUBSCR
	QUOTES
	BULLETS
	numClasses
)

func (c Class) String() string {
	switch c {
	case LPUNC:
		return "LPUNC"
	case RPUNC:
		return "RPUNC"
	case UNITS:
		return "UNITS"
	case PRE:
		return "PRE"
	case SUF:
		return "SUF"
	case MPRE:
		return "MPRE"
	case STEMSUBSCR:
		return "STEMSUBSCR"
	case QUOTES:
		return "QUOTES"
	case BULLETS:
		return "BULLETS"
	default:
		return "unknown-class"
	}
}

// MPREProps are the language-specific gates on a single MPRE (multi-prefix)
// entry, parameterized per §4.D and §9 rather than hard-coded to Hebrew.
type MPREProps struct {
	// FirstPositionOnly restricts this subword to only ever being peeled
	// as the first prefix in a stack (the "first-position-only rule").
	FirstPositionOnly bool
	// DoubleLeading marks this subword as eligible for the
	// "double-leading-character" disambiguation: if the residue left after
	// peeling this subword begins with the subword again, the splitter also
	// strips that second copy and tries the remainder, treating the two
	// copies as a single prefix.
	DoubleLeading bool
}

type mpreEntry struct {
	text string
	MPREProps
}

// Table is an immutable, read-only set of affix-class tables for one
// language. The zero value is an empty table: every class absent, so
// every stripping/splitting step that consults it degrades to a no-op,
// per §7 "Affix table absent -> degrade gracefully".
type Table struct {
	classes      [numClasses][]string
	mpreByLength *btree.BTreeG[mpreEntry]
	mprePropsOf  map[string]MPREProps

	InfixMark      byte
	SubscriptMark  byte
	MaxWordLen     int
	MaxStrip       int
	MaxMultiPrefix int

	EmptyWord string
	LeftWall  string
	RightWall string
	Unknown   string
}

// DefaultMaxStrip, DefaultMaxMultiPrefix and DefaultMaxSpellGuesses are the
// limits named in §6.
const (
	DefaultMaxStrip        = 10
	DefaultMaxMultiPrefix  = 5 // HEB_PRENUM_MAX
	DefaultMaxSpellGuesses = 60
)

// New creates an empty table with the given markers and the default limits.
func New(infixMark, subscriptMark byte, emptyWord, leftWall, rightWall, unknown string) *Table {
	return &Table{
		InfixMark:      infixMark,
		SubscriptMark:  subscriptMark,
		MaxWordLen:     1 << 20,
		MaxStrip:       DefaultMaxStrip,
		MaxMultiPrefix: DefaultMaxMultiPrefix,
		EmptyWord:      emptyWord,
		LeftWall:       leftWall,
		RightWall:      rightWall,
		Unknown:        unknown,
	}
}

// Strings returns the ordered list for class c and its length, per the
// affix-class accessor in §6.
func (t *Table) Strings(c Class) ([]string, int) {
	s := t.classes[c]
	return s, len(s)
}

// Set replaces the ordered list for class c. Entries keep the order given
// (callers are expected to have already applied any language-specific
// ordering, e.g. descending length for MPRE via SetMPRE).
func (t *Table) Set(c Class, entries []string) {
	t.classes[c] = entries
}

// SetMPRE installs the MPRE (multi-prefix) table, sorted by descending
// length as required by §3, and indexed by a btree.BTreeG ordered the same
// way so peeling (§4.D) can walk candidates longest-first through EachMPRE,
// which visits the entries in tree order.
func (t *Table) SetMPRE(entries map[string]MPREProps) {
	ordered := make([]string, 0, len(entries))
	for s := range entries {
		ordered = append(ordered, s)
	}
	slices.SortFunc(ordered, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a) // descending length
		}
		return strings.Compare(a, b)
	})
	t.classes[MPRE] = ordered

	tree := btree.NewBTreeG(func(a, b mpreEntry) bool {
		if len(a.text) != len(b.text) {
			return len(a.text) > len(b.text) // descending length
		}
		return a.text < b.text
	})
	props := make(map[string]MPREProps, len(entries))
	for _, s := range ordered {
		p := entries[s]
		tree.Set(mpreEntry{text: s, MPREProps: p})
		props[s] = p
	}
	t.mpreByLength = tree
	t.mprePropsOf = props
}

// MPREProps returns the gating properties for a multi-prefix subword, and
// whether it is a known MPRE entry at all.
func (t *Table) MPREProps(subword string) (MPREProps, bool) {
	p, ok := t.mprePropsOf[subword]
	return p, ok
}

// EachMPRE visits every MPRE entry longest-first, stopping early if visit
// returns false.
func (t *Table) EachMPRE(visit func(subword string) bool) {
	if t.mpreByLength == nil {
		return
	}
	t.mpreByLength.Scan(func(e mpreEntry) bool {
		return visit(e.text)
	})
}

// Load populates classes of t by globbing dataDir for the files of each
// class using doublestar patterns (dataDir + "/*.lpunc", "/*.rpunc", ...;
// subdirectories are not searched), one
// affix string per non-empty, non-comment ("!"-prefixed) line. A missing
// file simply leaves that class empty (degrade-gracefully per §7); only
// I/O errors other than "no matches" are surfaced.
func Load(fsys fs.FS, dataDir string) (*Table, error) {
	t := New('\x01', '\\', "<empty>", "LEFT-WALL", "RIGHT-WALL", "UNKNOWN-WORD")

	patterns := map[Class]string{
		LPUNC:      "*.lpunc",
		RPUNC:      "*.rpunc",
		UNITS:      "*.units",
		PRE:        "*.pre",
		SUF:        "*.suf",
		STEMSUBSCR: "*.stemsubscr",
		QUOTES:     "*.quotes",
		BULLETS:    "*.bullets",
	}
	for class, pattern := range patterns {
		full := strings.TrimSuffix(dataDir, "/") + "/" + pattern
		matches, err := doublestar.Glob(fsys, full)
		if err != nil {
			return nil, fmt.Errorf("affix: glob %s: %w", full, err)
		}
		var entries []string
		for _, m := range matches {
			lines, err := readLines(fsys, m)
			if err != nil {
				return nil, err
			}
			entries = append(entries, lines...)
		}
		t.Set(class, entries)
	}

	mpreMatches, err := doublestar.Glob(fsys, strings.TrimSuffix(dataDir, "/")+"/*.mpre")
	if err != nil {
		return nil, fmt.Errorf("affix: glob mpre: %w", err)
	}
	mpre := make(map[string]MPREProps)
	for _, m := range mpreMatches {
		lines, err := readLines(fsys, m)
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			props := MPREProps{}
			for _, flag := range fields[1:] {
				switch flag {
				case "first-only":
					props.FirstPositionOnly = true
				case "double-leading":
					props.DoubleLeading = true
				}
			}
			mpre[fields[0]] = props
		}
	}
	if len(mpre) > 0 {
		t.SetMPRE(mpre)
	}
	return t, nil
}

func readLines(fsys fs.FS, path string) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("affix: open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("affix: read %s: %w", path, err)
	}
	return out, nil
}

// SortedClassNames returns every class whose list is non-empty, for
// diagnostics (e.g. "which affix classes did we actually load").
func (t *Table) SortedClassNames() []string {
	var names []string
	for c := Class(0); c < numClasses; c++ {
		if len(t.classes[c]) > 0 {
			names = append(names, c.String())
		}
	}
	sort.Strings(names)
	return names
}
