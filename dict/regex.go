package dict

import (
	"fmt"
	"regexp"

	"golang.org/x/sync/errgroup"
)

// RegexSource names a single regex in the oracle's table: Name is the
// dictionary-side identifier (possibly itself a dictionary word, per
// §4.H step 2), Pattern its compiled-at-load-time regular expression.
type RegexSource struct {
	Name    string
	Pattern string
}

// RegexTable is an ordered set of named, compiled regular expressions.
// Matching tries each in order and returns the first hit, mirroring
// match_regex in §6.
type RegexTable struct {
	names    []string
	compiled []*regexp.Regexp
}

// CompileRegexTable compiles every source concurrently with an
// errgroup.Group -- this is the one place in the module concurrency is
// used, confined to one-time table construction rather than per-sentence
// tokenization (§5 keeps the latter single-threaded).
func CompileRegexTable(sources []RegexSource) (*RegexTable, error) {
	compiled := make([]*regexp.Regexp, len(sources))

	var g errgroup.Group
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			re, err := regexp.Compile(src.Pattern)
			if err != nil {
				return fmt.Errorf("dict: compile regex %q (%s): %w", src.Name, src.Pattern, err)
			}
			compiled[i] = re
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make([]string, len(sources))
	for i, src := range sources {
		names[i] = src.Name
	}
	return &RegexTable{names: names, compiled: compiled}, nil
}

// Match returns the name of the first regex in the table that matches
// word, and whether any did. Matching is regexp.MatchString, an unanchored
// search: a pattern matches the whole word only if it anchors itself with
// ^ and $.
func (t *RegexTable) Match(word string) (string, bool) {
	for i, re := range t.compiled {
		if re.MatchString(word) {
			return t.names[i], true
		}
	}
	return "", false
}
