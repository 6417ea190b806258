// Package spacing decides how two text fragments are joined: whether a
// single space separates them, based on whitespace collapsing and
// punctuation rules.
package spacing

import (
	"sort"
	"strings"
	"time"
	"unicode"
)

// Default rule characters.
const (
	DefaultNoSpaceBefore     = ",.;:!?)]}…"
	DefaultNoSpaceAfter      = "([{"
	DefaultAlwaysSpaceAfter  = ",;!?"
	DefaultAlwaysSpaceBefore = "([{"

	DefaultMaxOperationSize = 10000 // runes
	DefaultTimeout          = 100 * time.Millisecond
)

// RuneSet is a set of characters used for rule lookups.
// Treat it as read-only once built.
type RuneSet map[rune]struct{}

// NewRuneSet builds a set from every rune of chars. Whitespace is ignored.
func NewRuneSet(chars string) RuneSet {
	set := make(RuneSet, len(chars))
	for _, r := range chars {
		if unicode.IsSpace(r) {
			continue
		}
		set[r] = struct{}{}
	}
	return set
}

// Contains reports whether r is in the set. A nil set contains nothing.
func (s RuneSet) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// String returns the members in code point order.
func (s RuneSet) String() string {
	runes := make([]rune, 0, len(s))
	for r := range s {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

// RuleSet is the configuration one operation runs under.
// It is built once (defaults merged with overrides) and never mutated.
type RuleSet struct {
	AggressiveSpacing bool // Collapse whitespace runs to one space
	PreserveTabs      bool // Leave tab-only runs alone when collapsing
	PreserveIndent    bool // Keep the leading whitespace of the edited line

	NoSpaceAfter      RuneSet
	NoSpaceBefore     RuneSet
	AlwaysSpaceAfter  RuneSet
	AlwaysSpaceBefore RuneSet

	MaxOperationSize int           // Largest span/text an operation accepts, in runes
	Timeout          time.Duration // Zero disables the deadline
}

// DefaultRuleSet returns the built-in rules.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		AggressiveSpacing: true,
		PreserveTabs:      false,
		PreserveIndent:    false,
		NoSpaceAfter:      NewRuneSet(DefaultNoSpaceAfter),
		NoSpaceBefore:     NewRuneSet(DefaultNoSpaceBefore),
		AlwaysSpaceAfter:  NewRuneSet(DefaultAlwaysSpaceAfter),
		AlwaysSpaceBefore: NewRuneSet(DefaultAlwaysSpaceBefore),
		MaxOperationSize:  DefaultMaxOperationSize,
		Timeout:           DefaultTimeout,
	}
}

// IsPunct reports whether r counts as punctuation for the adjacency
// tie-break: Unicode punctuation, or any character named by a rule.
func (rs RuleSet) IsPunct(r rune) bool {
	if unicode.IsPunct(r) {
		return true
	}
	return rs.NoSpaceAfter.Contains(r) || rs.NoSpaceBefore.Contains(r) ||
		rs.AlwaysSpaceAfter.Contains(r) || rs.AlwaysSpaceBefore.Contains(r)
}

// Summary renders the rule set on one line for logs.
func (rs RuleSet) Summary() string {
	var b strings.Builder
	b.WriteString("aggressive=")
	b.WriteString(boolString(rs.AggressiveSpacing))
	b.WriteString(" tabs=")
	b.WriteString(boolString(rs.PreserveTabs))
	b.WriteString(" indent=")
	b.WriteString(boolString(rs.PreserveIndent))
	b.WriteString(" no_after=" + quote(rs.NoSpaceAfter))
	b.WriteString(" no_before=" + quote(rs.NoSpaceBefore))
	b.WriteString(" always_after=" + quote(rs.AlwaysSpaceAfter))
	b.WriteString(" always_before=" + quote(rs.AlwaysSpaceBefore))
	return b.String()
}

func boolString(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func quote(s RuneSet) string {
	return "\"" + s.String() + "\""
}
