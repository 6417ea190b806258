package spacing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/spacer/internal/textutil"
)

// Decision is the result of normalizing the text around an edit.
type Decision struct {
	TrimmedBefore string
	TrimmedAfter  string
	NeedsSpace    bool
	Reason        Reason
}

// Joined assembles before + separator + after. No separator is ever placed
// next to an empty side.
func (d Decision) Joined() string {
	if d.TrimmedBefore == "" || d.TrimmedAfter == "" {
		return d.TrimmedBefore + d.TrimmedAfter
	}
	if d.NeedsSpace {
		return d.TrimmedBefore + " " + d.TrimmedAfter
	}
	return d.TrimmedBefore + d.TrimmedAfter
}

// Normalize computes how before and after are joined once the edit between
// them is applied.
//
// removed is the text being deleted (remove path), inserted the text being
// added (insert path); either may be nil. inserted does not affect the
// before/after decision: the inserted fragment's own boundaries are decided
// by the caller with Join.
func Normalize(before, after string, removed, inserted *string, rules RuleSet) Decision {
	if rules.AggressiveSpacing {
		before = Collapse(before, rules.PreserveTabs)
		after = Collapse(after, rules.PreserveTabs)
	}

	d := Decision{
		TrimmedBefore: strings.TrimSpace(before),
		TrimmedAfter:  strings.TrimSpace(after),
	}
	if d.TrimmedBefore == "" || d.TrimmedAfter == "" {
		d.Reason = ReasonEmptySide
		return d
	}

	left, _ := textutil.LastChar(d.TrimmedBefore)
	right, _ := textutil.FirstChar(d.TrimmedAfter)
	b := rules.Decide(left, right)
	d.NeedsSpace, d.Reason = b.NeedsSpace, b.Reason

	// Deleting a space-delimited fragment must not fuse its neighbours.
	// A matched no_space_* rule (ReasonForbidden) still wins: "word" + ", more"
	// stays "word, more".
	if removed != nil && !d.NeedsSpace && b.Reason != ReasonForbidden && hasOuterSpace(*removed) {
		d.NeedsSpace, d.Reason = true, ReasonRemovedWhitespace
	}
	return d
}

func hasOuterSpace(s string) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(first) || unicode.IsSpace(last)
}
