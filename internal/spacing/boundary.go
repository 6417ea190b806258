package spacing

import (
	"strings"

	"github.com/bethropolis/spacer/internal/textutil"
)

// Verdict is what one side of a boundary says about the separator.
type Verdict int

const (
	Neutral Verdict = iota
	Force
	Forbid
)

func (v Verdict) String() string {
	switch v {
	case Force:
		return "force"
	case Forbid:
		return "forbid"
	default:
		return "neutral"
	}
}

// Reason records which step of the decision procedure settled a boundary.
type Reason int

const (
	ReasonDefault           Reason = iota // no rule applied, words get a space
	ReasonEmptySide                       // one side is empty, nothing to separate
	ReasonForbidden                       // a no_space_* rule matched
	ReasonForced                          // an always_space_* rule matched
	ReasonAdjacentPunct                   // both characters are punctuation
	ReasonRemovedWhitespace               // the removed text was space-delimited
)

var reasonNames = [...]string{
	ReasonDefault:           "default",
	ReasonEmptySide:         "empty-side",
	ReasonForbidden:         "forbidden",
	ReasonForced:            "forced",
	ReasonAdjacentPunct:     "adjacent-punctuation",
	ReasonRemovedWhitespace: "removed-whitespace",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Boundary is the resolved decision for one (left, right) character pair.
type Boundary struct {
	Left, Right  rune
	LeftVerdict  Verdict
	RightVerdict Verdict
	NeedsSpace   bool
	Reason       Reason
}

// LeftVerdict classifies the last character before the boundary.
// always_space_after wins over no_space_after for the same character.
func (rs RuleSet) LeftVerdict(r rune) Verdict {
	switch {
	case rs.AlwaysSpaceAfter.Contains(r):
		return Force
	case rs.NoSpaceAfter.Contains(r):
		return Forbid
	}
	return Neutral
}

// RightVerdict classifies the first character after the boundary.
// always_space_before wins over no_space_before for the same character.
func (rs RuleSet) RightVerdict(r rune) Verdict {
	switch {
	case rs.AlwaysSpaceBefore.Contains(r):
		return Force
	case rs.NoSpaceBefore.Contains(r):
		return Forbid
	}
	return Neutral
}

// Decide resolves the boundary between left and right.
//
// Precedence, first match wins:
//  1. either side forbids a space: no space
//  2. either side forces a space: space
//  3. both characters are punctuation: no space
//  4. otherwise: space
func (rs RuleSet) Decide(left, right rune) Boundary {
	b := Boundary{
		Left:         left,
		Right:        right,
		LeftVerdict:  rs.LeftVerdict(left),
		RightVerdict: rs.RightVerdict(right),
	}
	switch {
	case b.LeftVerdict == Forbid || b.RightVerdict == Forbid:
		b.NeedsSpace, b.Reason = false, ReasonForbidden
	case b.LeftVerdict == Force || b.RightVerdict == Force:
		b.NeedsSpace, b.Reason = true, ReasonForced
	case rs.IsPunct(left) && rs.IsPunct(right):
		b.NeedsSpace, b.Reason = false, ReasonAdjacentPunct
	default:
		b.NeedsSpace, b.Reason = true, ReasonDefault
	}
	return b
}

// Join decides whether a space goes between left and right, looking only
// at their innermost non-blank characters. Blank sides never get a space.
func (rs RuleSet) Join(left, right string) Boundary {
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)
	l, okL := textutil.LastChar(left)
	r, okR := textutil.FirstChar(right)
	if !okL || !okR {
		return Boundary{Left: l, Right: r, Reason: ReasonEmptySide}
	}
	return rs.Decide(l, r)
}
