package spacing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNormalize_Scenarios(t *testing.T) {
	rules := DefaultRuleSet()

	tests := []struct {
		desc    string
		before  string
		after   string
		removed *string
		want    string
	}{
		{"remove word", "this is ", " I want to change", strPtr("text"), "this is I want to change"},
		{"remove word with runs", "this  is   ", "    I want", strPtr("text"), "this is I want"},
		{"no space before comma", "this is ", ", I want", strPtr("text"), "this is, I want"},
		{"single letters", "a ", " c", strPtr("b"), "a c"},
		{"space-delimited removal", "is", "I", strPtr(" text "), "is I"},
		{"at line start", "", " rest of line", strPtr("word"), "rest of line"},
		{"at line end", "start of line ", "", strPtr("word"), "start of line"},
		{"inside brackets", "call (", ") now", strPtr("x"), "call () now"},
		{"after opening bracket", "see (", " note)", strPtr("the"), "see (note)"},
		{"sentence then bracket", "end.", " (aside)", strPtr("x"), "end. (aside)"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			d := Normalize(tt.before, tt.after, tt.removed, nil, rules)
			assert.Equal(t, tt.want, d.Joined())
		})
	}
}

func TestNormalize_EmptySides(t *testing.T) {
	rules := DefaultRuleSet()

	d := Normalize("   ", "\t", nil, nil, rules)
	if diff := cmp.Diff(Decision{Reason: ReasonEmptySide}, d); diff != "" {
		t.Errorf("both empty (-want +got):\n%s", diff)
	}

	d = Normalize("", "  word ", strPtr(" gone "), nil, rules)
	want := Decision{TrimmedAfter: "word", Reason: ReasonEmptySide}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("before empty (-want +got):\n%s", diff)
	}
	assert.Equal(t, "word", d.Joined())

	d = Normalize("word  ", "", nil, strPtr("x"), rules)
	assert.False(t, d.NeedsSpace)
	assert.Equal(t, "word", d.Joined())
}

func TestNormalize_NonAggressiveKeepsInteriorRuns(t *testing.T) {
	rules := DefaultRuleSet()
	rules.AggressiveSpacing = false

	d := Normalize("  this  is ", " I   want  ", strPtr("text"), nil, rules)
	assert.Equal(t, "this  is", d.TrimmedBefore)
	assert.Equal(t, "I   want", d.TrimmedAfter)
	assert.True(t, d.NeedsSpace)
}

func TestNormalize_RemovedWhitespace(t *testing.T) {
	rules := DefaultRuleSet()

	// Adjacent punctuation would normally fuse.
	d := Normalize("a-", "\"b\"", strPtr("x"), nil, rules)
	assert.False(t, d.NeedsSpace)
	assert.Equal(t, ReasonAdjacentPunct, d.Reason)

	d = Normalize("a-", "\"b\"", strPtr(" x "), nil, rules)
	assert.True(t, d.NeedsSpace)
	assert.Equal(t, ReasonRemovedWhitespace, d.Reason)

	// A no-space rule still wins.
	d = Normalize("word", ", more", strPtr(" x"), nil, rules)
	assert.False(t, d.NeedsSpace)
	assert.Equal(t, ReasonForbidden, d.Reason)
	assert.Equal(t, "word, more", d.Joined())
}

func TestNormalize_InsertedDoesNotOverride(t *testing.T) {
	rules := DefaultRuleSet()
	withInsert := Normalize("hello", "! how", nil, strPtr("world"), rules)
	without := Normalize("hello", "! how", nil, nil, rules)
	if diff := cmp.Diff(without, withInsert); diff != "" {
		t.Errorf("inserted changed the decision (-want +got):\n%s", diff)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	rules := DefaultRuleSet()
	pairs := [][2]string{
		{"this  is ", "  I want"},
		{"  hello", "! how are you?  "},
		{"see (", " note )"},
		{"a-", "\"b\""},
		{"\t\tindented", "tail\t"},
		{"", "x"},
	}

	for _, p := range pairs {
		first := Normalize(p[0], p[1], nil, nil, rules)
		second := Normalize(first.TrimmedBefore, first.TrimmedAfter, nil, nil, rules)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("normalize(%q, %q) not idempotent (-first +second):\n%s", p[0], p[1], diff)
		}
	}
}

func TestNormalize_NoBoundarySpace(t *testing.T) {
	rules := DefaultRuleSet()
	sides := []string{"", " ", "word", " word ", "(", ", x", "\t"}

	for _, before := range sides {
		for _, after := range sides {
			d := Normalize(before, after, strPtr(" removed "), nil, rules)
			joined := d.Joined()
			if d.TrimmedBefore == "" {
				assert.NotRegexp(t, `^\s`, joined, "before=%q after=%q", before, after)
			}
			if d.TrimmedAfter == "" {
				assert.NotRegexp(t, `\s$`, joined, "before=%q after=%q", before, after)
			}
		}
	}
}
