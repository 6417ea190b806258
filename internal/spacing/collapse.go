package spacing

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// collapser folds every maximal whitespace run into a single ASCII space.
// With preserveTabs, a run made only of tabs is emitted unchanged.
type collapser struct {
	preserveTabs bool

	inRun    bool // currently inside a whitespace run
	onlyTabs bool // the current run has seen nothing but tabs
	tabs     int  // tabs seen in the current run
}

// Reset implements transform.Transformer.
func (c *collapser) Reset() {
	c.inRun, c.onlyTabs, c.tabs = false, false, 0
}

// Transform implements transform.Transformer.
func (c *collapser) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(r) {
			if !c.inRun {
				c.inRun, c.onlyTabs, c.tabs = true, true, 0
			}
			if r == '\t' {
				c.tabs++
			} else {
				c.onlyTabs = false
			}
			nSrc += size
			continue
		}

		if c.inRun {
			n, ok := c.flush(dst[nDst:])
			if !ok {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += n
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}

	if atEOF && c.inRun {
		n, ok := c.flush(dst[nDst:])
		if !ok {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += n
	}
	return nDst, nSrc, nil
}

// flush writes the replacement for the pending run.
func (c *collapser) flush(dst []byte) (int, bool) {
	if c.preserveTabs && c.onlyTabs {
		if len(dst) < c.tabs {
			return 0, false
		}
		for i := 0; i < c.tabs; i++ {
			dst[i] = '\t'
		}
		c.inRun = false
		return c.tabs, true
	}
	if len(dst) < 1 {
		return 0, false
	}
	dst[0] = ' '
	c.inRun = false
	return 1, true
}

// NewCollapser returns a transformer that collapses whitespace runs.
func NewCollapser(preserveTabs bool) transform.Transformer {
	return &collapser{preserveTabs: preserveTabs}
}

// Collapse folds every whitespace run in s to one space. Applying it twice
// gives the same result as applying it once.
func Collapse(s string, preserveTabs bool) string {
	if s == "" {
		return s
	}
	out, _, err := transform.String(NewCollapser(preserveTabs), s)
	if err != nil {
		// The collapser never fails on complete input.
		return s
	}
	return out
}
