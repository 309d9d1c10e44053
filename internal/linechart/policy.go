package linechart

import colorful "github.com/lucasb-eyer/go-colorful"

// TransitionPolicy decides whether a color change between adjacent points
// starts a new path segment. A lone point in the alert color returning to a
// non-alert color would otherwise split the line twice and flicker; the
// policy suppresses the alert→non-alert split exactly once, then re-arms.
//
// The rule, per adjacent (prev, next) pair with one bit of carried state:
//
//	if prev == alert && next != alert && !suppressed:
//	    suppressed = true; do not split
//	else:
//	    suppressed = false; split iff prev != next
//
// The policy carries state across calls; use one instance per build and
// feed it every adjacent pair in order.
type TransitionPolicy struct {
	Alert colorful.Color

	suppressed bool
}

// ShouldSplit reports whether the edge from prev to next starts a new
// segment.
func (p *TransitionPolicy) ShouldSplit(prev, next colorful.Color) bool {
	if prev == p.Alert && next != p.Alert && !p.suppressed {
		p.suppressed = true
		return false
	}
	p.suppressed = false
	return prev != next
}

// Reset re-arms the policy for a fresh build.
func (p *TransitionPolicy) Reset() {
	p.suppressed = false
}
