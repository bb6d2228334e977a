// Package domain contains the pure rendering decisions: which lines of an
// input are visible and how wide the line-number gutter must be.
package domain

import (
	m "github.com/michabs/glance/internal/model"
)

// ResolveVisibleLines turns a visibility request into the concrete ranges to
// show for one input. In diff-context mode every changed line contributes a
// range of the configured radius around it; the lower bound saturates at
// line 1. The resulting ranges may overlap, which the checker tolerates. A
// diff-context request without a change map resolves to no ranges at all.
func ResolveVisibleLines(visible m.VisibleLines, changes m.LineChanges) m.LineRanges {
	if !visible.DiffMode() {
		return visible.Ranges()
	}

	ranges := make([]m.LineRange, 0, len(changes))

	for line := range changes {
		start := line - visible.Context()
		if start < 1 {
			start = 1
		}

		ranges = append(ranges, m.LineRange{Start: start, End: line + visible.Context()})
	}

	return m.NewLineRanges(ranges)
}

// RangeChecker classifies line numbers against an ordered range collection.
// Line numbers must be presented in strictly increasing order; the checker
// keeps a cursor that only ever advances, so a full pass over an input is
// linear in ranges plus lines.
type RangeChecker struct {
	ranges []m.LineRange
	cursor int
}

// NewRangeChecker starts a scan in the "before all ranges" state.
func NewRangeChecker(ranges m.LineRanges) *RangeChecker {
	return &RangeChecker{ranges: ranges.All()}
}

// Check classifies the given line number. Once AfterLastRange is returned it
// is returned for every later line number of the same scan.
func (c *RangeChecker) Check(line int) m.RangeCheckResult {
	for c.cursor < len(c.ranges) && c.ranges[c.cursor].End < line {
		c.cursor++
	}

	if c.cursor == len(c.ranges) {
		return m.AfterLastRange
	}

	if line < c.ranges[c.cursor].Start {
		return m.BeforeOrBetweenRanges
	}

	return m.InRange
}
