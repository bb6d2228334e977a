package model

// VisibleLines specifies which lines of an input should be shown: either an
// explicit set of ranges, or a context radius around lines reported as
// changed. It is resolved to a concrete LineRanges once per input.
type VisibleLines struct {
	ranges  LineRanges
	context int
	diff    bool
}

// VisibleLinesFromRanges shows exactly the given ranges. An empty collection
// shows the whole input.
func VisibleLinesFromRanges(ranges LineRanges) VisibleLines {
	if ranges.Len() == 0 {
		ranges = NewLineRanges([]LineRange{{Start: 1, End: maxLine}})
	}

	return VisibleLines{ranges: ranges}
}

// VisibleLinesDiffContext shows only lines within the given radius of a
// changed line.
func VisibleLinesDiffContext(context int) VisibleLines {
	if context < 0 {
		context = 0
	}

	return VisibleLines{context: context, diff: true}
}

// DiffMode reports whether visibility is derived from a change map.
func (v VisibleLines) DiffMode() bool {
	return v.diff
}

// Context returns the diff-context radius.
func (v VisibleLines) Context() int {
	return v.context
}

// Ranges returns the explicit ranges of a non-diff request.
func (v VisibleLines) Ranges() LineRanges {
	return v.ranges
}
