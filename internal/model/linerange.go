package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// maxLine stands in for "until end of input" in open-ended ranges.
const maxLine = int(^uint(0) >> 1)

// LineRange is an inclusive pair of 1-based line numbers.
type LineRange struct {
	Start int
	End   int
}

// NewLineRange builds a range, swapping the bounds if they arrive reversed.
func NewLineRange(start, end int) LineRange {
	if start > end {
		start, end = end, start
	}

	return LineRange{Start: start, End: end}
}

// ParseLineRange parses the command-line forms "N", "N:M", "N:" and ":M".
func ParseLineRange(s string) (LineRange, error) {
	before, after, found := strings.Cut(s, ":")
	if !found {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return LineRange{}, fmt.Errorf("invalid line range %q", s)
		}

		return LineRange{Start: n, End: n}, nil
	}

	start, end := 1, maxLine

	if before != "" {
		n, err := strconv.Atoi(before)
		if err != nil || n < 1 {
			return LineRange{}, fmt.Errorf("invalid line range %q", s)
		}

		start = n
	}

	if after != "" {
		n, err := strconv.Atoi(after)
		if err != nil || n < 1 {
			return LineRange{}, fmt.Errorf("invalid line range %q", s)
		}

		end = n
	}

	if start > end {
		return LineRange{}, fmt.Errorf("invalid line range %q: start beyond end", s)
	}

	return LineRange{Start: start, End: end}, nil
}

// Contains reports whether line falls inside the range.
func (r LineRange) Contains(line int) bool {
	return r.Start <= line && line <= r.End
}

// LineRanges is an ordered collection of ranges used for classification.
// Ranges are sorted by start line; overlapping or adjacent ranges are kept
// as-is and tolerated by the classifier.
type LineRanges struct {
	ranges []LineRange
}

// NewLineRanges orders the given ranges by start line.
func NewLineRanges(ranges []LineRange) LineRanges {
	ordered := make([]LineRange, len(ranges))
	copy(ordered, ranges)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start < ordered[j].Start
		}

		return ordered[i].End < ordered[j].End
	})

	return LineRanges{ranges: ordered}
}

// All returns the ordered ranges.
func (lr LineRanges) All() []LineRange {
	return lr.ranges
}

// Len returns the number of ranges.
func (lr LineRanges) Len() int {
	return len(lr.ranges)
}

// RangeCheckResult classifies a line number against a LineRanges value.
type RangeCheckResult int

const (
	// BeforeOrBetweenRanges marks a line ahead of the next range.
	BeforeOrBetweenRanges RangeCheckResult = iota
	// InRange marks a line inside a range.
	InRange
	// AfterLastRange marks a line past the final range; no later line can
	// ever match again.
	AfterLastRange
)
