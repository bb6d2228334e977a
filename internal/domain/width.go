package domain

const (
	baselineNumberWidth = 4

	// Inputs at or below this size always use the baseline width.
	numberWidthSizeThreshold = 1000

	// Line counts that fit the baseline width.
	baselineMaxLines = 9999
)

// LineNumberWidth computes the gutter column width for one input. Small
// inputs and inputs with an unknown line count keep the fixed baseline;
// larger inputs widen to the number of decimal digits of their line count so
// line numbers never truncate.
func LineNumberWidth(size int64, lineCount int) int {
	if size <= numberWidthSizeThreshold || lineCount <= 0 {
		return baselineNumberWidth
	}

	if lineCount <= baselineMaxLines {
		return baselineNumberWidth
	}

	width := 0
	for n := lineCount; n > 0; n /= 10 {
		width++
	}

	return width
}
