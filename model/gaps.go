package model

// WordGaps returns the horizontal gap, in pixels, between each pair of
// consecutive words on the line. For k words it returns exactly k-1 values,
// in word order. Overlapping or reversed boxes produce a gap of 0 rather
// than a negative value. Words are taken in the order the engine reported
// them; no re-sorting is performed.
func (l Line) WordGaps() []float64 {
	if len(l.Words) < 2 {
		return []float64{}
	}

	gaps := make([]float64, 0, len(l.Words)-1)
	for i := 0; i < len(l.Words)-1; i++ {
		gap := l.Words[i+1].Bounds.Left() - l.Words[i].Bounds.Right()
		if gap < 0 {
			gap = 0
		}
		gaps = append(gaps, gap)
	}
	return gaps
}

// AverageWordGap returns the arithmetic mean of the line's word gaps.
// The second return value is false when the line has fewer than 2 words.
func (l Line) AverageWordGap() (float64, bool) {
	gaps := l.WordGaps()
	if len(gaps) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, g := range gaps {
		sum += g
	}
	return sum / float64(len(gaps)), true
}

// MaxWordGap returns the largest word gap on the line.
// The second return value is false when the line has fewer than 2 words.
func (l Line) MaxWordGap() (float64, bool) {
	gaps := l.WordGaps()
	if len(gaps) == 0 {
		return 0, false
	}

	max := gaps[0]
	for _, g := range gaps[1:] {
		if g > max {
			max = g
		}
	}
	return max, true
}

// MinWordGap returns the smallest word gap on the line.
// The second return value is false when the line has fewer than 2 words.
func (l Line) MinWordGap() (float64, bool) {
	gaps := l.WordGaps()
	if len(gaps) == 0 {
		return 0, false
	}

	min := gaps[0]
	for _, g := range gaps[1:] {
		if g < min {
			min = g
		}
	}
	return min, true
}
