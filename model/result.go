package model

import "strings"

// Word is the smallest recognized text unit with its own bounding rectangle.
// A word is owned exclusively by its containing line.
type Word struct {
	Text   string      `json:"text"`
	Bounds BoundingBox `json:"bounds"`
}

// Line is a recognized horizontal grouping of words at comparable vertical
// position. Text is the concatenation of the word texts with no inserted
// separators. Bounds is the union of the word bounding boxes; a line with no
// words has the zero bounding box.
type Line struct {
	Text   string      `json:"text"`
	Bounds BoundingBox `json:"bounds"`
	Words  []Word      `json:"words"`
}

// NewLine builds a line from its words, deriving the line text and the
// bounding box from the word list.
func NewLine(words []Word) Line {
	var text strings.Builder
	for _, w := range words {
		text.WriteString(w.Text)
	}
	return Line{
		Text:   text.String(),
		Bounds: unionBounds(words),
		Words:  words,
	}
}

// RecognitionResult is the complete output of a single recognition call.
// Text is the newline-joined concatenation of all line texts with leading and
// trailing whitespace trimmed. TextAngle is the estimated rotation of the
// text block in degrees; nil when the engine does not report one.
type RecognitionResult struct {
	Lines     []Line   `json:"lines"`
	Text      string   `json:"text"`
	TextAngle *float64 `json:"text_angle,omitempty"`
}

// NewRecognitionResult builds a result from its lines, deriving the full
// text. textAngle may be nil when no angle is available.
func NewRecognitionResult(lines []Line, textAngle *float64) RecognitionResult {
	texts := make([]string, 0, len(lines))
	for _, line := range lines {
		texts = append(texts, line.Text)
	}
	return RecognitionResult{
		Lines:     lines,
		Text:      strings.TrimSpace(strings.Join(texts, "\n")),
		TextAngle: textAngle,
	}
}

// WordCount returns the total number of words across all lines.
func (r *RecognitionResult) WordCount() int {
	count := 0
	for _, line := range r.Lines {
		count += len(line.Words)
	}
	return count
}
