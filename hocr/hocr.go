package hocr

// BBox is a rectangle in image pixel coordinates as encoded by the hOCR
// bbox property: left, top, right, bottom with the origin in the top-left
// corner of the image.
type BBox struct {
	X1 float64 // Left
	Y1 float64 // Top
	X2 float64 // Right
	Y2 float64 // Bottom
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X2 - b.X1
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Y2 - b.Y1
}

// Word is a single recognized token.
type Word struct {
	Text       string
	BBox       BBox
	Confidence float64 // Recognition confidence 0-100 (x_wconf), 0 if absent
}

// Line is a recognized line of words sharing a baseline.
type Line struct {
	BBox     BBox
	Baseline string // Raw baseline property, empty if absent
	Words    []Word
}

// Page is one recognized page: the root of the result tree.
type Page struct {
	BBox      BBox
	Lines     []Line
	TextAngle *float64 // Degrees, from the textangle property; nil if absent
}
