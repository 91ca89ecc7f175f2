package model

import "math"

// BoundingBox is an axis-aligned rectangle in image pixel space with the
// origin in the top-left corner of the image.
type BoundingBox struct {
	X      float64 `json:"x"`      // Left edge
	Y      float64 `json:"y"`      // Top edge
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewBoundingBox creates a bounding box from coordinates.
func NewBoundingBox(x, y, width, height float64) BoundingBox {
	return BoundingBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (b BoundingBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate.
func (b BoundingBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate.
func (b BoundingBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate.
func (b BoundingBox) Bottom() float64 {
	return b.Y + b.Height
}

// Union returns the smallest bounding box containing both boxes.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BoundingBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Intersects checks if two bounding boxes overlap.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Bottom() < other.Top() ||
		b.Top() > other.Bottom())
}

// Area returns the area of the bounding box.
func (b BoundingBox) Area() float64 {
	return b.Width * b.Height
}

// IsEmpty returns true if the bounding box has zero area.
func (b BoundingBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// unionBounds folds the word bounding boxes of a line into a single box
// covering all of them. A line with no words yields the zero box.
func unionBounds(words []Word) BoundingBox {
	if len(words) == 0 {
		return BoundingBox{}
	}

	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, w := range words {
		minX = math.Min(minX, w.Bounds.Left())
		minY = math.Min(minY, w.Bounds.Top())
		maxX = math.Max(maxX, w.Bounds.Right())
		maxY = math.Max(maxY, w.Bounds.Bottom())
	}

	return BoundingBox{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}
