// Package model provides the user-facing data structures for recognition
// results.
//
// All recognition operations ultimately produce a [RecognitionResult]: a
// flat, fully-owned tree of value objects with no references back into the
// recognition engine. Each result is built once per call and is safe to
// retain, copy, and serialize.
//
// # Structure
//
// A result contains the recognized [Line] values in reading order. Each line
// owns its [Word] values, a bounding box covering all of them, and the line
// text. The result also carries the full text of the image and, when the
// engine reports one, the estimated rotation of the text block:
//
//	result, err := littera.RecognizeFile("scan.png")
//	for _, line := range result.Lines {
//	    fmt.Println(line.Text, line.Bounds)
//	}
//
// # Geometry
//
// Bounding boxes use image pixel coordinates with the origin in the top-left
// corner. [BoundingBox.Union] and the edge accessors support layout
// calculations over recognized regions.
//
// # Word Spacing
//
// [Line.WordGaps] and the derived statistics (average, min, max) measure the
// horizontal distance between consecutive words on a line. They are pure
// functions of the word list and are recomputed on each call.
//
// # Serialization
//
// All types marshal to JSON with stable field names (x, y, width, height,
// text, bounds, words, lines, text_angle) and round-trip without loss.
package model
