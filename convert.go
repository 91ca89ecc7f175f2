package littera

import (
	"github.com/tsawler/littera/hocr"
	"github.com/tsawler/littera/model"
)

// adaptResult flattens the engine's hierarchical result tree into the
// library's fully-owned data model. Word rectangles are copied verbatim;
// each line's bounding box is derived as the union of its word boxes and its
// text as the concatenation of its word texts, so the returned value carries
// no reference back into the engine output.
func adaptResult(page *hocr.Page) *model.RecognitionResult {
	lines := make([]model.Line, 0, len(page.Lines))
	for _, hl := range page.Lines {
		words := make([]model.Word, 0, len(hl.Words))
		for _, hw := range hl.Words {
			words = append(words, model.Word{
				Text: hw.Text,
				Bounds: model.NewBoundingBox(
					hw.BBox.X1,
					hw.BBox.Y1,
					hw.BBox.Width(),
					hw.BBox.Height(),
				),
			})
		}
		lines = append(lines, model.NewLine(words))
	}

	result := model.NewRecognitionResult(lines, page.TextAngle)
	return &result
}
