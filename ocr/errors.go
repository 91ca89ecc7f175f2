package ocr

import "errors"

// ErrOCRNotEnabled is returned when recognition is attempted but engine
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")
