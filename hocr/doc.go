// Package hocr parses the hOCR output produced by the recognition engine.
//
// hOCR is an HTML microformat: recognized content is nested in elements
// whose class attributes name the layout role (ocr_page, ocr_carea, ocr_par,
// ocr_line, ocrx_word) and whose title attributes carry layout properties
// such as the bounding box:
//
//	<span class='ocrx_word' title='bbox 36 92 96 116; x_wconf 94'>This</span>
//
// [Parse] converts one page of hOCR into a fully-owned [Page] tree of lines
// and words with pixel-space bounding boxes. Intermediate grouping levels
// (content areas, paragraphs) are walked but not represented; lines are
// collected in document order.
package hocr
