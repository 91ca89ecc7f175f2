// Package littera provides a simplified interface for optical character
// recognition over raster images.
//
// Recognition itself is delegated to an external engine (Tesseract); this
// library loads image bytes, validates that they decode, invokes a
// language-selectable recognizer, and flattens the engine's hierarchical
// result into a stable, serializable model of lines, words, and bounding
// boxes.
//
// Basic usage:
//
//	result, err := littera.RecognizeFile("scan.png")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Text)
//
// With a language:
//
//	result, err := littera.RecognizeBytes(data, littera.WithLanguage("zh-Hans-CN"))
//
// Engine support is compiled in with the "ocr" build tag; without it every
// recognition call returns ocr.ErrOCRNotEnabled.
package littera

import (
	"fmt"
	"os"

	"github.com/tsawler/littera/hocr"
	"github.com/tsawler/littera/imaging"
	"github.com/tsawler/littera/lang"
	"github.com/tsawler/littera/model"
	"github.com/tsawler/littera/ocr"
)

// RecognizeFile performs recognition on an image file. It fails before any
// decode attempt if the path does not resolve to an existing file; the
// returned error wraps fs.ErrNotExist in that case.
func RecognizeFile(path string, opts ...Option) (*model.RecognitionResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not an image file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return RecognizeBytes(data, opts...)
}

// RecognizeBytes performs recognition on an in-memory image buffer in any
// supported raster format (PNG, JPEG, BMP, GIF, TIFF, WebP).
func RecognizeBytes(data []byte, opts ...Option) (*model.RecognitionResult, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	// Validate the buffer decodes before involving the engine.
	if _, err := imaging.DecodeInfo(data); err != nil {
		return nil, fmt.Errorf("unsupported image data: %w", err)
	}

	var codes []string
	if options.language != "" {
		code, err := lang.Resolve(options.language)
		if err != nil {
			return nil, err
		}

		installed, err := ocr.AvailableLanguages()
		if err != nil {
			return nil, fmt.Errorf("recognizer unavailable: %w", err)
		}
		if !containsCode(installed, code) {
			return nil, fmt.Errorf("no recognizer installed for language %q (engine code %q)", options.language, code)
		}
		codes = []string{code}
	}

	client, err := ocr.New()
	if err != nil {
		return nil, fmt.Errorf("creating recognizer: %w", err)
	}
	defer client.Close()

	if codes != nil {
		if err := client.SetLanguages(codes...); err != nil {
			return nil, fmt.Errorf("selecting language %q: %w", options.language, err)
		}
	}
	if options.pageSegModeSet {
		if err := client.SetPageSegMode(options.pageSegMode); err != nil {
			return nil, fmt.Errorf("setting page segmentation mode: %w", err)
		}
	}
	if options.dpi > 0 {
		if err := client.SetDPI(options.dpi); err != nil {
			return nil, fmt.Errorf("setting DPI: %w", err)
		}
	}

	raw, err := client.HOCR(data)
	if err != nil {
		return nil, fmt.Errorf("recognition failed: %w", err)
	}

	page, err := hocr.Parse([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("reading recognition result: %w", err)
	}

	return adaptResult(page), nil
}

// AvailableLanguages returns the language tags the engine can recognize on
// the current system, in the order the engine reports them. Installed models
// with no tag equivalent (such as the orientation model "osd") are returned
// under their engine code.
func AvailableLanguages() ([]string, error) {
	codes, err := ocr.AvailableLanguages()
	if err != nil {
		return nil, fmt.Errorf("listing recognition languages: %w", err)
	}

	tags := make([]string, 0, len(codes))
	for _, code := range codes {
		tags = append(tags, lang.Tag(code))
	}
	return tags, nil
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
