package littera

import "github.com/tsawler/littera/ocr"

// RecognizeOptions holds configuration for a recognition call.
type RecognizeOptions struct {
	// BCP-47 language tag; empty means the engine's default language.
	language string

	// Engine knobs
	pageSegMode    ocr.PageSegMode
	pageSegModeSet bool
	dpi            int
}

// Option configures a recognition call.
type Option func(*RecognizeOptions)

// WithLanguage selects the recognition language by BCP-47 tag, for example
// "en-US" or "zh-Hans-CN". When not set, the engine's default language is
// used. Recognition fails if the tag is malformed, unsupported, or no
// recognizer for the language is installed on this system.
func WithLanguage(tag string) Option {
	return func(o *RecognizeOptions) {
		o.language = tag
	}
}

// WithPageSegMode sets the page segmentation mode, which controls how the
// engine analyzes the page layout. See the ocr package PSM constants.
func WithPageSegMode(mode ocr.PageSegMode) Option {
	return func(o *RecognizeOptions) {
		o.pageSegMode = mode
		o.pageSegModeSet = true
	}
}

// WithDPI tells the engine the image resolution in dots per inch.
// Useful for images without resolution metadata; zero means unknown.
func WithDPI(dpi int) Option {
	return func(o *RecognizeOptions) {
		o.dpi = dpi
	}
}

// defaultOptions returns the default recognition options.
func defaultOptions() RecognizeOptions {
	return RecognizeOptions{
		language:       "", // engine default
		pageSegModeSet: false,
		dpi:            0, // unknown
	}
}
