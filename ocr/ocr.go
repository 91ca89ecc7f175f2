//go:build ocr

// Package ocr provides access to the external recognition engine used by
// the littera library.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strconv"

	"github.com/otiai10/gosseract/v2"
)

// PageSegMode represents page segmentation modes for recognition.
// These control how the engine analyzes the page layout.
type PageSegMode = gosseract.PageSegMode

// Page segmentation modes.
const (
	PSM_OSD_ONLY               = gosseract.PSM_OSD_ONLY
	PSM_AUTO_OSD               = gosseract.PSM_AUTO_OSD
	PSM_AUTO_ONLY              = gosseract.PSM_AUTO_ONLY
	PSM_AUTO                   = gosseract.PSM_AUTO
	PSM_SINGLE_COLUMN          = gosseract.PSM_SINGLE_COLUMN
	PSM_SINGLE_BLOCK_VERT_TEXT = gosseract.PSM_SINGLE_BLOCK_VERT_TEXT
	PSM_SINGLE_BLOCK           = gosseract.PSM_SINGLE_BLOCK
	PSM_SINGLE_LINE            = gosseract.PSM_SINGLE_LINE
	PSM_SINGLE_WORD            = gosseract.PSM_SINGLE_WORD
	PSM_CIRCLE_WORD            = gosseract.PSM_CIRCLE_WORD
	PSM_SINGLE_CHAR            = gosseract.PSM_SINGLE_CHAR
	PSM_SPARSE_TEXT            = gosseract.PSM_SPARSE_TEXT
	PSM_SPARSE_TEXT_OSD        = gosseract.PSM_SPARSE_TEXT_OSD
	PSM_RAW_LINE               = gosseract.PSM_RAW_LINE
)

// Client wraps Tesseract for recognition operations. Each Client owns one
// engine instance; callers wanting concurrent recognition should create one
// Client per goroutine.
type Client struct {
	client *gosseract.Client
}

// New creates a new recognition client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases engine resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguages sets the traineddata code(s) used for recognition.
// When not called, the engine uses its default model (English).
func (c *Client) SetLanguages(codes ...string) error {
	return c.client.SetLanguage(codes...)
}

// SetPageSegMode sets the page segmentation mode.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}

// SetDPI sets the resolution the engine assumes for the image.
// Zero leaves the engine's own estimate in place.
func (c *Client) SetDPI(dpi int) error {
	if dpi <= 0 {
		return nil
	}
	return c.client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), strconv.Itoa(dpi))
}

// HOCR performs recognition on image data and returns the engine's
// hierarchical result as hOCR markup: lines and words with bounding boxes.
func (c *Client) HOCR(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	out, err := c.client.HOCRText()
	if err != nil {
		return "", fmt.Errorf("recognition failed: %w", err)
	}

	return out, nil
}

// AvailableLanguages returns the traineddata codes of all recognition
// models installed on this system, in the order the engine reports them.
func AvailableLanguages() ([]string, error) {
	codes, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return nil, fmt.Errorf("querying installed languages: %w", err)
	}
	return codes, nil
}
