package littera

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/littera/ocr"
)

// createTestPNG encodes a small white PNG in memory.
func createTestPNG(width, height int) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func TestRecognizeFileNotFound(t *testing.T) {
	_, err := RecognizeFile("/no/such/image.png")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}

	// Not-found must be detected before any decode attempt.
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist in chain", err)
	}
	if !strings.Contains(err.Error(), "/no/such/image.png") {
		t.Errorf("error message should name the path: %v", err)
	}
}

func TestRecognizeFileDirectory(t *testing.T) {
	_, err := RecognizeFile(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory path")
	}
}

func TestRecognizeFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not an image at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := RecognizeFile(path)
	if err == nil {
		t.Fatal("expected decode error for corrupt file")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("corrupt file must not report not-found: %v", err)
	}
}

func TestRecognizeBytesCorrupt(t *testing.T) {
	_, err := RecognizeBytes([]byte{0x00, 0x01, 0x02, 0x03})
	if err == nil {
		t.Fatal("expected error for undecodable bytes")
	}

	// Decode failure is reported before the engine is ever involved.
	if errors.Is(err, ocr.ErrOCRNotEnabled) {
		t.Errorf("decode failure should precede engine use: %v", err)
	}
}

func TestRecognizeBytesMalformedLanguage(t *testing.T) {
	_, err := RecognizeBytes(createTestPNG(32, 32), WithLanguage("not a tag!"))
	if err == nil {
		t.Fatal("expected error for malformed language tag")
	}
	if !strings.Contains(err.Error(), "language tag") {
		t.Errorf("error should describe the bad tag: %v", err)
	}
}

func TestRecognizeBytesUnsupportedLanguage(t *testing.T) {
	// Well-formed tag with no engine model mapping.
	_, err := RecognizeBytes(createTestPNG(32, 32), WithLanguage("tlh"))
	if err == nil {
		t.Fatal("expected error for unsupported language")
	}
}

func TestRecognizeBytes(t *testing.T) {
	result, err := RecognizeBytes(createTestPNG(100, 50))
	if err != nil {
		if errors.Is(err, ocr.ErrOCRNotEnabled) {
			t.Skip("engine support not compiled in")
		}
		t.Skipf("Tesseract not available: %v", err)
	}

	// A blank image recognizes to no text.
	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if result.Text != "" && len(result.Lines) == 0 {
		t.Error("non-empty text requires lines")
	}
}

func TestAvailableLanguages(t *testing.T) {
	tags, err := AvailableLanguages()
	if err != nil {
		if errors.Is(err, ocr.ErrOCRNotEnabled) {
			t.Skip("engine support not compiled in")
		}
		t.Skipf("Tesseract not available: %v", err)
	}

	for _, tag := range tags {
		if tag == "" {
			t.Error("empty language tag reported")
		}
	}
}

func TestOptions(t *testing.T) {
	o := defaultOptions()
	if o.language != "" || o.pageSegModeSet || o.dpi != 0 {
		t.Errorf("unexpected defaults: %+v", o)
	}

	for _, opt := range []Option{
		WithLanguage("en-US"),
		WithPageSegMode(ocr.PSM_SINGLE_BLOCK),
		WithDPI(300),
	} {
		opt(&o)
	}

	if o.language != "en-US" {
		t.Errorf("language = %q, want en-US", o.language)
	}
	if !o.pageSegModeSet || o.pageSegMode != ocr.PSM_SINGLE_BLOCK {
		t.Errorf("page seg mode not applied: %+v", o)
	}
	if o.dpi != 300 {
		t.Errorf("dpi = %d, want 300", o.dpi)
	}
}
