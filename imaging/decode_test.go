package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// createTestPNG encodes a small grayscale PNG in memory.
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

func TestDecodeInfo(t *testing.T) {
	data := createTestPNG(120, 40)

	info, err := DecodeInfo(data)
	if err != nil {
		t.Fatalf("DecodeInfo() error: %v", err)
	}

	if info.Width != 120 || info.Height != 40 {
		t.Errorf("dimensions = %dx%d, want 120x40", info.Width, info.Height)
	}
	if info.Format != PNG {
		t.Errorf("format = %v, want PNG", info.Format)
	}
}

func TestDecodeInfoCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("this is definitely not an image")},
		{"truncated png magic", []byte{0x89, 'P', 'N', 'G'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeInfo(tt.data); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}
