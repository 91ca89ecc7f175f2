package imaging

import "testing"

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PNG, "PNG"},
		{JPEG, "JPEG"},
		{GIF, "GIF"},
		{BMP, "BMP"},
		{TIFF, "TIFF"},
		{WebP, "WebP"},
		{Unknown, "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFormatExtension(t *testing.T) {
	if got := PNG.Extension(); got != ".png" {
		t.Errorf("PNG.Extension() = %q, want .png", got)
	}
	if got := Unknown.Extension(); got != "" {
		t.Errorf("Unknown.Extension() = %q, want empty", got)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"scan.png", PNG},
		{"photo.jpg", JPEG},
		{"photo.JPEG", JPEG},
		{"anim.gif", GIF},
		{"capture.bmp", BMP},
		{"page.tif", TIFF},
		{"page.tiff", TIFF},
		{"modern.webp", WebP},
		{"document.pdf", Unknown},
		{"noextension", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectFromMagic(t *testing.T) {
	pad := func(prefix []byte) []byte {
		data := make([]byte, 16)
		copy(data, prefix)
		return data
	}

	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"png", pad([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}), PNG},
		{"jpeg", pad([]byte{0xFF, 0xD8, 0xFF, 0xE0}), JPEG},
		{"gif87a", pad([]byte("GIF87a")), GIF},
		{"gif89a", pad([]byte("GIF89a")), GIF},
		{"bmp", pad([]byte("BM")), BMP},
		{"tiff little-endian", pad([]byte{'I', 'I', 0x2A, 0x00}), TIFF},
		{"tiff big-endian", pad([]byte{'M', 'M', 0x00, 0x2A}), TIFF},
		{"webp", append([]byte("RIFF"), []byte{0, 0, 0, 0, 'W', 'E', 'B', 'P', 0, 0, 0, 0}...), WebP},
		{"garbage", pad([]byte("garbage data")), Unknown},
		{"too short", []byte{0x89, 'P'}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}
