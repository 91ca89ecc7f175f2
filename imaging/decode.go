package imaging

import (
	"bytes"
	"fmt"
	"image"

	// Register the decoders for the formats the library accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Info describes a successfully decoded image header.
type Info struct {
	Width  int
	Height int
	Format Format
}

// DecodeInfo validates that the buffer holds a decodable raster image and
// returns its dimensions and format. Only the image header is decoded; pixel
// data is left to the recognition engine. It fails if the data is corrupt or
// in a format no registered decoder accepts.
func DecodeInfo(data []byte) (Info, error) {
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if f := DetectFromMagic(data); f != Unknown {
			return Info{}, fmt.Errorf("decoding %s image: %w", f, err)
		}
		return Info{}, fmt.Errorf("decoding image: %w", err)
	}

	return Info{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: formatFromName(name),
	}, nil
}

// formatFromName maps the stdlib decoder registration name to a Format.
func formatFromName(name string) Format {
	switch name {
	case "png":
		return PNG
	case "jpeg":
		return JPEG
	case "gif":
		return GIF
	case "bmp":
		return BMP
	case "tiff":
		return TIFF
	case "webp":
		return WebP
	default:
		return Unknown
	}
}
