package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const ThumbnailSuffix = "_thumbnail"

// Processor handles image processing operations
type Processor struct {
	quality int // JPEG quality (1-100)
}

// NewProcessor creates a new image processor
func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85 // Default quality
	}
	return &Processor{
		quality: quality,
	}
}

// Dimensions reads only the image header.
func Dimensions(reader io.Reader) (width, height int, format string, err error) {
	cfg, format, err := image.DecodeConfig(reader)
	if err != nil {
		return 0, 0, "", fmt.Errorf("failed to decode image config: %w", err)
	}
	return cfg.Width, cfg.Height, format, nil
}

// Thumbnail decodes an image and scales it to fit in a maxSide x maxSide box.
// GIF input is re-encoded as PNG; the returned format says which encoder ran.
func (p *Processor) Thumbnail(reader io.Reader, maxSide int) (io.Reader, string, error) {
	img, imgFormat, err := image.Decode(reader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	resized := p.resize(img, maxSide, maxSide)

	var buf bytes.Buffer
	switch imgFormat {
	case "jpeg":
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, "", fmt.Errorf("failed to encode JPEG: %w", err)
		}
		return &buf, "jpeg", nil
	default:
		if err := png.Encode(&buf, resized); err != nil {
			return nil, "", fmt.Errorf("failed to encode PNG: %w", err)
		}
		return &buf, "png", nil
	}
}

// resize resizes an image maintaining aspect ratio. Images already inside
// the box are copied at their own size.
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	newWidth, newHeight := width, height
	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		newWidth = maxWidth
		newHeight = maxHeight

		if float64(maxWidth)/float64(maxHeight) > ratio {
			newWidth = int(float64(maxHeight) * ratio)
		} else {
			newHeight = int(float64(maxWidth) / ratio)
		}
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

// ThumbnailPath returns "<name>_thumbnail<ext>" for the original path,
// with the extension matching the encoder that produced the thumbnail.
func ThumbnailPath(originalPath, format string) string {
	ext := filepath.Ext(originalPath)
	name := strings.TrimSuffix(originalPath, ext)

	switch format {
	case "jpeg":
		if ext == "" {
			ext = ".jpg"
		}
	default:
		ext = ".png"
	}

	return name + ThumbnailSuffix + ext
}
