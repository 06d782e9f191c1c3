// Package media provides image processing utilities
package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"regexp"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
)

var dataURLPattern = regexp.MustCompile(`^data:(image/[a-z+.-]+);base64,`)

// ImageProcessor normalizes the inline data-URL images stored inside
// gallery, facility and yearbook items: decode, bound dimensions, re-encode.
type ImageProcessor struct {
	maxBytes     int64
	maxDimension int
	logger       *logging.ChanneledLogger
}

// NewImageProcessor creates a new ImageProcessor instance.
func NewImageProcessor(maxBytes int64, maxDimension int, logger *logging.ChanneledLogger) *ImageProcessor {
	return &ImageProcessor{
		maxBytes:     maxBytes,
		maxDimension: maxDimension,
		logger:       logger,
	}
}

// NormalizeDataURL validates and normalizes a base64 image data URL.
// SVG passes through after a decode check. Raster formats are decoded,
// downscaled when either side exceeds the configured maximum, and re-encoded
// as WebP when that comes out smaller than the original. Empty strings and
// plain asset paths are returned unchanged; only inline images are touched.
func (p *ImageProcessor) NormalizeDataURL(data string) (string, error) {
	if data == "" || !IsDataURL(data) {
		return data, nil
	}

	m := dataURLPattern.FindStringSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("image must be a base64 data URL")
	}
	mimeType := m[1]

	decoded, err := base64.StdEncoding.DecodeString(data[len(m[0]):])
	if err != nil {
		return "", fmt.Errorf("failed to decode base64 image: %w", err)
	}
	if int64(len(decoded)) > p.maxBytes {
		return "", fmt.Errorf("image of %d bytes exceeds limit of %d", len(decoded), p.maxBytes)
	}

	if mimeType == "image/svg+xml" {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(decoded))
	if err != nil {
		return "", fmt.Errorf("unsupported image format %s: %w", mimeType, err)
	}

	resized := false
	bounds := img.Bounds()
	if bounds.Dx() > p.maxDimension || bounds.Dy() > p.maxDimension {
		img = imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)
		resized = true
		p.logger.Content().Debug("Image downscaled",
			"from", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
			"to", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()))
	}

	encoded, err := encodeWebP(img)
	if err != nil {
		return "", fmt.Errorf("failed to re-encode image: %w", err)
	}

	// Keep the original bytes when re-encoding gains nothing.
	if !resized && len(encoded) >= len(decoded) {
		return data, nil
	}
	return "data:image/webp;base64," + base64.StdEncoding.EncodeToString(encoded), nil
}

// IsDataURL reports whether raw looks like an inline base64 image.
func IsDataURL(raw string) bool {
	return strings.HasPrefix(raw, "data:image/")
}

func encodeWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
