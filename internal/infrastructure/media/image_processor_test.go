package media

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
)

func newTestLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
		DefaultLevel:    slog.LevelError + 1,
		ChannelLevels:   map[logging.Channel]slog.Level{},
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return logger
}

func pngDataURL(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestPassThroughNonInlineReferences(t *testing.T) {
	p := NewImageProcessor(1024*1024, 1920, newTestLogger(t))

	for _, raw := range []string{"", "/static/gallery/main-building.jpg", "https://cdn.example.com/x.jpg"} {
		got, err := p.NormalizeDataURL(raw)
		if err != nil {
			t.Errorf("NormalizeDataURL(%q) = %v", raw, err)
		}
		if got != raw {
			t.Errorf("NormalizeDataURL(%q) rewrote to %q", raw, got)
		}
	}
}

func TestRejectsOversizedPayload(t *testing.T) {
	p := NewImageProcessor(64, 1920, newTestLogger(t))

	if _, err := p.NormalizeDataURL(pngDataURL(t, 32, 32)); err == nil {
		t.Fatal("oversized payload accepted")
	}
}

func TestRejectsGarbageBase64(t *testing.T) {
	p := NewImageProcessor(1024*1024, 1920, newTestLogger(t))

	if _, err := p.NormalizeDataURL("data:image/png;base64,!!!not-base64!!!"); err == nil {
		t.Fatal("garbage base64 accepted")
	}
}

func TestDownscalesOversizedImage(t *testing.T) {
	p := NewImageProcessor(1024*1024, 40, newTestLogger(t))

	got, err := p.NormalizeDataURL(pngDataURL(t, 100, 50))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "data:image/webp;base64,") {
		t.Fatalf("downscaled image not re-encoded as webp: %.40s", got)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/webp;base64,"))
	if err != nil {
		t.Fatal(err)
	}
	img, err := webp.Decode(bytes.NewReader(decoded))
	if err != nil {
		t.Fatal(err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > 40 || bounds.Dy() > 40 {
		t.Errorf("image not bounded: %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestSVGPassesThrough(t *testing.T) {
	p := NewImageProcessor(1024*1024, 1920, newTestLogger(t))

	svg := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))
	got, err := p.NormalizeDataURL(svg)
	if err != nil {
		t.Fatal(err)
	}
	if got != svg {
		t.Error("svg was rewritten")
	}
}
