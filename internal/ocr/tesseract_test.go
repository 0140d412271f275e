package ocr

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/color-assist-mcp/internal/colorspace"
)

// drawText draws text on an image using basicfont
func drawText(img *image.RGBA, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// renderLabel draws text in black on white and scales it up by an integer
// factor so Tesseract has enough pixels per glyph.
func renderLabel(text string, scale int) *image.RGBA {
	w := len(text)*7 + 40
	h := 40

	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	drawText(small, 20, 25, text, color.Black)

	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := small.At(x, y)
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.Set(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img
}

// writeLabel renders text to a temp PNG and returns its path.
func writeLabel(t *testing.T, text string, scale int) string {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), "kit-label-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, renderLabel(text, scale)); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return tmpFile.Name()
}

func skipIfNoTesseract(t *testing.T, err error) {
	t.Helper()
	if strings.Contains(err.Error(), "tesseract") ||
		strings.Contains(err.Error(), "library") ||
		strings.Contains(err.Error(), "language") {
		t.Skip("Tesseract not available")
	}
}

func TestKitFromText(t *testing.T) {
	tests := []struct {
		name      string
		result    OCRResult
		wantOK    bool
		wantKind  string
		wantLabel string
		wantWord  string
	}{
		{
			name: "ammonia bottle",
			result: OCRResult{
				FullText: "API\nAMMONIA\nTEST KIT\n",
				Words: []Word{
					{Text: "API", Confidence: 0.9, Bounds: Bounds{0, 0, 30, 10}},
					{Text: "AMMONIA", Confidence: 0.95, Bounds: Bounds{0, 12, 70, 22}},
				},
			},
			wantOK:    true,
			wantKind:  "ammonia",
			wantLabel: "Ammonia Test",
			wantWord:  "AMMONIA",
		},
		{
			name:      "shorthand without words",
			result:    OCRResult{FullText: "NO3 0-160 ppm"},
			wantOK:    true,
			wantKind:  "nitrate",
			wantLabel: "Nitrate Test",
		},
		{
			name: "ph card",
			result: OCRResult{
				FullText: "High Range pH",
				Words:    []Word{{Text: "High"}, {Text: "Range"}, {Text: "pH"}},
			},
			wantOK:    true,
			wantKind:  "ph",
			wantLabel: "pH Test",
			wantWord:  "pH",
		},
		{
			name:   "unrelated label",
			result: OCRResult{FullText: "Phosphate reagent #2", Words: []Word{{Text: "Phosphate"}}},
			wantOK: false,
		},
		{
			name:   "empty",
			result: OCRResult{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KitFromText(&tt.result)
			if got.Detected != tt.wantOK {
				t.Fatalf("Detected: got %v, want %v", got.Detected, tt.wantOK)
			}
			if got.Text != tt.result.FullText {
				t.Errorf("Text not carried through: %q", got.Text)
			}
			if !tt.wantOK {
				if got.Kind != "" || got.Word != nil {
					t.Errorf("undetected result should be empty: %+v", got)
				}
				return
			}
			if got.Kind != tt.wantKind || got.Label != tt.wantLabel {
				t.Errorf("got %s/%q, want %s/%q", got.Kind, got.Label, tt.wantKind, tt.wantLabel)
			}
			if tt.wantWord == "" {
				if got.Word != nil {
					t.Errorf("unexpected word %+v", got.Word)
				}
			} else if got.Word == nil || got.Word.Text != tt.wantWord {
				t.Errorf("Word: got %+v, want %q", got.Word, tt.wantWord)
			}
		})
	}
}

func TestKitFromText_WordIsACopy(t *testing.T) {
	result := &OCRResult{
		FullText: "Nitrite",
		Words:    []Word{{Text: "Nitrite", Bounds: Bounds{1, 2, 3, 4}}},
	}
	det := KitFromText(result)
	det.Word.Bounds.X1 = 100
	if result.Words[0].Bounds.X1 != 1 {
		t.Error("KitFromText aliases the OCR result")
	}
}

func TestExtractText_NonExistentFile(t *testing.T) {
	_, err := ExtractText("/nonexistent/path/image.png", "eng")
	if err == nil {
		t.Error("ExtractText should fail for non-existent file")
	}
}

func TestDetectKit_NonExistentFile(t *testing.T) {
	_, err := DetectKit("/nonexistent/path/kit.png", "eng")
	if err == nil {
		t.Error("DetectKit should fail for non-existent file")
	}
}

func TestDetectKitInRegion_InvalidRegion(t *testing.T) {
	img := renderLabel("AMMONIA", 1)
	_, err := DetectKitInRegion(img, 0, 0, img.Bounds().Dx()+1, 10, "eng")
	if !errors.Is(err, colorspace.ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument, got %v", err)
	}
}

// --- Tests with rendered labels; skipped without Tesseract ---

func TestDetectKit_RenderedLabels(t *testing.T) {
	tests := []struct {
		text string
		kind string
	}{
		{"AMMONIA TEST", "ammonia"},
		{"NITRITE TEST", "nitrite"},
		{"NITRATE TEST", "nitrate"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			path := writeLabel(t, tt.text, 4)

			det, err := DetectKit(path, "eng")
			if err != nil {
				skipIfNoTesseract(t, err)
				t.Fatalf("DetectKit failed: %v", err)
			}

			t.Logf("Extracted text: %q", det.Text)
			if !det.Detected {
				t.Log("Warning: label not recognized - may need larger scale or different font")
				return
			}
			if det.Kind != tt.kind {
				t.Errorf("Kind: got %s, want %s", det.Kind, tt.kind)
			}
		})
	}
}

func TestDetectKitInRegion_RenderedLabel(t *testing.T) {
	label := renderLabel("AMMONIA", 4)

	// Place the label on a larger card so the region offset is non-zero.
	card := image.NewRGBA(image.Rect(0, 0, label.Bounds().Dx()+200, label.Bounds().Dy()+100))
	draw.Draw(card, card.Bounds(), image.White, image.Point{}, draw.Src)
	offset := image.Pt(100, 50)
	draw.Draw(card, label.Bounds().Add(offset), label, image.Point{}, draw.Src)

	det, err := DetectKitInRegion(card, offset.X, offset.Y,
		offset.X+label.Bounds().Dx(), offset.Y+label.Bounds().Dy(), "eng")
	if err != nil {
		skipIfNoTesseract(t, err)
		t.Fatalf("DetectKitInRegion failed: %v", err)
	}

	if !det.Detected || det.Word == nil {
		t.Logf("Warning: label not located (text %q)", det.Text)
		return
	}
	if det.Word.Bounds.X1 < offset.X || det.Word.Bounds.Y1 < offset.Y {
		t.Errorf("word bounds not offset into card coordinates: %+v", det.Word.Bounds)
	}
}
