package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/color-assist-mcp/internal/imaging"
	"github.com/ironsheep/color-assist-mcp/internal/watertest"
)

// Bounds is a rectangle in image pixel coordinates, (X2,Y2) exclusive.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Word is one recognized word with its location.
type Word struct {
	Text string `json:"text"`

	// Confidence is Tesseract's word confidence scaled to 0.0-1.0.
	Confidence float64 `json:"confidence"`

	Bounds Bounds `json:"bounds"`
}

// OCRResult is the text read from one image.
type OCRResult struct {
	// FullText keeps Tesseract's spacing and newlines.
	FullText string `json:"full_text"`

	// Words may be empty when word boxes are unavailable; FullText is still
	// filled in that case.
	Words []Word `json:"words"`
}

// ExtractText runs Tesseract over the image at imagePath.
//
// language is a Tesseract code such as "eng"; its traineddata must be
// installed.
func ExtractText(imagePath string, language string) (*OCRResult, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return &OCRResult{FullText: text, Words: []Word{}}, nil
	}

	words := make([]Word, 0, len(boxes))
	for _, box := range boxes {
		if strings.TrimSpace(box.Word) == "" {
			continue
		}
		words = append(words, Word{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
			Bounds: Bounds{
				X1: box.Box.Min.X,
				Y1: box.Box.Min.Y,
				X2: box.Box.Max.X,
				Y2: box.Box.Max.Y,
			},
		})
	}

	return &OCRResult{FullText: text, Words: words}, nil
}

// KitDetection is the test kind read off a kit label.
type KitDetection struct {
	Detected bool   `json:"detected"`
	Kind     string `json:"kind,omitempty"`
	Label    string `json:"label,omitempty"`

	// Word is the recognized word that named the test, when word boxes were
	// available.
	Word *Word `json:"word,omitempty"`

	Text string `json:"text"`
}

// DetectKit reads the label on a kit photo and reports which water test it
// names, e.g. "API AMMONIA TEST KIT" selects the ammonia test.
func DetectKit(imagePath string, language string) (*KitDetection, error) {
	result, err := ExtractText(imagePath, language)
	if err != nil {
		return nil, err
	}
	return KitFromText(result), nil
}

// DetectKitInRegion crops the label area out of img and runs DetectKit on
// it. Word bounds are reported in img's coordinates.
func DetectKitInRegion(img image.Image, x1, y1, x2, y2 int, language string) (*KitDetection, error) {
	cropped, err := imaging.Crop(img, x1, y1, x2, y2)
	if err != nil {
		return nil, err
	}

	// Tesseract reads from a file path.
	tmpFile, err := os.CreateTemp("", "kit-label-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, cropped); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmpFile.Close()

	det, err := DetectKit(tmpPath, language)
	if err != nil {
		return nil, err
	}
	if det.Word != nil {
		det.Word.Bounds.X1 += x1
		det.Word.Bounds.Y1 += y1
		det.Word.Bounds.X2 += x1
		det.Word.Bounds.Y2 += y1
	}
	return det, nil
}

// KitFromText picks the test kind from OCR output. Full text decides the
// kind; words are only used to locate it.
func KitFromText(result *OCRResult) *KitDetection {
	det := &KitDetection{Text: result.FullText}

	kind, ok := watertest.DetectKind(result.FullText)
	if !ok {
		return det
	}
	det.Detected = true
	det.Kind = kind.String()
	det.Label = kind.Label()

	for i := range result.Words {
		if k, ok := watertest.DetectKind(result.Words[i].Text); ok && k == kind {
			w := result.Words[i]
			det.Word = &w
			break
		}
	}
	return det
}
