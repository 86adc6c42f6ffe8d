package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// EncodedImage is an image encoded as base64 PNG for transport in JSON.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNGBase64 encodes img as PNG and wraps it in an EncodedImage.
func EncodePNGBase64(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &EncodedImage{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes img to path, choosing the encoder from the file extension.
// Parent directories are created as needed.
func Save(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Outputs names the files produced for one input image.
type Outputs struct {
	Enhanced   string `json:"enhanced"`
	Mask       string `json:"mask"`
	Comparison string `json:"comparison,omitempty"`
}

// OutputPaths derives output file names from an input path. Files go into dir,
// or next to the input when dir is empty. Outputs are always PNG so the mask
// and the untouched pixels survive losslessly.
func OutputPaths(input, dir string) Outputs {
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return Outputs{
		Enhanced:   filepath.Join(dir, stem+"_enhanced.png"),
		Mask:       filepath.Join(dir, stem+"_mask.png"),
		Comparison: filepath.Join(dir, stem+"_compare.png"),
	}
}
