package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Output controls whether result images are also written to disk.
//
// When Dir is empty nothing is written. Otherwise each image is saved as
// Dir/<Prefix><name>.png, creating Dir if needed.
type Output struct {
	Dir    string
	Prefix string
}

// EncodedImage is one result image as a base64 PNG.
type EncodedImage struct {
	// Name identifies the image within a result, e.g. "max3x3" or "boundary".
	Name string `json:"name"`

	Width  int `json:"width"`
	Height int `json:"height"`

	// ImageBase64 is the PNG-encoded image.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`

	// SavedPath is set when the image was also written to disk.
	SavedPath string `json:"saved_path,omitempty"`
}

// EncodeImage PNG-encodes img once and, if out.Dir is set, writes the same
// bytes to disk.
func EncodeImage(name string, img image.Image, out Output) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode %s image: %w", name, err)
	}

	result := &EncodedImage{
		Name:        name,
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}

	if out.Dir != "" {
		if err := os.MkdirAll(out.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
		path := filepath.Join(out.Dir, out.Prefix+name+".png")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("failed to save %s image: %w", name, err)
		}
		result.SavedPath = path
	}

	return result, nil
}

// kernelName formats a filter name with its kernel size, e.g. "max3x3".
func kernelName(base string, k int) string {
	return fmt.Sprintf("%s%dx%d", base, k, k)
}
