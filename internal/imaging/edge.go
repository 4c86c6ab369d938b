package imaging

import (
	"image"
	"math"

	"github.com/ironsheep/image-filter-mcp/internal/filter"
)

// SobelEdgeResult contains the Sobel gradient magnitude of an image.
//
// The magnitude is scaled so that the strongest gradient in the image is 255.
// A flat image has no gradient and yields an all-black result.
type SobelEdgeResult struct {
	// Width of the output image in pixels (same as input).
	Width int `json:"width"`

	// Height of the output image in pixels (same as input).
	Height int `json:"height"`

	// MaxMagnitude is the unscaled hypot(Gx, Gy) that maps to 255.
	MaxMagnitude float64 `json:"max_magnitude"`

	// Magnitude is the normalized magnitude image.
	Magnitude EncodedImage `json:"magnitude"`
}

// SobelEdges computes the Sobel gradient magnitude of the grayscale version
// of img.
//
// # Algorithm
//
//  1. Grayscale conversion with BT.601 weights.
//
//  2. Horizontal and vertical gradients with the 3×3 Sobel pair:
//
//     Gx = [-1 0 1; -2 0 2; -1 0 1]
//     Gy = [-1 -2 -1; 0 0 0; 1 2 1]
//
//  3. magnitude = hypot(Gx, Gy), borders mirrored (-1 -> 1).
//
//  4. Scaling: magnitude / max * 255, truncated to 8 bits.
func SobelEdges(img image.Image, out Output) (*SobelEdgeResult, error) {
	gray := ToGray(img)
	res := filter.Sobel(gray)

	enc, err := EncodeImage("sobel3_mag", res.Magnitude, out)
	if err != nil {
		return nil, err
	}

	return &SobelEdgeResult{
		Width:        gray.Bounds().Dx(),
		Height:       gray.Bounds().Dy(),
		MaxMagnitude: round2(res.MaxMagnitude),
		Magnitude:    *enc,
	}, nil
}

// round2 rounds to two decimals for reporting.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
