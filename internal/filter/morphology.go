package filter

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// MaxFilter replaces each pixel with the maximum over its k×k neighborhood
// (grayscale dilation).
func MaxFilter(gray *image.Gray, k int) (*image.Gray, error) {
	if err := ValidateKernelSize(k, 0); err != nil {
		return nil, err
	}
	return grayFromRGBA(effect.Dilate(gray, radius(k))), nil
}

// MinFilter replaces each pixel with the minimum over its k×k neighborhood
// (grayscale erosion).
func MinFilter(gray *image.Gray, k int) (*image.Gray, error) {
	if err := ValidateKernelSize(k, 0); err != nil {
		return nil, err
	}
	return grayFromRGBA(effect.Erode(gray, radius(k))), nil
}

// Boundary returns max − min per pixel, the morphological gradient. Pixels
// where min exceeds max (never the case for filter outputs of the same image)
// are clamped to 0.
func Boundary(max, min *image.Gray) (*image.Gray, error) {
	if !sameSize(max, min) {
		return nil, fmt.Errorf("boundary: %w: %v vs %v", ErrSizeMismatch, max.Bounds().Size(), min.Bounds().Size())
	}
	w, h := max.Bounds().Dx(), max.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := int(at(max, x, y)) - int(at(min, x, y))
			dst.Pix[y*dst.Stride+x] = uint8(clamp(d, 0, 255))
		}
	}
	return dst, nil
}
