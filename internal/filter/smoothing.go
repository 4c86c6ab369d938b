package filter

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/effect"
)

// MeanFilter averages each pixel over its k×k neighborhood (box blur),
// rounding half up. A flat image is returned unchanged.
func MeanFilter(gray *image.Gray, k int) (*image.Gray, error) {
	if err := ValidateKernelSize(k, 0); err != nil {
		return nil, err
	}
	box := convolution.NewKernel(k, k)
	for i := range box.Matrix {
		box.Matrix[i] = 1
	}
	return grayFromRGBA(convolution.Convolve(gray, box.Normalized(), &convolution.Options{Bias: 0.5})), nil
}

// MedianFilter replaces each pixel with the median of its k×k neighborhood.
func MedianFilter(gray *image.Gray, k int) (*image.Gray, error) {
	if err := ValidateKernelSize(k, 0); err != nil {
		return nil, err
	}
	return grayFromRGBA(effect.Median(gray, radius(k))), nil
}

// AbsDiff returns |a − b| per pixel. Useful to see which pixels a filter changed.
func AbsDiff(a, b *image.Gray) (*image.Gray, error) {
	if !sameSize(a, b) {
		return nil, fmt.Errorf("absdiff: %w: %v vs %v", ErrSizeMismatch, a.Bounds().Size(), b.Bounds().Size())
	}
	w, h := a.Bounds().Dx(), a.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := int(at(a, x, y)) - int(at(b, x, y))
			if d < 0 {
				d = -d
			}
			dst.Pix[y*dst.Stride+x] = uint8(d)
		}
	}
	return dst, nil
}
