package filter

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidKernelSize is returned for kernel sizes that are even, non-positive
// or above the configured maximum.
var ErrInvalidKernelSize = errors.New("invalid kernel size")

// ErrSizeMismatch is returned when two images that must align differ in size.
var ErrSizeMismatch = errors.New("image sizes differ")

// ValidateKernelSize checks that k is odd and at least 1. A positive max also
// bounds k from above.
func ValidateKernelSize(k, max int) error {
	if k < 1 || k%2 == 0 {
		return fmt.Errorf("%w: ksize must be odd and > 0 (e.g. 3, 5, 7), got %d", ErrInvalidKernelSize, k)
	}
	if max > 0 && k > max {
		return fmt.Errorf("%w: ksize %d exceeds maximum %d", ErrInvalidKernelSize, k, max)
	}
	return nil
}

// radius converts an odd kernel size to the radius bild expects.
func radius(k int) float64 {
	return float64(k / 2)
}

// grayFromRGBA copies the red channel of a bild result into a zero-origin
// gray image. bild outputs of gray inputs carry R == G == B.
func grayFromRGBA(src *image.RGBA) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Pix[y*dst.Stride+x] = src.Pix[src.PixOffset(b.Min.X+x, b.Min.Y+y)]
		}
	}
	return dst
}

// sameSize reports whether a and b have equal dimensions.
func sameSize(a, b *image.Gray) bool {
	return a.Bounds().Dx() == b.Bounds().Dx() && a.Bounds().Dy() == b.Bounds().Dy()
}

// at reads the pixel at (x, y) relative to the image origin.
func at(img *image.Gray, x, y int) uint8 {
	b := img.Bounds()
	return img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)]
}

// ReflectIndex maps an out-of-range coordinate into [0, n) by mirroring
// around the edge pixel without repeating it (-1 -> 1, n -> n-2). A
// single-pixel axis always maps to 0.
func ReflectIndex(i, n int) int {
	if n <= 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*(n-1) - i
		}
	}
	return i
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
