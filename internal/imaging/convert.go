package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// ToGray converts img to an 8-bit grayscale image with its origin at (0,0).
//
// Color pixels use ITU-R BT.601 luminance (0.299 R + 0.587 G + 0.114 B) on the
// non-premultiplied channels, so alpha does not darken the result. Gray inputs
// are copied unchanged.
func ToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	if g, ok := img.(*image.Gray); ok {
		dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		for y := 0; y < bounds.Dy(); y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+bounds.Dx()], g.Pix[g.PixOffset(bounds.Min.X, bounds.Min.Y+y):])
		}
		return dst
	}

	lum := imaging.Grayscale(img)
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			dst.Pix[y*dst.Stride+x] = lum.Pix[y*lum.Stride+x*4]
		}
	}
	return dst
}

// ToNRGBA returns a zero-origin, opaque color copy of img. Alpha is dropped
// rather than blended, so R, G and B keep the values ToGray sees.
func ToNRGBA(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// GrayscaleResult is the grayscale version of an image.
type GrayscaleResult struct {
	Width          int          `json:"width"`
	Height         int          `json:"height"`
	SourceChannels int          `json:"source_channels"`
	Gray           EncodedImage `json:"gray"`
}

// Grayscale converts img to grayscale and encodes it.
func Grayscale(img image.Image, out Output) (*GrayscaleResult, error) {
	gray := ToGray(img)
	enc, err := EncodeImage("gray", gray, out)
	if err != nil {
		return nil, err
	}

	channels := 3
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		channels = 1
	}

	return &GrayscaleResult{
		Width:          gray.Bounds().Dx(),
		Height:         gray.Bounds().Dy(),
		SourceChannels: channels,
		Gray:           *enc,
	}, nil
}
