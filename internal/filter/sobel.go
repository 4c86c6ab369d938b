package filter

import (
	"image"
	"math"
)

var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// SobelResult holds the normalized gradient magnitude and the raw maximum it
// was scaled by.
type SobelResult struct {
	Magnitude    *image.Gray
	MaxMagnitude float64
}

// Sobel computes hypot(Gx, Gy) with the 3×3 Sobel pair and scales it so the
// strongest gradient maps to 255 (truncating). A flat image yields all zeros.
// Borders are mirrored without repeating the edge pixel, so a row or column
// at the border only responds to changes across it.
func Sobel(gray *image.Gray) *SobelResult {
	w, h := gray.Bounds().Dx(), gray.Bounds().Dy()
	mag := make([]float64, w*h)
	maxMag := 0.0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var win [3][3]float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					px := ReflectIndex(x+kx, w)
					py := ReflectIndex(y+ky, h)
					win[ky+1][kx+1] = float64(at(gray, px, py))
				}
			}
			gx, gy := SobelWindow(win)
			m := math.Hypot(gx, gy)
			mag[y*w+x] = m
			if m > maxMag {
				maxMag = m
			}
		}
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	if maxMag > 0 {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Pix[y*dst.Stride+x] = uint8(mag[y*w+x] / maxMag * 255)
			}
		}
	}

	return &SobelResult{Magnitude: dst, MaxMagnitude: maxMag}
}

// SobelWindow correlates a single 3×3 window with the Sobel pair.
func SobelWindow(win [3][3]float64) (gx, gy float64) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			gx += win[r][c] * sobelX[r][c]
			gy += win[r][c] * sobelY[r][c]
		}
	}
	return gx, gy
}
