package filter

import "image"

// Threshold maps pixels strictly above t to 255 and the rest to 0. t is
// clamped to 0..255.
func Threshold(gray *image.Gray, t int) *image.Gray {
	t = clamp(t, 0, 255)
	w, h := gray.Bounds().Dx(), gray.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if int(at(gray, x, y)) > t {
				dst.Pix[y*dst.Stride+x] = 255
			}
		}
	}
	return dst
}

// OtsuLevel picks the threshold that maximizes the between-class variance of
// a 256-bin histogram. Class 0 holds the values <= level. The first maximum
// wins. An empty or single-valued histogram yields 0.
func OtsuLevel(hist []int) int {
	total := 0
	sum := 0.0
	for i, n := range hist {
		total += n
		sum += float64(i) * float64(n)
	}
	if total == 0 {
		return 0
	}

	best := 0
	bestVar := -1.0
	weightB := 0
	sumB := 0.0
	for t, n := range hist {
		weightB += n
		if weightB == 0 {
			continue
		}
		weightF := total - weightB
		if weightF == 0 {
			break
		}
		sumB += float64(t) * float64(n)
		meanB := sumB / float64(weightB)
		meanF := (sum - sumB) / float64(weightF)
		between := float64(weightB) * float64(weightF) * (meanB - meanF) * (meanB - meanF)
		if between > bestVar {
			bestVar = between
			best = t
		}
	}
	return best
}

// Otsu binarizes gray with the level chosen by OtsuLevel and returns both.
func Otsu(gray *image.Gray) (*image.Gray, int) {
	level := OtsuLevel(Histogram(gray))
	return Threshold(gray, level), level
}
