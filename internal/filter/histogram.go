package filter

import (
	"image"

	"github.com/anthonynsimon/bild/histogram"
)

// Bins is the number of intensity bins in every histogram.
const Bins = 256

// Histogram counts the pixels of each intensity 0..255. The counts sum to
// width×height.
func Histogram(gray *image.Gray) []int {
	h := histogram.NewRGBAHistogram(gray)
	return h.R.Bins
}

// ChannelHistograms counts each of the R, G and B channels of a color image.
func ChannelHistograms(img image.Image) (r, g, b []int) {
	h := histogram.NewRGBAHistogram(img)
	return h.R.Bins, h.G.Bins, h.B.Bins
}

// HistogramMean returns the mean intensity described by a histogram.
func HistogramMean(hist []int) float64 {
	total := 0
	sum := 0.0
	for i, n := range hist {
		total += n
		sum += float64(i) * float64(n)
	}
	if total == 0 {
		return 0
	}
	return sum / float64(total)
}

// HistogramTotal sums all bins.
func HistogramTotal(hist []int) int {
	total := 0
	for _, n := range hist {
		total += n
	}
	return total
}
