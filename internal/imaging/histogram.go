package imaging

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-filter-mcp/internal/filter"
)

// ChannelMeans holds the mean intensity of each histogram.
type ChannelMeans struct {
	Gray  float64 `json:"gray"`
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// HistogramResult contains 256-bin histograms of an image in grayscale,
// per RGB channel, and after binarization.
//
// Every histogram sums to TotalPixels. The binary histogram only has counts
// in bins 0 and 255.
type HistogramResult struct {
	Width       int `json:"width"`
	Height      int `json:"height"`
	TotalPixels int `json:"total_pixels"`

	Gray   []int `json:"gray"`
	Red    []int `json:"red"`
	Green  []int `json:"green"`
	Blue   []int `json:"blue"`
	Binary []int `json:"binary"`

	ThresholdMethod string `json:"threshold_method"`
	Threshold       int    `json:"threshold"`
	BlackPixels     int    `json:"black_pixels"`
	WhitePixels     int    `json:"white_pixels"`

	Means ChannelMeans `json:"means"`

	// MeanColor is the average RGB color as "#rrggbb".
	MeanColor string `json:"mean_color"`

	// MeanLightness is the CIE L* (0-100) of MeanColor.
	MeanLightness float64 `json:"mean_lightness"`
}

// Histograms computes grayscale, RGB and binary histograms of img. The binary
// image uses *thresh, or Otsu when thresh is nil.
func Histograms(img image.Image, thresh *int) (*HistogramResult, error) {
	rgb := ToNRGBA(img)
	gray := ToGray(rgb)
	bin, level, method := binarize(gray, thresh)

	hGray := filter.Histogram(gray)
	hR, hG, hB := filter.ChannelHistograms(rgb)
	hBin := filter.Histogram(bin)

	means := ChannelMeans{
		Gray:  filter.HistogramMean(hGray),
		Red:   filter.HistogramMean(hR),
		Green: filter.HistogramMean(hG),
		Blue:  filter.HistogramMean(hB),
	}
	mean := colorful.Color{R: means.Red / 255, G: means.Green / 255, B: means.Blue / 255}
	l, _, _ := mean.Lab()

	return &HistogramResult{
		Width:           gray.Bounds().Dx(),
		Height:          gray.Bounds().Dy(),
		TotalPixels:     filter.HistogramTotal(hGray),
		Gray:            hGray,
		Red:             hR,
		Green:           hG,
		Blue:            hB,
		Binary:          hBin,
		ThresholdMethod: method,
		Threshold:       level,
		BlackPixels:     hBin[0],
		WhitePixels:     hBin[255],
		Means: ChannelMeans{
			Gray:  round2(means.Gray),
			Red:   round2(means.Red),
			Green: round2(means.Green),
			Blue:  round2(means.Blue),
		},
		MeanColor:     mean.Clamped().Hex(),
		MeanLightness: round2(l * 100),
	}, nil
}
