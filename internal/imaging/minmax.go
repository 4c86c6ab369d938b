package imaging

import (
	"image"

	"github.com/ironsheep/image-filter-mcp/internal/filter"
)

// MinMaxHistograms compares the intensity distribution before and after the
// min and max filters. The min curve shifts toward dark values, the max curve
// toward bright ones.
type MinMaxHistograms struct {
	Original     []int   `json:"original"`
	Min          []int   `json:"min"`
	Max          []int   `json:"max"`
	MeanOriginal float64 `json:"mean_original"`
	MeanMin      float64 `json:"mean_min"`
	MeanMax      float64 `json:"mean_max"`
}

// MinMaxResult holds the min (erosion) and max (dilation) filtered images.
type MinMaxResult struct {
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	KernelSize int               `json:"ksize"`
	Min        EncodedImage      `json:"min"`
	Max        EncodedImage      `json:"max"`
	Histograms *MinMaxHistograms `json:"histograms,omitempty"`
}

// MinMax applies the k×k min and max filters to the grayscale version of img.
// With histograms set, 256-bin histograms of the original and both results
// are included.
func MinMax(img image.Image, k int, histograms bool, out Output) (*MinMaxResult, error) {
	if err := filter.ValidateKernelSize(k, 0); err != nil {
		return nil, err
	}

	gray := ToGray(img)
	minImg, err := filter.MinFilter(gray, k)
	if err != nil {
		return nil, err
	}
	maxImg, err := filter.MaxFilter(gray, k)
	if err != nil {
		return nil, err
	}

	minEnc, err := EncodeImage(kernelName("min", k), minImg, out)
	if err != nil {
		return nil, err
	}
	maxEnc, err := EncodeImage(kernelName("max", k), maxImg, out)
	if err != nil {
		return nil, err
	}

	result := &MinMaxResult{
		Width:      gray.Bounds().Dx(),
		Height:     gray.Bounds().Dy(),
		KernelSize: k,
		Min:        *minEnc,
		Max:        *maxEnc,
	}

	if histograms {
		hOrig := filter.Histogram(gray)
		hMin := filter.Histogram(minImg)
		hMax := filter.Histogram(maxImg)
		result.Histograms = &MinMaxHistograms{
			Original:     hOrig,
			Min:          hMin,
			Max:          hMax,
			MeanOriginal: round2(filter.HistogramMean(hOrig)),
			MeanMin:      round2(filter.HistogramMean(hMin)),
			MeanMax:      round2(filter.HistogramMean(hMax)),
		}
	}

	return result, nil
}
