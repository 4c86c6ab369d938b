package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/image-filter-mcp/internal/filter"
)

// Smoothing kinds accepted by Smooth.
const (
	SmoothMean   = "mean"
	SmoothMedian = "median"
)

// SmoothResult holds a mean- or median-filtered image and the absolute
// difference to the input, which shows which pixels the filter changed.
type SmoothResult struct {
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	Kind          string       `json:"kind"`
	KernelSize    int          `json:"ksize"`
	Filtered      EncodedImage `json:"filtered"`
	Diff          EncodedImage `json:"diff"`
	ChangedPixels int          `json:"changed_pixels"`
	MeanAbsDiff   float64      `json:"mean_abs_diff"`
}

// Smooth applies a k×k mean or median filter to the grayscale version of img.
func Smooth(img image.Image, kind string, k int, out Output) (*SmoothResult, error) {
	if err := filter.ValidateKernelSize(k, 0); err != nil {
		return nil, err
	}

	var apply func(*image.Gray, int) (*image.Gray, error)
	switch kind {
	case SmoothMean:
		apply = filter.MeanFilter
	case SmoothMedian:
		apply = filter.MedianFilter
	default:
		return nil, fmt.Errorf("unknown smoothing kind: %s", kind)
	}

	gray := ToGray(img)
	filtered, err := apply(gray, k)
	if err != nil {
		return nil, err
	}
	diff, err := filter.AbsDiff(gray, filtered)
	if err != nil {
		return nil, err
	}

	filteredEnc, err := EncodeImage(kernelName(kind, k), filtered, out)
	if err != nil {
		return nil, err
	}
	diffEnc, err := EncodeImage("diff_"+kind, diff, out)
	if err != nil {
		return nil, err
	}

	changed := 0
	sum := 0
	for _, v := range diff.Pix {
		if v != 0 {
			changed++
		}
		sum += int(v)
	}
	mean := 0.0
	if len(diff.Pix) > 0 {
		mean = float64(sum) / float64(len(diff.Pix))
	}

	return &SmoothResult{
		Width:         gray.Bounds().Dx(),
		Height:        gray.Bounds().Dy(),
		Kind:          kind,
		KernelSize:    k,
		Filtered:      *filteredEnc,
		Diff:          *diffEnc,
		ChangedPixels: changed,
		MeanAbsDiff:   round2(mean),
	}, nil
}
