package imaging

import (
	"image"

	"github.com/ironsheep/image-filter-mcp/internal/filter"
)

// BoundaryResult holds the max, min and boundary (max − min) images together
// with per-pixel samples of how each filter moved the intensity.
type BoundaryResult struct {
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	KernelSize int             `json:"ksize"`
	Max        EncodedImage    `json:"max"`
	Min        EncodedImage    `json:"min"`
	Boundary   EncodedImage    `json:"boundary"`
	Samples    []filter.Sample `json:"samples"`

	// DefaultSamples is true when no points were requested and the corner,
	// edge-midpoint and center set was used instead.
	DefaultSamples bool `json:"default_samples"`

	// DroppedSamples counts requested points that fell outside the image.
	DroppedSamples int `json:"dropped_samples"`
}

// boundaryImages computes the grayscale input, max, min and boundary images.
func boundaryImages(img image.Image, k int) (gray, maxImg, minImg, bound *image.Gray, err error) {
	if err = filter.ValidateKernelSize(k, 0); err != nil {
		return nil, nil, nil, nil, err
	}
	gray = ToGray(img)
	if maxImg, err = filter.MaxFilter(gray, k); err != nil {
		return nil, nil, nil, nil, err
	}
	if minImg, err = filter.MinFilter(gray, k); err != nil {
		return nil, nil, nil, nil, err
	}
	if bound, err = filter.Boundary(maxImg, minImg); err != nil {
		return nil, nil, nil, nil, err
	}
	return gray, maxImg, minImg, bound, nil
}

// Boundary computes the morphological boundary of img with a k×k kernel and
// samples it at points. An empty points slice selects the default samples;
// points outside the image are dropped.
func Boundary(img image.Image, k int, points []filter.Point, out Output) (*BoundaryResult, error) {
	gray, maxImg, minImg, bound, err := boundaryImages(img, k)
	if err != nil {
		return nil, err
	}
	w, h := gray.Bounds().Dx(), gray.Bounds().Dy()

	maxEnc, err := EncodeImage(kernelName("max", k), maxImg, out)
	if err != nil {
		return nil, err
	}
	minEnc, err := EncodeImage(kernelName("min", k), minImg, out)
	if err != nil {
		return nil, err
	}
	boundEnc, err := EncodeImage("boundary_max_minus_min", bound, out)
	if err != nil {
		return nil, err
	}

	usedDefault := len(points) == 0
	if usedDefault {
		points = filter.DefaultSamples(w, h)
	}
	valid := filter.ClampSamples(points, w, h)

	return &BoundaryResult{
		Width:          w,
		Height:         h,
		KernelSize:     k,
		Max:            *maxEnc,
		Min:            *minEnc,
		Boundary:       *boundEnc,
		Samples:        filter.SampleDeltas(gray, maxImg, minImg, bound, valid),
		DefaultSamples: usedDefault,
		DroppedSamples: len(points) - len(valid),
	}, nil
}

// StrongBoundaryResult lists the pixels with the strongest boundary response.
type StrongBoundaryResult struct {
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	KernelSize  int             `json:"ksize"`
	TopN        int             `json:"top_n"`
	MinBoundary int             `json:"min_boundary"`
	Count       int             `json:"count"`
	Pixels      []filter.Sample `json:"pixels"`
}

// StrongBoundary ranks every pixel by boundary value, keeps those at or above
// minBoundary and returns the first topN (all when topN <= 0), strongest first.
func StrongBoundary(img image.Image, k, topN, minBoundary int) (*StrongBoundaryResult, error) {
	gray, maxImg, minImg, bound, err := boundaryImages(img, k)
	if err != nil {
		return nil, err
	}

	strong := filter.StrongPixels(bound, topN, minBoundary)
	points := make([]filter.Point, len(strong))
	for i, p := range strong {
		points[i] = filter.Point{X: p.X, Y: p.Y}
	}

	return &StrongBoundaryResult{
		Width:       gray.Bounds().Dx(),
		Height:      gray.Bounds().Dy(),
		KernelSize:  k,
		TopN:        topN,
		MinBoundary: minBoundary,
		Count:       len(points),
		Pixels:      filter.SampleDeltas(gray, maxImg, minImg, bound, points),
	}, nil
}
