package imaging

import (
	"image"

	"github.com/ironsheep/image-filter-mcp/internal/filter"
)

// Threshold methods reported in results.
const (
	MethodOtsu  = "otsu"
	MethodFixed = "fixed"
)

// ThresholdResult is a binary (0/255) version of an image.
type ThresholdResult struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Method      string       `json:"method"`
	Threshold   int          `json:"threshold"`
	Binary      EncodedImage `json:"binary"`
	BlackPixels int          `json:"black_pixels"`
	WhitePixels int          `json:"white_pixels"`
	TotalPixels int          `json:"total_pixels"`
}

// binarize thresholds gray at *thresh (clamped to 0..255), or at the Otsu
// level when thresh is nil.
func binarize(gray *image.Gray, thresh *int) (bin *image.Gray, level int, method string) {
	if thresh == nil {
		bin, level = filter.Otsu(gray)
		return bin, level, MethodOtsu
	}
	level = *thresh
	if level < 0 {
		level = 0
	}
	if level > 255 {
		level = 255
	}
	return filter.Threshold(gray, level), level, MethodFixed
}

// Binarize converts img to grayscale and thresholds it. Pixels strictly above
// the threshold become white.
func Binarize(img image.Image, thresh *int, out Output) (*ThresholdResult, error) {
	gray := ToGray(img)
	bin, level, method := binarize(gray, thresh)

	enc, err := EncodeImage("binary", bin, out)
	if err != nil {
		return nil, err
	}

	hist := filter.Histogram(bin)
	return &ThresholdResult{
		Width:       gray.Bounds().Dx(),
		Height:      gray.Bounds().Dy(),
		Method:      method,
		Threshold:   level,
		Binary:      *enc,
		BlackPixels: hist[0],
		WhitePixels: hist[255],
		TotalPixels: filter.HistogramTotal(hist),
	}, nil
}
