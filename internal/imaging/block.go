package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/image-filter-mcp/internal/filter"
)

// BlockStatsResult reports mean, median, Otsu level and (for 3×3 blocks) the
// single Sobel response of a small intensity block, rounded to two decimals.
type BlockStatsResult struct {
	Block          [][]float64   `json:"block"`
	Center         *filter.Point `json:"center,omitempty"`
	Mean           float64       `json:"mean"`
	Median         float64       `json:"median"`
	SobelX         *float64      `json:"sobel_gx,omitempty"`
	SobelY         *float64      `json:"sobel_gy,omitempty"`
	SobelMagnitude *float64      `json:"sobel_magnitude,omitempty"`
	OtsuThreshold  int           `json:"otsu_threshold"`
}

// BlockStats summarizes a caller-supplied block of intensities.
func BlockStats(block [][]float64) (*BlockStatsResult, error) {
	stats, err := filter.ComputeBlockStats(block)
	if err != nil {
		return nil, err
	}

	result := &BlockStatsResult{
		Block:         block,
		Mean:          round2(stats.Mean),
		Median:        round2(stats.Median),
		OtsuThreshold: stats.OtsuThreshold,
	}
	if stats.SobelX != nil {
		gx, gy, mag := round2(*stats.SobelX), round2(*stats.SobelY), round2(*stats.SobelMagnitude)
		result.SobelX, result.SobelY, result.SobelMagnitude = &gx, &gy, &mag
	}
	return result, nil
}

// BlockAt summarizes the 3×3 grayscale neighborhood centered at (x, y).
// Neighbors outside the image are mirrored across the edge pixel, as in
// SobelEdges, so the block's Sobel response matches the magnitude image.
func BlockAt(img image.Image, x, y int) (*BlockStatsResult, error) {
	gray := ToGray(img)
	w, h := gray.Bounds().Dx(), gray.Bounds().Dy()
	if x < 0 || x >= w || y < 0 || y >= h {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	block := make([][]float64, 3)
	for r := 0; r < 3; r++ {
		block[r] = make([]float64, 3)
		for c := 0; c < 3; c++ {
			px := filter.ReflectIndex(x+c-1, w)
			py := filter.ReflectIndex(y+r-1, h)
			block[r][c] = float64(gray.Pix[py*gray.Stride+px])
		}
	}

	result, err := BlockStats(block)
	if err != nil {
		return nil, err
	}
	result.Center = &filter.Point{X: x, Y: y}
	return result, nil
}
