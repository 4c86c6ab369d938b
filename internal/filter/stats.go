package filter

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidBlock is returned for empty or ragged blocks.
var ErrInvalidBlock = errors.New("invalid block")

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the middle value, averaging the two middle values for even
// lengths. It does not modify values.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// BlockStats summarizes a small intensity block.
type BlockStats struct {
	Rows   int     `json:"rows"`
	Cols   int     `json:"cols"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`

	// Sobel fields are only set for 3×3 blocks: the block is treated as one
	// window and correlated with the kernel pair, giving a single response.
	SobelX         *float64 `json:"sobel_gx,omitempty"`
	SobelY         *float64 `json:"sobel_gy,omitempty"`
	SobelMagnitude *float64 `json:"sobel_magnitude,omitempty"`

	// OtsuThreshold is computed on the values clamped and rounded to 0..255.
	OtsuThreshold int `json:"otsu_threshold"`
}

// ComputeBlockStats returns mean, median, Otsu level and, for 3×3 blocks,
// the Sobel response of block.
func ComputeBlockStats(block [][]float64) (*BlockStats, error) {
	if len(block) == 0 || len(block[0]) == 0 {
		return nil, fmt.Errorf("%w: block is empty", ErrInvalidBlock)
	}
	cols := len(block[0])
	values := make([]float64, 0, len(block)*cols)
	hist := make([]int, Bins)
	for r, row := range block {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidBlock, r, len(row), cols)
		}
		for _, v := range row {
			values = append(values, v)
			hist[clamp(int(math.Round(v)), 0, 255)]++
		}
	}

	stats := &BlockStats{
		Rows:          len(block),
		Cols:          cols,
		Mean:          Mean(values),
		Median:        Median(values),
		OtsuThreshold: OtsuLevel(hist),
	}

	if len(block) == 3 && cols == 3 {
		var win [3][3]float64
		for r := 0; r < 3; r++ {
			copy(win[r][:], block[r])
		}
		gx, gy := SobelWindow(win)
		mag := math.Hypot(gx, gy)
		stats.SobelX, stats.SobelY, stats.SobelMagnitude = &gx, &gy, &mag
	}

	return stats, nil
}
