package filter

import (
	"errors"
	"math"
	"testing"
)

func TestMeanMedian(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		mean, med float64
	}{
		{"course block", []float64{10, 20, 30, 20, 40, 60, 30, 60, 90}, 40, 30},
		{"even length", []float64{4, 1, 3, 2}, 2.5, 2.5},
		{"single", []float64{7}, 7, 7},
		{"empty", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.values); got != tt.mean {
				t.Errorf("Mean: got %v, want %v", got, tt.mean)
			}
			if got := Median(tt.values); got != tt.med {
				t.Errorf("Median: got %v, want %v", got, tt.med)
			}
		})
	}
}

func TestMedian_DoesNotModifyInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input modified: %v", values)
	}
}

func TestComputeBlockStats_CourseBlock(t *testing.T) {
	block := [][]float64{
		{10, 20, 30},
		{20, 40, 60},
		{30, 60, 90},
	}

	stats, err := ComputeBlockStats(block)
	if err != nil {
		t.Fatalf("ComputeBlockStats: %v", err)
	}
	if stats.Mean != 40 {
		t.Errorf("Mean: got %v, want 40", stats.Mean)
	}
	if stats.Median != 30 {
		t.Errorf("Median: got %v, want 30", stats.Median)
	}
	if stats.SobelX == nil || *stats.SobelX != 160 {
		t.Errorf("SobelX: got %v, want 160", stats.SobelX)
	}
	if stats.SobelY == nil || *stats.SobelY != 160 {
		t.Errorf("SobelY: got %v, want 160", stats.SobelY)
	}
	if stats.SobelMagnitude == nil || math.Abs(*stats.SobelMagnitude-226.27) > 0.005 {
		t.Errorf("SobelMagnitude: got %v, want 226.27", stats.SobelMagnitude)
	}
	if stats.OtsuThreshold != 40 {
		t.Errorf("OtsuThreshold: got %d, want 40", stats.OtsuThreshold)
	}
}

func TestComputeBlockStats_NonSquare(t *testing.T) {
	stats, err := ComputeBlockStats([][]float64{{1, 2, 3, 4}})
	if err != nil {
		t.Fatalf("ComputeBlockStats: %v", err)
	}
	if stats.SobelX != nil || stats.SobelMagnitude != nil {
		t.Error("Sobel fields should be unset for non-3x3 blocks")
	}
	if stats.Mean != 2.5 || stats.Median != 2.5 {
		t.Errorf("mean/median: got %v/%v, want 2.5/2.5", stats.Mean, stats.Median)
	}
}

func TestComputeBlockStats_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		block [][]float64
	}{
		{"nil", nil},
		{"empty row", [][]float64{{}}},
		{"ragged", [][]float64{{1, 2}, {3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeBlockStats(tt.block)
			if !errors.Is(err, ErrInvalidBlock) {
				t.Errorf("got %v, want ErrInvalidBlock", err)
			}
		})
	}
}
