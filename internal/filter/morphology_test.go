package filter

import (
	"errors"
	"testing"
)

func TestValidateKernelSize(t *testing.T) {
	tests := []struct {
		k, max  int
		wantErr bool
	}{
		{1, 0, false},
		{3, 0, false},
		{5, 31, false},
		{31, 31, false},
		{0, 0, true},
		{-3, 0, true},
		{2, 0, true},
		{4, 31, true},
		{33, 31, true},
	}

	for _, tt := range tests {
		err := ValidateKernelSize(tt.k, tt.max)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateKernelSize(%d, %d): err = %v, wantErr %v", tt.k, tt.max, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidKernelSize) {
			t.Errorf("ValidateKernelSize(%d, %d): error %v does not wrap ErrInvalidKernelSize", tt.k, tt.max, err)
		}
	}
}

func TestMinMaxFilter_UniformUnchanged(t *testing.T) {
	src := uniformGray(20, 15, 128)

	for _, k := range []int{1, 3, 5, 7} {
		mx, err := MaxFilter(src, k)
		if err != nil {
			t.Fatalf("MaxFilter(k=%d): %v", k, err)
		}
		mn, err := MinFilter(src, k)
		if err != nil {
			t.Fatalf("MinFilter(k=%d): %v", k, err)
		}
		assertSize(t, mx, 20, 15)
		assertSize(t, mn, 20, 15)

		for i := range src.Pix {
			if mx.Pix[i] != 128 || mn.Pix[i] != 128 {
				t.Fatalf("k=%d: uniform image changed at index %d: max=%d min=%d", k, i, mx.Pix[i], mn.Pix[i])
			}
		}
	}
}

func TestMaxFilter_SpreadsBrightPixel(t *testing.T) {
	src := uniformGray(9, 9, 10)
	src.SetGray(4, 4, grayValue(200))

	mx, err := MaxFilter(src, 3)
	if err != nil {
		t.Fatalf("MaxFilter: %v", err)
	}

	for _, p := range []Point{{4, 4}, {3, 4}, {5, 4}, {4, 3}, {4, 5}} {
		if got := mx.GrayAt(p.X, p.Y).Y; got != 200 {
			t.Errorf("max at %v: got %d, want 200", p, got)
		}
	}
	if got := mx.GrayAt(0, 0).Y; got != 10 {
		t.Errorf("max far from bright pixel: got %d, want 10", got)
	}
}

func TestMinFilter_RemovesBrightPixel(t *testing.T) {
	src := uniformGray(9, 9, 10)
	src.SetGray(4, 4, grayValue(200))

	mn, err := MinFilter(src, 3)
	if err != nil {
		t.Fatalf("MinFilter: %v", err)
	}
	for i, v := range mn.Pix {
		if v != 10 {
			t.Fatalf("min filter left %d at index %d, want 10", v, i)
		}
	}
}

func TestMinMaxFilter_InvalidKernel(t *testing.T) {
	src := uniformGray(4, 4, 0)
	if _, err := MaxFilter(src, 2); !errors.Is(err, ErrInvalidKernelSize) {
		t.Errorf("MaxFilter(k=2): got %v, want ErrInvalidKernelSize", err)
	}
	if _, err := MinFilter(src, 0); !errors.Is(err, ErrInvalidKernelSize) {
		t.Errorf("MinFilter(k=0): got %v, want ErrInvalidKernelSize", err)
	}
}

func TestBoundary(t *testing.T) {
	t.Run("uniform is zero", func(t *testing.T) {
		src := uniformGray(12, 12, 77)
		mx, _ := MaxFilter(src, 3)
		mn, _ := MinFilter(src, 3)
		b, err := Boundary(mx, mn)
		if err != nil {
			t.Fatalf("Boundary: %v", err)
		}
		for i, v := range b.Pix {
			if v != 0 {
				t.Fatalf("boundary at index %d: got %d, want 0", i, v)
			}
		}
	})

	t.Run("step edge", func(t *testing.T) {
		src := stepGray(10, 4, 5, 0, 255)
		mx, _ := MaxFilter(src, 3)
		mn, _ := MinFilter(src, 3)
		b, err := Boundary(mx, mn)
		if err != nil {
			t.Fatalf("Boundary: %v", err)
		}
		if got := b.GrayAt(4, 2).Y; got != 255 {
			t.Errorf("boundary left of edge: got %d, want 255", got)
		}
		if got := b.GrayAt(5, 2).Y; got != 255 {
			t.Errorf("boundary right of edge: got %d, want 255", got)
		}
		if got := b.GrayAt(0, 2).Y; got != 0 {
			t.Errorf("boundary far left: got %d, want 0", got)
		}
		if got := b.GrayAt(9, 2).Y; got != 0 {
			t.Errorf("boundary far right: got %d, want 0", got)
		}
	})

	t.Run("clamps negative", func(t *testing.T) {
		b, err := Boundary(uniformGray(2, 2, 10), uniformGray(2, 2, 50))
		if err != nil {
			t.Fatalf("Boundary: %v", err)
		}
		if b.Pix[0] != 0 {
			t.Errorf("got %d, want 0", b.Pix[0])
		}
	})

	t.Run("size mismatch", func(t *testing.T) {
		_, err := Boundary(uniformGray(2, 2, 0), uniformGray(3, 2, 0))
		if !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("got %v, want ErrSizeMismatch", err)
		}
	})
}
