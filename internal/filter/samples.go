package filter

import (
	"image"
	"sort"
)

// Point is a pixel coordinate with (0,0) at the top-left.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Sample records how the min/max filters changed one pixel.
type Sample struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	Orig     int `json:"orig"`
	Max      int `json:"max"`
	DeltaMax int `json:"delta_max"`
	Min      int `json:"min"`
	DeltaMin int `json:"delta_min"`
	Boundary int `json:"boundary_max_minus_min"`
}

// DefaultSamples returns up to nine representative points: the four corners,
// the midpoints of each edge and the center, deduplicated for tiny images.
func DefaultSamples(w, h int) []Point {
	cand := []Point{
		{0, 0}, {w / 2, 0}, {w - 1, 0},
		{0, h / 2}, {w / 2, h / 2}, {w - 1, h / 2},
		{0, h - 1}, {w / 2, h - 1}, {w - 1, h - 1},
	}
	seen := make(map[Point]bool, len(cand))
	out := make([]Point, 0, len(cand))
	for _, p := range cand {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// ClampSamples drops points outside a w×h image, keeping the order of the rest.
func ClampSamples(points []Point, w, h int) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h {
			out = append(out, p)
		}
	}
	return out
}

// SampleDeltas reads orig, max, min and boundary at each point. Points must
// already be in bounds (see ClampSamples).
func SampleDeltas(orig, max, min, boundary *image.Gray, points []Point) []Sample {
	rows := make([]Sample, 0, len(points))
	for _, p := range points {
		o := int(at(orig, p.X, p.Y))
		mx := int(at(max, p.X, p.Y))
		mn := int(at(min, p.X, p.Y))
		rows = append(rows, Sample{
			X:        p.X,
			Y:        p.Y,
			Orig:     o,
			Max:      mx,
			DeltaMax: mx - o,
			Min:      mn,
			DeltaMin: mn - o,
			Boundary: int(at(boundary, p.X, p.Y)),
		})
	}
	return rows
}

// PixelValue is a pixel coordinate with its intensity.
type PixelValue struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Value int `json:"value"`
}

// StrongPixels lists pixels of a boundary image whose value is at least
// minValue, strongest first. Equal values keep row-major order. topN > 0 keeps
// only the first topN.
func StrongPixels(boundary *image.Gray, topN, minValue int) []PixelValue {
	w, h := boundary.Bounds().Dx(), boundary.Bounds().Dy()
	var out []PixelValue
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := int(at(boundary, x, y))
			if v >= minValue {
				out = append(out, PixelValue{X: x, Y: y, Value: v})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
