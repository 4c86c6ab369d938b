// Package filter holds the pixel-level operations behind every tool: min/max
// (erosion/dilation), mean and median smoothing, Sobel gradient magnitude,
// thresholding, histograms and small statistics.
//
// All functions take and return *image.Gray with the origin at (0,0). Callers
// convert color images first (see the imaging package). Outputs always have the
// same dimensions as their input.
//
// Neighborhood filters are delegated to bild, whose borders replicate the edge
// pixel. For min and max this gives the same result as a mirrored border,
// since the mirrored pixels are already inside the window. Sobel mirrors the
// border without repeating the edge pixel (see ReflectIndex).
package filter
