// Package imaging loads images and turns the primitives in package filter
// into JSON-ready results for the MCP server.
//
// Every operation accepts any image.Image, converts it to 8-bit BT.601
// grayscale where the filter needs one intensity per pixel, and returns a
// result struct whose images are base64-encoded PNGs. Derived images always
// keep the dimensions of the input.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Output Files
//
// When an Output with a non-empty Dir is passed, each encoded image is also
// written to <Dir>/<Prefix><name>.png. Names follow the filter, for example
// "max3x3", "min3x3", "boundary_max_minus_min", "median5x5", "diff_median",
// "sobel3_mag" and "binary".
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual operations are
// stateless and never modify their input image.
//
// # Error Handling
//
// Functions return errors for:
//   - Kernel sizes that are even or below 1 (filter.ErrInvalidKernelSize)
//   - Coordinates outside image bounds
//   - Malformed blocks (filter.ErrInvalidBlock)
//   - File I/O errors during loading or saving
//
// For repeated operations on the same image, use ImageCache to avoid
// redundant disk reads. Use Evict() or Clear() to bound memory in
// long-running processes.
package imaging
