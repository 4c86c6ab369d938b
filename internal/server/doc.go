// Package server implements the MCP (Model Context Protocol) server for the
// image filter tools.
//
// The server speaks JSON-RPC 2.0 over stdio:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_grayscale: BT.601 grayscale conversion
//
// Morphology:
//   - image_min_max_filter: k×k min (erosion) and max (dilation)
//   - image_boundary: max minus min, with per-pixel delta samples
//   - image_boundary_strong_pixels: strongest boundary pixels
//
// Smoothing:
//   - image_mean_filter: k×k box filter plus difference map
//   - image_median_filter: k×k median filter plus difference map
//
// Edges, thresholds and statistics:
//   - image_sobel: normalized Sobel gradient magnitude
//   - image_threshold: fixed or Otsu binarization
//   - image_histogram: gray, RGB and binary histograms
//   - image_block_stats: mean, median, Sobel and Otsu of a small block
//
// Tools that take a kernel size use the configured default when ksize is
// omitted and reject even, non-positive or oversized kernels before loading
// the image. Tools that produce images accept output_dir and output_prefix
// to also save them as PNG files.
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process, so
// several filters can run on one image without re-reading it.
//
// # Error Handling
//
// Errors are returned as JSON-RPC error responses:
//   - -32602: malformed arguments or an invalid kernel size
//   - -32601: unknown method
//   - -32000: any other tool failure, with the Go error string as data
//
// # Usage
//
//	cfg, _ := config.Load()
//	srv := server.New(cfg, logger.NewConsoleLogger(zerolog.InfoLevel))
//	if err := srv.Run(); err != nil {
//	    os.Exit(1)
//	}
package server
