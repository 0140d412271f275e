// Package imaging loads test-strip photos and moves pixels between the Go
// image types and the colorspace package.
//
// It owns the file-facing side of the server: decoding (PNG, JPEG, GIF, BMP,
// TIFF, WebP), caching decoded photos, averaging the color around a tap, and
// encoding results back to base64 PNG. The color math itself lives in
// colorspace, simulation and classify.
//
// # Coordinate System
//
// Coordinates are 0-based with (0,0) at the top-left corner. For regions,
// (x1,y1) is inclusive and (x2,y2) is exclusive.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The other functions are stateless.
package imaging
