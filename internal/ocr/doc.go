// Package ocr reads the printed label on a water-test kit with Tesseract
// (via gosseract/v2) and maps it to a watertest.Kind.
//
// # Prerequisites
//
// Tesseract and the traineddata for the requested language must be
// installed:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// # Detection
//
// Kit names ("Ammonia", "pH") and the chemical shorthand printed on bottles
// ("NH3", "NO2", "NO3") are recognized. The first one in reading order
// wins. A label that names no known test is not an error; the result has
// Detected set to false and carries the raw text for the caller.
package ocr
