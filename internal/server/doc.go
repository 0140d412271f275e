// Package server implements the MCP (Model Context Protocol) server for the
// color assistant tools.
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line. Supported
// MCP methods are initialize, tools/list, tools/call and ping.
//
// # Available Tools
//
// Image Information:
//   - image_load: Load a photo and get metadata
//
// Colorblindness Simulation:
//   - colorblind_simulate: Re-render a photo (or region) under a deficiency
//   - colorblind_simulate_color: Simulate a single hex color
//
// Color Naming:
//   - color_classify: Name a hex color or the color around a tap
//
// Water Testing:
//   - water_test_interpret: Classify a strip color and judge it for a test
//   - water_test_detect_kit: Read a kit label with OCR to pick the test
//   - water_test_kinds: List tests and their rule tables
//
// Tools that take a color accept either "color" (hex) or "path" with "x"
// and "y". Taps average a circle of "radius" pixels, defaulting to the
// configured sample radius.
//
// # Error Handling
//
// Argument problems (unknown mode or test, bad hex, taps or regions outside
// the image) return -32602. Other failures, such as unreadable files or OCR
// errors, return -32000 "Tool execution failed". The data field carries the
// Go error string.
//
// # Logging
//
// The server logs through zerolog with a "component" field, and adds "tool"
// on tools/call. Logs must go to stderr; stdout carries the protocol.
package server
