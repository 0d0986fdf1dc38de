// Package server implements the MCP (Model Context Protocol) server for
// square-expansion Voronoi textures.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
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
// Every tool selects its diagram with the same arguments: regions
// (required), width, height, seed, blocking and step.
//
// Generation:
//   - voronoi_generate: Simulate and return the texture as base64
//   - voronoi_save: Simulate and write the texture to a file
//
// Inspection:
//   - voronoi_regions: List region rectangles and colors
//   - voronoi_sample_color: Color and owning region at a pixel
//   - voronoi_coverage: Background share, visible pixels per region, palette
//
// Rendering:
//   - voronoi_outline: Region rectangles stroked over the texture
//   - voronoi_edges: Binary boundary map
//   - voronoi_crop: Rectangular or named crop
//   - voronoi_grid_overlay: Coordinate grid over the texture
//
// # Diagram Caching
//
// Seeded diagrams are cached by their resolved parameters, so a generate
// followed by samples and crops of the same diagram simulates only once.
// Diagrams without a seed depend on the clock and are rebuilt on every call.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Logging
//
// The server logs through log/slog's default logger. Stdout carries the
// protocol, so the binary points that logger at stderr.
package server
