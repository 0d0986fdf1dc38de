// Package imaging renders and inspects diagram textures for the MCP server.
//
// The functions here take any image.Image, so they work equally on a freshly
// rasterized diagram and on a crop or scaled copy of one. Results that carry
// pixels are returned as EncodedImage values holding base64 data, ready to
// embed in a JSON-RPC response.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For areas, (x1,y1) is inclusive and (x2,y2) is exclusive
//
// # Scaling
//
// Diagrams are small and made of flat fills, so every resize uses
// nearest-neighbour sampling. Region borders stay one colour wide at any
// integer scale.
//
// # Color Representation
//
// Colors are returned in multiple formats:
//   - Hex: "#RRGGBB" (alpha excluded)
//   - RGB and RGBA: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Thread Safety
//
// Every function is stateless and may be called concurrently as long as the
// source image is not mutated at the same time.
package imaging
