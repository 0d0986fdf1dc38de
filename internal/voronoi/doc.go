// Package voronoi generates square-expansion Voronoi textures.
//
// A Diagram places N one-pixel seed regions at random positions on a canvas,
// then grows every region outward by a fixed step per tick until each one
// collides with a neighbour or the canvas edge. The result approximates a
// Voronoi diagram with axis-aligned rectangles instead of polygons, so some
// pixels may belong to no region and stay background coloured.
//
// # Lifecycle
//
//	d, err := voronoi.New(voronoi.Config{Regions: 12, Seed: "forest"})
//	if err != nil {
//	    return err
//	}
//	d.Simulate()
//	img := d.Rasterize()
//
// # Reproducibility
//
// The random stream is seeded from the 64-bit FNV-1a hash of the seed string.
// Two diagrams built from the same Config produce identical pixels. An empty
// seed is replaced by the current time, which makes the result unrepeatable
// unless the caller reads it back with Diagram.Seed.
//
// # Blocking
//
// BlockPerEdge (the default) stops each edge of a region independently when
// it touches a neighbour or the canvas, so regions keep filling free space.
// BlockSingleFlag stops the whole region on its first contact, which leaves
// more background but matches the classic behaviour of this generator.
//
// # Coordinate System
//
// Region bounds use image.Rectangle conventions: Min is inclusive, Max is
// exclusive, (0,0) is the top-left pixel.
//
// # Thread Safety
//
// A Diagram is not safe for concurrent mutation. Once Simulate returns, its
// accessors and Rasterize may be called from any number of goroutines.
package voronoi
