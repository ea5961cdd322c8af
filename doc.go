// Package ink implements a CPU-only 2D software rasterizer: a pixel
// compositor that fills rectangles, convex polygons, paths (lines,
// quadratics, cubics) and textured meshes into an in-memory [Bitmap],
// driven by an affine transform stack, Porter-Duff blend modes, and a
// small set of shaders (solid, gradients, bitmap, tri-color, and
// composition of shaders).
//
// The package does not do anti-aliasing, stroking, font rendering, or
// hardware acceleration; see [Canvas] for the supported draw operations.
package ink
