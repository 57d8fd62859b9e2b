// Package recast builds a volumetric model of walkable space from a
// triangle soup, the way a Recast-style navmesh generator does.
//
// The pipeline is a fixed sequence of stages, leaves first:
//
//   - RasterizeTriangles fills a Grid from triangles (voxelization).
//   - BuildHeightfield turns a Grid into per-column Span lists.
//   - FilterWalkable classifies every span as walkable or not, by headroom.
//   - BuildRegions flood-fills walkable span tops into regions.
//
// Everything past region segmentation — contour tracing, polygon meshes,
// detail meshes, and the pathfinding query engine built on top of them — is
// out of scope; this package produces only the inputs those stages would
// need.
package recast
