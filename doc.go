// Package navmesh turns a scene of transformed triangle meshes into a
// voxelized, region-segmented model of walkable space.
//
// A NavigationPipeline ties together the stages implemented in package
// recast: it flattens a Scene's objects into world-space triangles
// (optionally pre-filtered by package spatial for large scenes), then
// voxelizes, builds a height-field, classifies walkability, and segments
// regions. The result is an Artifacts value exposing read-only iteration
// over voxels, spans, and input triangles — enough for an external
// renderer to draw a debug view, but nothing past region segmentation:
// contour tracing, polygon meshes, detail meshes, and pathfinding queries
// are out of scope.
package navmesh
