package navmesh

import "errors"

// ErrNoInput is returned (alongside a valid, empty Artifacts) when a scene
// flattens to zero triangles. The build still completes; callers that want
// to treat an empty scene as a failure can check for this sentinel.
var ErrNoInput = errors.New("navmesh: scene contains no triangles")
