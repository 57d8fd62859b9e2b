package recast

// AreaNull marks a span as non-walkable. It is the zero value, so a freshly
// allocated span is non-walkable until a later stage says otherwise.
const AreaNull uint16 = 0

// AreaWalkable marks a span as a walkable candidate, before region
// segmentation has assigned it to a region. Region ids start at
// FirstRegionID and grow from there, so AreaWalkable must stay below it.
const AreaWalkable uint16 = 1

// FirstRegionID is the lowest region id region segmentation will ever
// assign. Area ids below it (AreaNull, AreaWalkable) are reserved classes,
// not regions.
const FirstRegionID uint16 = 2

// noSpan is the sentinel stored in a column head or a span's next link to
// mean "no span here", distinct from any valid arena index.
const noSpan int32 = -1
