// Package cellimage builds a *planarmap.Map from a raster of integer
// segment labels by tracing the "crack edges" between differently
// labelled pixels: the grid of pixel corners, one unit finer than the
// label raster, where each crack cell records which of its four
// cardinal neighbours it is connected to by a segment boundary.
//
// Construction runs in four passes over the crack grid: detect
// boundary connections from the label raster, symmetrise them (a
// connection recorded on one cell's CONN_RIGHT bit must also appear on
// its neighbour's CONN_LEFT bit), mark nodes (crack cells where three
// or more boundaries meet, or where two boundaries cross diagonally),
// then circulate around each unclaimed connection to emit one
// polyline per edge. The resulting node positions and edge polylines
// feed directly into planarmap.New.
package cellimage
