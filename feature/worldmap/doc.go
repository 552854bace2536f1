// Package worldmap implements map management: CRUD over maps, the edit
// batch pipeline, snapshot reconstruction with resolved title anchors,
// and the optional object storage snapshot archive.
package worldmap
