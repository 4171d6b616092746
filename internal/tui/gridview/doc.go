// Package gridview hosts a virtualized grid inside a Bubble Tea program.
//
// The model drives one grid.Grid through its two frame phases. Update is the
// write phase: it applies input, computes a layout snapshot and renders only
// the visible rows into a frame. Every render is followed by a read phase,
// delivered as a frameReadMsg, in which the grid reads the viewport size and
// measures the cards of the frame that was just drawn. When a read changes
// anything the grid invalidates and the next Update renders again; when
// nothing changed the cycle stops.
//
// Rendering cost is proportional to the number of visible rows, so the model
// stays responsive for collections of any size.
package gridview
