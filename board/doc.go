// Package board holds the playfield geometry: the seven shape templates,
// the fixed-size grid, the controlled piece and the collision queries that
// decide whether a move, fall or rotation is legal.
//
// Coordinates are (x, y) with x growing to the right and y growing downward.
// A piece's anchor is the top-left corner of its matrix in grid coordinates.
// Nothing in this package reads time or input; it is pure state and geometry.
package board
