// Package playfield builds compositor frames from a game board.
//
// A Field is a grid of terrain tiles with emitters placed on some cells.
// Emitters reach out to other cells through a pattern of offsets; when an
// offset lands on another emitter and the straight path between them is
// not blocked, the two are linked by a mycelium connection. Rebuild
// recomputes those links.
//
// Assemble turns a field into a fieldground.Frame: it chooses a sprite for
// every cell, encodes the tile-index map, converts links to UV connections
// and attaches the placement-preview highlights returned by Field.Preview.
//
// Grid coordinates have (0, 0) at the top-left cell with Y growing
// downward, the same orientation as the surface UV.
package playfield
