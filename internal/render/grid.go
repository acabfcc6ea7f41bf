package render

import "github.com/rocketscienceinc/hotseat-chess/internal/entity"

// Grid maps pointer coordinates onto the 8x8 board.
type Grid struct {
	OriginX    int
	OriginY    int
	CellWidth  int
	CellHeight int
}

// NewCanvasGrid - divides a square canvas of size pixels into 8 equal rows and columns.
func NewCanvasGrid(size int) Grid {
	cell := size / entity.BoardSize
	return Grid{CellWidth: cell, CellHeight: cell}
}

// Translate - returns the square under (x, y), or false when the point is off the board.
func (that Grid) Translate(x, y int) (entity.Square, bool) {
	if that.CellWidth <= 0 || that.CellHeight <= 0 {
		return entity.Square{}, false
	}

	dx, dy := x-that.OriginX, y-that.OriginY
	if dx < 0 || dy < 0 {
		return entity.Square{}, false
	}

	sq := entity.Square{Row: dy / that.CellHeight, Col: dx / that.CellWidth}
	if !sq.InRange() {
		return entity.Square{}, false
	}

	return sq, true
}

// Origin - returns the top-left pointer coordinate of sq.
func (that Grid) Origin(sq entity.Square) (int, int) {
	return that.OriginX + sq.Col*that.CellWidth, that.OriginY + sq.Row*that.CellHeight
}

// Width - returns the full board width.
func (that Grid) Width() int {
	return that.CellWidth * entity.BoardSize
}

// Height - returns the full board height.
func (that Grid) Height() int {
	return that.CellHeight * entity.BoardSize
}
