package entity

import (
	"fmt"

	"github.com/rocketscienceinc/hotseat-chess/internal/apperror"
)

// HomeRank is the row a color's pawns start on.
var HomeRank = map[Color]int{
	White: 6,
	Black: 1,
}

var backRank = [BoardSize]Kind{
	KindRook, KindKnight, KindBishop, KindQueen, KindKing, KindBishop, KindKnight, KindRook,
}

// Board is an 8x8 grid of optional pieces.
type Board struct {
	cells [BoardSize][BoardSize]Piece
}

// NewBoard - returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard - returns a board in the standard starting position.
func NewInitialBoard() *Board {
	board := NewBoard()

	for col := 0; col < BoardSize; col++ {
		board.cells[HomeRank[Black]][col] = Piece{Kind: KindPawn, Color: Black}
		board.cells[HomeRank[White]][col] = Piece{Kind: KindPawn, Color: White}

		board.cells[0][col] = Piece{Kind: backRank[col], Color: Black}
		board.cells[BoardSize-1][col] = Piece{Kind: backRank[col], Color: White}
	}

	return board
}

// PieceAt - returns the piece on the square and whether the square is occupied.
func (that *Board) PieceAt(sq Square) (Piece, bool) {
	mustInRange(sq)

	piece := that.cells[sq.Row][sq.Col]
	return piece, piece.Kind != KindNone
}

// IsEmpty - reports whether nothing stands on the square.
func (that *Board) IsEmpty(sq Square) bool {
	_, ok := that.PieceAt(sq)
	return !ok
}

// CommitMove - relocates the piece on from to to, replacing whatever stood there.
// No legality check is done here.
func (that *Board) CommitMove(from, to Square) {
	mustInRange(from)
	mustInRange(to)

	that.cells[to.Row][to.Col] = that.cells[from.Row][from.Col]
	that.cells[from.Row][from.Col] = Piece{}
}

// Place - puts a piece on the square, used to set up custom positions.
func (that *Board) Place(sq Square, piece Piece) {
	mustInRange(sq)

	that.cells[sq.Row][sq.Col] = piece
}

// Squares - calls fn for all 64 squares in row-major order.
func (that *Board) Squares(fn func(sq Square, piece Piece, ok bool)) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := that.cells[row][col]
			fn(Square{Row: row, Col: col}, piece, piece.Kind != KindNone)
		}
	}
}

func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

func mustInRange(sq Square) {
	if !sq.InRange() {
		panic(fmt.Errorf("%w: %s", apperror.ErrSquareOutOfRange, sq))
	}
}
