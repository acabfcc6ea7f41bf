package chess

import "github.com/rocketscienceinc/hotseat-chess/internal/entity"

type offset struct {
	dRow, dCol int
}

var (
	orthogonal = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonal   = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allAround  = append(append([]offset{}, orthogonal...), diagonal...)

	knightJumps = []offset{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
)

// strategy produces the destinations of a piece standing on from.
type strategy interface {
	destinations(board *entity.Board, from entity.Square, piece entity.Piece) []entity.Square
}

var strategies = map[entity.Kind]strategy{
	entity.KindPawn:   pawnRule{},
	entity.KindKnight: leaper{offsets: knightJumps},
	entity.KindKing:   leaper{offsets: allAround},
	entity.KindRook:   slider{directions: orthogonal},
	entity.KindBishop: slider{directions: diagonal},
	entity.KindQueen:  slider{directions: allAround},
}

// MovesFrom - returns the pseudo-legal destinations of the piece on sq, or nil for an empty square.
// The order follows the direction tables and is stable between calls.
func MovesFrom(board *entity.Board, sq entity.Square) []entity.Square {
	piece, ok := board.PieceAt(sq)
	if !ok {
		return nil
	}

	rule, ok := strategies[piece.Kind]
	if !ok {
		return nil
	}

	return rule.destinations(board, sq, piece)
}

// leaper jumps by fixed offsets.
type leaper struct {
	offsets []offset
}

func (that leaper) destinations(board *entity.Board, from entity.Square, piece entity.Piece) []entity.Square {
	var moves []entity.Square

	for _, o := range that.offsets {
		to := from.Offset(o.dRow, o.dCol)
		if !to.InRange() {
			continue
		}

		if target, occupied := board.PieceAt(to); !occupied || target.Color != piece.Color {
			moves = append(moves, to)
		}
	}

	return moves
}

// slider walks rays until the edge or the first occupied square.
type slider struct {
	directions []offset
}

func (that slider) destinations(board *entity.Board, from entity.Square, piece entity.Piece) []entity.Square {
	var moves []entity.Square

	for _, d := range that.directions {
		moves = castRay(board, from, d, piece.Color, moves)
	}

	return moves
}

func castRay(board *entity.Board, from entity.Square, d offset, mover entity.Color, moves []entity.Square) []entity.Square {
	for to := from.Offset(d.dRow, d.dCol); to.InRange(); to = to.Offset(d.dRow, d.dCol) {
		target, occupied := board.PieceAt(to)
		if !occupied {
			moves = append(moves, to)
			continue
		}

		if target.Color != mover {
			moves = append(moves, to)
		}

		break
	}

	return moves
}

// pawnRule advances toward the opponent and captures diagonally only.
type pawnRule struct{}

func (pawnRule) destinations(board *entity.Board, from entity.Square, piece entity.Piece) []entity.Square {
	var moves []entity.Square

	dir := forward(piece.Color)

	one := from.Offset(dir, 0)
	if one.InRange() && board.IsEmpty(one) {
		moves = append(moves, one)

		two := from.Offset(2*dir, 0)
		if from.Row == entity.HomeRank[piece.Color] && two.InRange() && board.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	for _, dCol := range []int{-1, 1} {
		to := from.Offset(dir, dCol)
		if !to.InRange() {
			continue
		}

		if target, occupied := board.PieceAt(to); occupied && target.Color != piece.Color {
			moves = append(moves, to)
		}
	}

	return moves
}

// forward - white moves toward row 0, black toward row 7.
func forward(color entity.Color) int {
	if color == entity.White {
		return -1
	}
	return 1
}
