package chess

import (
	"slices"

	"github.com/rocketscienceinc/hotseat-chess/internal/entity"
)

// View is a read-only snapshot of the game handed to renderers.
type View struct {
	GameID    string                                           `json:"game_id,omitempty"`
	Board     [entity.BoardSize][entity.BoardSize]*entity.Piece `json:"board"`
	Turn      entity.Color                                     `json:"turn"`
	TurnLabel string                                           `json:"turn_label"`
	Selected  *entity.Square                                   `json:"selected,omitempty"`
	Moves     []entity.Square                                  `json:"moves"`
	MoveCount int                                              `json:"move_count"`
}

// PieceAt - returns the piece on sq in the snapshot.
func (that View) PieceAt(sq entity.Square) (entity.Piece, bool) {
	if !sq.InRange() {
		return entity.Piece{}, false
	}

	if piece := that.Board[sq.Row][sq.Col]; piece != nil {
		return *piece, true
	}

	return entity.Piece{}, false
}

// IsDestination - reports whether sq is in the cached move list.
func (that View) IsDestination(sq entity.Square) bool {
	return slices.Contains(that.Moves, sq)
}

// IsSelected - reports whether sq holds the selected piece.
func (that View) IsSelected(sq entity.Square) bool {
	return that.Selected != nil && *that.Selected == sq
}

// TurnLabel - returns the UI caption for the side to move.
func TurnLabel(turn entity.Color) string {
	return "Current Turn: " + turn.Title()
}

func newView(board *entity.Board, turn entity.Color, state Selection, moveCount int) View {
	view := View{
		Turn:      turn,
		TurnLabel: TurnLabel(turn),
		Moves:     []entity.Square{},
		MoveCount: moveCount,
	}

	board.Squares(func(sq entity.Square, piece entity.Piece, ok bool) {
		if ok {
			p := piece
			view.Board[sq.Row][sq.Col] = &p
		}
	})

	if selected, ok := state.(Selected); ok {
		from := selected.From
		view.Selected = &from
		view.Moves = append(view.Moves, selected.Moves...)
	}

	return view
}
