package chess

import (
	"log/slog"
	"slices"

	"github.com/rocketscienceinc/hotseat-chess/internal/entity"
)

// Selection is either Idle or Selected.
type Selection interface {
	selection()
}

// Idle - no piece is selected.
type Idle struct{}

// Selected - a piece is picked up, with the destinations computed when it was picked.
type Selected struct {
	From  entity.Square
	Moves []entity.Square
}

func (Idle) selection()     {}
func (Selected) selection() {}

// Outcome describes what a click did.
type Outcome string

const (
	OutcomeIgnored    Outcome = "ignored"
	OutcomeSelected   Outcome = "selected"
	OutcomeMoved      Outcome = "moved"
	OutcomeDeselected Outcome = "deselected"
	OutcomeOutside    Outcome = "outside"
)

// RenderFunc redraws the whole board from a snapshot.
type RenderFunc func(view View)

// InputTranslator maps a pointer position to a square. ok is false outside the board.
type InputTranslator func(x, y int) (sq entity.Square, ok bool)

type GameController struct {
	logger    *slog.Logger
	render    RenderFunc
	translate InputTranslator

	board     *entity.Board
	turn      entity.Color
	state     Selection
	moveCount int
}

type Option func(*GameController)

// WithBoard - starts the game from a custom position instead of the initial layout.
func WithBoard(board *entity.Board) Option {
	return func(that *GameController) {
		that.board = board
	}
}

// WithTurn - sets the side to move first.
func WithTurn(turn entity.Color) Option {
	return func(that *GameController) {
		that.turn = turn
	}
}

func NewGameController(logger *slog.Logger, render RenderFunc, translate InputTranslator, opts ...Option) *GameController {
	controller := &GameController{
		logger:    logger.With("component", "game_controller"),
		render:    render,
		translate: translate,

		board: entity.NewInitialBoard(),
		turn:  entity.White,
		state: Idle{},
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// HandleSquareClick - runs one step of the selection state machine and redraws.
func (that *GameController) HandleSquareClick(sq entity.Square) Outcome {
	log := that.logger.With("method", "HandleSquareClick", "square", sq.String())

	var outcome Outcome

	switch state := that.state.(type) {
	case Selected:
		outcome = that.moveOrDeselect(state, sq)
	default:
		outcome = that.trySelect(sq)
	}

	log.Debug("click handled", "outcome", outcome, "turn", that.turn)

	if that.render != nil {
		that.render(that.View())
	}

	return outcome
}

// HandlePointer - translates a pointer position and handles it as a square click.
func (that *GameController) HandlePointer(x, y int) Outcome {
	if that.translate == nil {
		return OutcomeOutside
	}

	sq, ok := that.translate(x, y)
	if !ok || !sq.InRange() {
		return OutcomeOutside
	}

	return that.HandleSquareClick(sq)
}

func (that *GameController) trySelect(sq entity.Square) Outcome {
	piece, ok := that.board.PieceAt(sq)
	if !ok || piece.Color != that.turn {
		return OutcomeIgnored
	}

	that.state = Selected{
		From:  sq,
		Moves: MovesFrom(that.board, sq),
	}

	return OutcomeSelected
}

func (that *GameController) moveOrDeselect(state Selected, sq entity.Square) Outcome {
	that.state = Idle{}

	if !slices.Contains(state.Moves, sq) {
		return OutcomeDeselected
	}

	that.board.CommitMove(state.From, sq)
	that.turn = that.turn.Opponent()
	that.moveCount++

	that.logger.Info("move committed", "from", state.From.String(), "to", sq.String(), "next_turn", that.turn)

	return OutcomeMoved
}

// View - returns a snapshot of the board, turn and selection.
func (that *GameController) View() View {
	return newView(that.board, that.turn, that.state, that.moveCount)
}

// Turn - returns the side to move.
func (that *GameController) Turn() entity.Color {
	return that.turn
}

// Selection - returns the current selection state.
func (that *GameController) Selection() Selection {
	if selected, ok := that.state.(Selected); ok {
		return Selected{From: selected.From, Moves: slices.Clone(selected.Moves)}
	}
	return that.state
}
