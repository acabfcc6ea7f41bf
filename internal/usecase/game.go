package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/hotseat-chess/internal/apperror"
	"github.com/rocketscienceinc/hotseat-chess/internal/chess"
	"github.com/rocketscienceinc/hotseat-chess/internal/entity"
)

type GameUseCase interface {
	ID() string
	State(ctx context.Context) chess.View

	ClickSquare(ctx context.Context, sq entity.Square) (chess.View, chess.Outcome, error)
	ClickPoint(ctx context.Context, x, y int) (chess.View, chess.Outcome, error)

	Subscribe(fn chess.RenderFunc) (unsubscribe func())
}

type gameUseCase struct {
	logger *slog.Logger
	id     string

	// mu runs one interaction at a time, start to finish.
	mu         sync.Mutex
	controller *chess.GameController

	subsMu sync.RWMutex
	subs   map[int]chess.RenderFunc
	nextID int
}

func NewGameUseCase(logger *slog.Logger, translate chess.InputTranslator, opts ...chess.Option) GameUseCase {
	id := uuid.NewString()

	that := &gameUseCase{
		logger: logger.With("component", "game_usecase", "game_id", id),
		id:     id,
		subs:   make(map[int]chess.RenderFunc),
	}

	that.controller = chess.NewGameController(that.logger, that.broadcast, translate, opts...)

	return that
}

func (that *gameUseCase) ID() string {
	return that.id
}

func (that *gameUseCase) State(_ context.Context) chess.View {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.view()
}

func (that *gameUseCase) ClickSquare(ctx context.Context, sq entity.Square) (chess.View, chess.Outcome, error) {
	if !sq.InRange() {
		return chess.View{}, "", fmt.Errorf("%w: %s", apperror.ErrSquareOutOfRange, sq)
	}

	if err := ctx.Err(); err != nil {
		return chess.View{}, "", fmt.Errorf("failed to click square: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	outcome := that.controller.HandleSquareClick(sq)

	return that.view(), outcome, nil
}

func (that *gameUseCase) ClickPoint(ctx context.Context, x, y int) (chess.View, chess.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return chess.View{}, "", fmt.Errorf("failed to click point: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	outcome := that.controller.HandlePointer(x, y)
	if outcome == chess.OutcomeOutside {
		return that.view(), outcome, fmt.Errorf("%w: (%d,%d)", apperror.ErrOutsideBoard, x, y)
	}

	return that.view(), outcome, nil
}

// Subscribe - registers fn to receive every redraw. fn runs while the interaction is in progress
// and must not call back into the use case.
func (that *gameUseCase) Subscribe(fn chess.RenderFunc) func() {
	that.subsMu.Lock()
	defer that.subsMu.Unlock()

	id := that.nextID
	that.nextID++
	that.subs[id] = fn

	that.logger.Debug("subscriber added", "subscriber", id)

	return func() {
		that.subsMu.Lock()
		defer that.subsMu.Unlock()

		delete(that.subs, id)
	}
}

func (that *gameUseCase) broadcast(view chess.View) {
	view.GameID = that.id

	that.subsMu.RLock()
	defer that.subsMu.RUnlock()

	for _, fn := range that.subs {
		fn(view)
	}
}

func (that *gameUseCase) view() chess.View {
	view := that.controller.View()
	view.GameID = that.id
	return view
}
