package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/hotseat-chess/internal/render"
	"github.com/rocketscienceinc/hotseat-chess/internal/usecase"
)

const (
	maxWaitDuration = 30 * time.Second
	canvasSize      = 800
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Grid render.Grid
	Game usecase.GameUseCase
}

// New - prepares a fresh game on an 800px canvas. Set SUITE_VERBOSE to see the logs.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	var out io.Writer = io.Discard
	if os.Getenv("SUITE_VERBOSE") != "" {
		out = os.Stdout
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	grid := render.NewCanvasGrid(canvasSize)

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Grid:   grid,
		Game:   usecase.NewGameUseCase(logger, grid.Translate),
	}
}
