package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/hotseat-chess/internal/apperror"
	"github.com/rocketscienceinc/hotseat-chess/internal/config"
	"github.com/rocketscienceinc/hotseat-chess/internal/render"
	"github.com/rocketscienceinc/hotseat-chess/internal/terminal"
	"github.com/rocketscienceinc/hotseat-chess/internal/usecase"
	"github.com/rocketscienceinc/hotseat-chess/transport/rest"
	"github.com/rocketscienceinc/hotseat-chess/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	switch conf.Mode {
	case config.ModeWeb:
		return runWeb(ctx, logger, conf)
	case config.ModeTerminal:
		return runTerminal(ctx, logger, conf)
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMode, conf.Mode)
	}
}

func runWeb(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	grid := render.NewCanvasGrid(conf.Board.CanvasSize)
	gameUseCase := usecase.NewGameUseCase(logger, grid.Translate)

	wsServer := websocket.New(logger, gameUseCase)
	defer wsServer.Close()

	server := rest.New(logger, gameUseCase, render.NewPNGRenderer(conf.Board.PNGSquareSize),
		rest.WithCanvasSize(conf.Board.CanvasSize),
		rest.WithHandler("/ws", wsServer),
	)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "game_id", gameUseCase.ID())

	if err := server.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func runTerminal(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	grid := terminal.NewGrid(conf.Terminal.CellWidth, conf.Terminal.CellHeight)
	gameUseCase := usecase.NewGameUseCase(logger, grid.Translate)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err = terminal.New(logger, screen, gameUseCase, grid).Run(ctx); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	return nil
}
