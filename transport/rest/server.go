package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/hotseat-chess/internal/render"
	"github.com/rocketscienceinc/hotseat-chess/internal/usecase"
)

const (
	shutdownTimeout   = 5 * time.Second
	defaultCanvasSize = 800
)

type Server struct {
	logger *slog.Logger

	game usecase.GameUseCase
	png  *render.PNGRenderer
	text render.TextRenderer

	canvasSize int
	router     *mux.Router
}

type Option func(*Server)

// WithCanvasSize - sets the pixel size of the board canvas on the index page.
func WithCanvasSize(size int) Option {
	return func(that *Server) {
		if size > 0 {
			that.canvasSize = size
		}
	}
}

// WithHandler - mounts an extra handler, e.g. the websocket endpoint, on the same router.
func WithHandler(path string, handler http.Handler) Option {
	return func(that *Server) {
		that.router.Handle(path, handler)
	}
}

func New(logger *slog.Logger, game usecase.GameUseCase, png *render.PNGRenderer, opts ...Option) *Server {
	that := &Server{
		logger: logger.With("component", "rest"),
		game:   game,
		png:    png,

		canvasSize: defaultCanvasSize,
		router:     mux.NewRouter(),
	}

	that.router.HandleFunc("/ping", that.PingHandler).Methods(http.MethodGet)
	that.router.HandleFunc("/api/state", that.StateHandler).Methods(http.MethodGet)
	that.router.HandleFunc("/api/click", that.ClickHandler).Methods(http.MethodPost)
	that.router.HandleFunc("/board.png", that.BoardPNGHandler).Methods(http.MethodGet)
	that.router.HandleFunc("/board.txt", that.BoardTextHandler).Methods(http.MethodGet)

	for _, opt := range opts {
		opt(that)
	}

	that.router.HandleFunc("/", that.IndexHandler).Methods(http.MethodGet)

	return that
}

// Handler - returns the router with every route mounted.
func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves HTTP on port until ctx is cancelled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("method", "Start")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
