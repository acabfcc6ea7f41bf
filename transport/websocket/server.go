package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/hotseat-chess/internal/apperror"
	"github.com/rocketscienceinc/hotseat-chess/internal/chess"
	"github.com/rocketscienceinc/hotseat-chess/internal/entity"
)

const (
	actionConnect     = "connect"
	actionSquareClick = "square:click"
	actionBoardClick  = "board:click"
	actionBoardUpdate = "board:update"
	actionError       = "error"
)

type uGame interface {
	State(ctx context.Context) chess.View
	ClickSquare(ctx context.Context, sq entity.Square) (chess.View, chess.Outcome, error)
	ClickPoint(ctx context.Context, x, y int) (chess.View, chess.Outcome, error)
	Subscribe(fn chess.RenderFunc) (unsubscribe func())
}

type Server struct {
	logger *slog.Logger
	uGame  uGame

	upgrader    websocket.Upgrader
	unsubscribe func()

	handlers map[string]func(ctx context.Context, message *Message, client *client) error

	clientsMutex sync.RWMutex
	clients      map[*client]struct{}
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,

		handlers: make(map[string]func(context.Context, *Message, *client) error),
		clients:  make(map[*client]struct{}),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionSquareClick] = server.handleSquareClick
	server.handlers[actionBoardClick] = server.handleBoardClick

	server.unsubscribe = uGame.Subscribe(server.broadcast)

	return server
}

// Close - stops pushing board updates and closes every open connection.
func (that *Server) Close() {
	that.unsubscribe()

	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	for c := range that.clients {
		_ = c.conn.Close()
		delete(that.clients, c)
	}
}

// ServeHTTP - upgrades the connection to WebSocket and processes its messages until it closes.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{conn: conn}

	that.clientsMutex.Lock()
	that.clients[c] = struct{}{}
	that.clientsMutex.Unlock()

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	defer that.handleDisconnect(c)

	if err = that.handleMessages(req.Context(), c); err != nil {
		log.Debug("connection closed", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = c.sendError("message", apperror.ErrInvalidPayload); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = c.sendError(message.Action, apperror.ErrUnknownAction); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, &message, c); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) handleDisconnect(c *client) {
	that.clientsMutex.Lock()
	delete(that.clients, c)
	that.clientsMutex.Unlock()

	if err := c.conn.Close(); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		that.logger.Debug("failed to close connection", "error", err)
	}

	that.logger.Info("client disconnected")
}
