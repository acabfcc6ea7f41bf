package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/hotseat-chess/internal/apperror"
	"github.com/rocketscienceinc/hotseat-chess/internal/chess"
	"github.com/rocketscienceinc/hotseat-chess/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, c *client) error {
	view := that.uGame.State(ctx)

	if err := c.send(msg.Action, ResponsePayload{State: &view}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	that.logger.Info("client connected", "game_id", view.GameID)

	return nil
}

func (that *Server) handleSquareClick(ctx context.Context, msg *Message, c *client) error {
	payload, err := decodeClick(msg)
	if err != nil || payload.Row == nil || payload.Col == nil {
		return c.sendError(msg.Action, apperror.ErrInvalidPayload)
	}

	view, outcome, err := that.uGame.ClickSquare(ctx, entity.Square{Row: *payload.Row, Col: *payload.Col})

	return that.reply(msg.Action, c, view, outcome, err)
}

func (that *Server) handleBoardClick(ctx context.Context, msg *Message, c *client) error {
	payload, err := decodeClick(msg)
	if err != nil || payload.X == nil || payload.Y == nil {
		return c.sendError(msg.Action, apperror.ErrInvalidPayload)
	}

	view, outcome, err := that.uGame.ClickPoint(ctx, *payload.X, *payload.Y)

	return that.reply(msg.Action, c, view, outcome, err)
}

func (that *Server) reply(action string, c *client, view chess.View, outcome chess.Outcome, err error) error {
	if errors.Is(err, apperror.ErrSquareOutOfRange) || errors.Is(err, apperror.ErrOutsideBoard) {
		return c.sendError(action, err)
	}

	if err != nil {
		if sendErr := c.sendError(action, err); sendErr != nil {
			return sendErr
		}
		return fmt.Errorf("failed to handle %s: %w", action, err)
	}

	return c.send(action, ResponsePayload{State: &view, Outcome: outcome})
}

// broadcast - pushes a redraw to every connected client.
func (that *Server) broadcast(view chess.View) {
	log := that.logger.With("method", "broadcast")

	that.clientsMutex.RLock()
	defer that.clientsMutex.RUnlock()

	for c := range that.clients {
		if err := c.send(actionBoardUpdate, ResponsePayload{State: &view}); err != nil {
			log.Warn("failed to push board update", "error", err)
		}
	}
}

func decodeClick(msg *Message) (ClickPayload, error) {
	var payload ClickPayload
	if len(msg.Payload) == 0 {
		return payload, apperror.ErrInvalidPayload
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}
