package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/hotseat-chess/internal/chess"
)

const writeWait = 5 * time.Second

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ClickPayload addresses a square by row/col or a canvas point by x/y.
type ClickPayload struct {
	Row *int `json:"row,omitempty"`
	Col *int `json:"col,omitempty"`
	X   *int `json:"x,omitempty"`
	Y   *int `json:"y,omitempty"`
}

type ResponsePayload struct {
	State   *chess.View   `json:"state,omitempty"`
	Outcome chess.Outcome `json:"outcome,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// client serializes writes to one connection; gorilla allows a single concurrent writer.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (that *client) send(action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: body})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *client) sendError(action string, err error) error {
	return that.send(actionError, ResponsePayload{Error: fmt.Sprintf("%s: %v", action, err)})
}
