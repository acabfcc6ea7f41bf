package rest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rocketscienceinc/hotseat-chess/internal/apperror"
	"github.com/rocketscienceinc/hotseat-chess/internal/chess"
	"github.com/rocketscienceinc/hotseat-chess/internal/entity"
)

//go:embed static/index.html
var indexPage string

var indexTemplate = template.Must(template.New("index").Parse(indexPage))

// ClickRequest is either a square ({"row","col"}) or a canvas point ({"x","y"}).
type ClickRequest struct {
	Row *int `json:"row,omitempty"`
	Col *int `json:"col,omitempty"`
	X   *int `json:"x,omitempty"`
	Y   *int `json:"y,omitempty"`
}

type ClickResponse struct {
	Outcome chess.Outcome `json:"outcome"`
	State   chess.View    `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *Server) IndexHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data := struct{ CanvasSize int }{CanvasSize: that.canvasSize}
	if err := indexTemplate.Execute(w, data); err != nil {
		that.logger.Error("failed to write index page", "error", err)
	}
}

func (that *Server) StateHandler(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.game.State(r.Context()))
}

func (that *Server) ClickHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ClickHandler")

	var req ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err))
		return
	}

	var (
		view    chess.View
		outcome chess.Outcome
		err     error
	)

	switch {
	case req.Row != nil && req.Col != nil:
		view, outcome, err = that.game.ClickSquare(r.Context(), entity.Square{Row: *req.Row, Col: *req.Col})
	case req.X != nil && req.Y != nil:
		view, outcome, err = that.game.ClickPoint(r.Context(), *req.X, *req.Y)
	default:
		that.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: row/col or x/y is required", apperror.ErrInvalidPayload))
		return
	}

	switch {
	case errors.Is(err, apperror.ErrSquareOutOfRange):
		that.writeError(w, http.StatusBadRequest, err)
		return
	case errors.Is(err, apperror.ErrOutsideBoard):
		that.writeError(w, http.StatusUnprocessableEntity, err)
		return
	case err != nil:
		log.Error("failed to handle click", "error", err)
		that.writeError(w, http.StatusInternalServerError, err)
		return
	}

	that.writeJSON(w, http.StatusOK, ClickResponse{Outcome: outcome, State: view})
}

func (that *Server) BoardPNGHandler(w http.ResponseWriter, r *http.Request) {
	data, err := that.png.RenderPNG(r.Context(), that.game.State(r.Context()))
	if err != nil {
		that.logger.Error("failed to render png", "error", err)
		that.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if _, err = w.Write(data); err != nil {
		that.logger.Error("failed to write png", "error", err)
	}
}

func (that *Server) BoardTextHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := that.text.Render(&buf, that.game.State(r.Context())); err != nil {
		that.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		that.logger.Error("failed to write text board", "error", err)
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *Server) writeError(w http.ResponseWriter, status int, err error) {
	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}
