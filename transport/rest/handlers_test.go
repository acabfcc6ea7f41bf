package rest

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hotseat-chess/internal/chess"
	"github.com/rocketscienceinc/hotseat-chess/internal/entity"
	"github.com/rocketscienceinc/hotseat-chess/internal/render"
	"github.com/rocketscienceinc/hotseat-chess/testing/suite"
)

func newTestServer(t *testing.T) (*suite.Suite, *httptest.Server) {
	t.Helper()

	_, s := suite.New(t)

	server := New(s.Logger, s.Game, render.NewPNGRenderer(40))
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	return s, ts
}

func postClick(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(ts.URL+"/api/click", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestServer_Ping(t *testing.T) {
	t.Run("Answers pong", func(t *testing.T) {
		// Given: A running server
		_, ts := newTestServer(t)

		// When: Requesting /ping
		resp, err := http.Get(ts.URL + "/ping")
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: The body is pong
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "pong", string(body))
	})
}

func TestServer_State(t *testing.T) {
	t.Run("Returns the current view as JSON", func(t *testing.T) {
		// Given: A running server
		s, ts := newTestServer(t)

		// When: Requesting the state
		resp, err := http.Get(ts.URL + "/api/state")
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: The opening position with white to move is returned
		var view chess.View
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
		assert.Equal(t, s.Game.ID(), view.GameID)
		assert.Equal(t, entity.White, view.Turn)
		require.NotNil(t, view.Board[0][4])
		assert.Equal(t, entity.Piece{Kind: entity.KindKing, Color: entity.Black}, *view.Board[0][4])
		assert.Nil(t, view.Board[4][4])
	})
}

func TestServer_Click(t *testing.T) {
	t.Run("Selects by square", func(t *testing.T) {
		// Given: A running server
		_, ts := newTestServer(t)

		// When: Clicking the white knight on row 7 col 6
		resp := postClick(t, ts, `{"row":7,"col":6}`)

		// Then: The knight is selected with its two jumps
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body ClickResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, chess.OutcomeSelected, body.Outcome)
		assert.ElementsMatch(t, []entity.Square{{Row: 5, Col: 7}, {Row: 5, Col: 5}}, body.State.Moves)
	})

	t.Run("Moves by canvas point", func(t *testing.T) {
		// Given: A selected white pawn
		_, ts := newTestServer(t)
		resp := postClick(t, ts, `{"row":6,"col":3}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		// When: Clicking the centre of the square two rows ahead
		resp = postClick(t, ts, `{"x":350,"y":450}`)

		// Then: The pawn moves and black is to move
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body ClickResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, chess.OutcomeMoved, body.Outcome)
		assert.Equal(t, entity.Black, body.State.Turn)
		assert.Equal(t, "Current Turn: Black", body.State.TurnLabel)
	})

	t.Run("Rejects an out of range square", func(t *testing.T) {
		// Given: A running server
		_, ts := newTestServer(t)

		// When: Clicking row -1
		resp := postClick(t, ts, `{"row":-1,"col":3}`)

		// Then: The request is rejected as bad
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Reports a point off the board", func(t *testing.T) {
		// Given: A running server
		_, ts := newTestServer(t)

		// When: Clicking below the canvas
		resp := postClick(t, ts, `{"x":10,"y":805}`)

		// Then: The point is unprocessable
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("Rejects malformed bodies", func(t *testing.T) {
		// Given: A running server
		_, ts := newTestServer(t)

		for _, body := range []string{`{`, `{}`, `{"row":1}`} {
			// When: Posting the body
			resp := postClick(t, ts, body)

			// Then: The request is rejected as bad
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		}
	})
}

func TestServer_Board(t *testing.T) {
	t.Run("Serves a PNG of the board", func(t *testing.T) {
		// Given: A running server with 40px squares
		_, ts := newTestServer(t)

		// When: Requesting the image
		resp, err := http.Get(ts.URL + "/board.png")
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: A decodable PNG of the board is returned
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 320, img.Bounds().Dx())
	})

	t.Run("Serves the text board", func(t *testing.T) {
		// Given: A running server
		_, ts := newTestServer(t)

		// When: Requesting the text rendering
		resp, err := http.Get(ts.URL + "/board.txt")
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: The turn label closes the output
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(strings.TrimSpace(string(body)), "Current Turn: White"))
	})

	t.Run("Serves the index page with the canvas size", func(t *testing.T) {
		// Given: A server whose canvas is 640px
		_, s := suite.New(t)
		server := New(s.Logger, s.Game, render.NewPNGRenderer(40), WithCanvasSize(640))
		ts := httptest.NewServer(server.Handler())
		defer ts.Close()

		// When: Requesting the index page
		resp, err := http.Get(ts.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: The canvas carries the configured size
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `width="640"`)
	})
}
