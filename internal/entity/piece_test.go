package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, "White", White.Title())
	assert.Equal(t, "Black", Black.Title())
}

func TestParseKind(t *testing.T) {
	t.Run("Known names", func(t *testing.T) {
		kind, err := ParseKind(" Queen ")
		require.NoError(t, err)
		assert.Equal(t, KindQueen, kind)
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := ParseKind("archbishop")
		require.Error(t, err)
	})
}

func TestPiece_JSON(t *testing.T) {
	// Given: a piece
	piece := Piece{Kind: KindKnight, Color: Black}

	// When: it is encoded
	raw, err := json.Marshal(piece)
	require.NoError(t, err)

	// Then: the kind is written by name and decodes back
	assert.JSONEq(t, `{"kind":"knight","color":"black"}`, string(raw))

	var decoded Piece
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, piece, decoded)
}

func TestPiece_Glyphs(t *testing.T) {
	assert.Equal(t, "♔", Piece{Kind: KindKing, Color: White}.Symbol())
	assert.Equal(t, "♟", Piece{Kind: KindPawn, Color: Black}.Symbol())
	assert.Equal(t, "N", Piece{Kind: KindKnight, Color: White}.Letter())
	assert.Equal(t, "q", Piece{Kind: KindQueen, Color: Black}.Letter())
}
