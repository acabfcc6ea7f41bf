package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/hotseat-chess/internal/chess"
	"github.com/rocketscienceinc/hotseat-chess/internal/entity"
)

const emptyGlyph = "·"

// TextRenderer draws a view as a unicode board.
type TextRenderer struct {
	// Letters switches glyphs to KQRBNP letters for terminals without chess symbols.
	Letters bool
}

// Render - writes the board, highlights and the turn label to w.
func (that TextRenderer) Render(w io.Writer, view chess.View) error {
	var b strings.Builder

	b.WriteString("    ")
	for col := 0; col < entity.BoardSize; col++ {
		fmt.Fprintf(&b, " %d ", col)
	}
	b.WriteString("\n")

	for row := 0; row < entity.BoardSize; row++ {
		fmt.Fprintf(&b, " %d  ", row)

		for col := 0; col < entity.BoardSize; col++ {
			sq := entity.Square{Row: row, Col: col}
			left, right := " ", " "

			switch {
			case view.IsSelected(sq):
				left, right = "<", ">"
			case view.IsDestination(sq):
				left, right = "[", "]"
			}

			b.WriteString(left + that.glyph(view, sq) + right)
		}

		b.WriteString("\n")
	}

	b.WriteString(view.TurnLabel)
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// String - returns the rendered board.
func (that TextRenderer) String(view chess.View) string {
	var b strings.Builder
	_ = that.Render(&b, view)
	return b.String()
}

func (that TextRenderer) glyph(view chess.View, sq entity.Square) string {
	piece, ok := view.PieceAt(sq)
	if !ok {
		return emptyGlyph
	}

	if that.Letters {
		return piece.Letter()
	}

	return piece.Symbol()
}
