package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/rocketscienceinc/hotseat-chess/internal/chess"
	"github.com/rocketscienceinc/hotseat-chess/internal/entity"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	defaultSquareSize = 72
	headerHeight      = 36
	labelScale        = 2
)

var (
	lightSquare     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	darkSquare      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	moveHighlight   = color.NRGBA{R: 0, G: 255, B: 0, A: 50}
	selectHighlight = color.NRGBA{R: 255, G: 228, B: 120, A: 140}
	whitePieceColor = color.RGBA{R: 218, G: 165, B: 32, A: 255}
	blackPieceColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	headerColor     = color.RGBA{R: 28, G: 31, B: 46, A: 255}
	headerTextColor = color.RGBA{R: 236, G: 239, B: 255, A: 255}
)

// PNGRenderer draws a view as a PNG image with a turn header above the board.
type PNGRenderer struct {
	squareSize int
}

func NewPNGRenderer(squareSize int) *PNGRenderer {
	if squareSize <= 0 {
		squareSize = defaultSquareSize
	}

	return &PNGRenderer{squareSize: squareSize}
}

// Bounds - returns the image size produced by RenderPNG.
func (that *PNGRenderer) Bounds() image.Rectangle {
	side := that.squareSize * entity.BoardSize
	return image.Rect(0, 0, side, side+headerHeight)
}

// Grid - returns the square layout inside the image.
func (that *PNGRenderer) Grid() Grid {
	return Grid{OriginY: headerHeight, CellWidth: that.squareSize, CellHeight: that.squareSize}
}

func (that *PNGRenderer) RenderPNG(ctx context.Context, view chess.View) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	img := image.NewRGBA(that.Bounds())

	header := image.Rect(0, 0, img.Bounds().Dx(), headerHeight)
	xdraw.Draw(img, header, image.NewUniform(headerColor), image.Point{}, xdraw.Src)
	drawLabel(img, header, view.TurnLabel)

	grid := that.Grid()
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			sq := entity.Square{Row: row, Col: col}
			x, y := grid.Origin(sq)
			rect := image.Rect(x, y, x+that.squareSize, y+that.squareSize)

			xdraw.Draw(img, rect, image.NewUniform(squareColor(sq)), image.Point{}, xdraw.Src)

			switch {
			case view.IsSelected(sq):
				xdraw.Draw(img, rect, image.NewUniform(selectHighlight), image.Point{}, xdraw.Over)
			case view.IsDestination(sq):
				xdraw.Draw(img, rect, image.NewUniform(moveHighlight), image.Point{}, xdraw.Over)
			}

			if piece, ok := view.PieceAt(sq); ok {
				drawPiece(img, rect, piece)
			}
		}
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}

	return buf.Bytes(), nil
}

func squareColor(sq entity.Square) color.Color {
	if (sq.Row+sq.Col)%2 == 0 {
		return lightSquare
	}
	return darkSquare
}

func drawPiece(dst xdraw.Image, rect image.Rectangle, piece entity.Piece) {
	clr := color.Color(blackPieceColor)
	if piece.Color == entity.White {
		clr = whitePieceColor
	}

	glyph := textImage(strings.ToUpper(piece.Letter()), clr)
	if glyph == nil {
		return
	}

	height := rect.Dy() * 7 / 10
	width := height * glyph.Bounds().Dx() / glyph.Bounds().Dy()
	left := rect.Min.X + (rect.Dx()-width)/2
	top := rect.Min.Y + (rect.Dy()-height)/2

	xdraw.NearestNeighbor.Scale(dst, image.Rect(left, top, left+width, top+height), glyph, glyph.Bounds(), xdraw.Over, nil)
}

func drawLabel(dst xdraw.Image, rect image.Rectangle, text string) {
	glyphs := textImage(text, headerTextColor)
	if glyphs == nil {
		return
	}

	width := glyphs.Bounds().Dx() * labelScale
	height := glyphs.Bounds().Dy() * labelScale
	left := rect.Min.X + (rect.Dx()-width)/2
	if left < rect.Min.X {
		left = rect.Min.X
	}
	top := rect.Min.Y + (rect.Dy()-height)/2

	xdraw.NearestNeighbor.Scale(dst, image.Rect(left, top, left+width, top+height), glyphs, glyphs.Bounds(), xdraw.Over, nil)
}

// textImage - rasterizes text with the 7x13 bitmap face, nil for empty text.
func textImage(text string, clr color.Color) *image.RGBA {
	face := basicfont.Face7x13

	width := font.MeasureString(face, text).Ceil()
	if width <= 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, width, face.Height))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(text)

	return img
}
