package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/hotseat-chess/internal/apperror"
	"github.com/rocketscienceinc/hotseat-chess/internal/chess"
	"github.com/rocketscienceinc/hotseat-chess/internal/entity"
	"github.com/rocketscienceinc/hotseat-chess/internal/render"
)

var (
	lightStyle    = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	darkStyle     = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorBlack)
	selectedStyle = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	moveStyle     = tcell.StyleDefault.Background(tcell.ColorLightGreen).Foreground(tcell.ColorBlack)
	labelStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

type uGame interface {
	State(ctx context.Context) chess.View
	ClickPoint(ctx context.Context, x, y int) (chess.View, chess.Outcome, error)
	Subscribe(fn chess.RenderFunc) (unsubscribe func())
}

// UI draws the board on a terminal screen and turns left clicks into board clicks.
type UI struct {
	logger *slog.Logger
	screen tcell.Screen
	game   uGame
	grid   render.Grid

	buttons tcell.ButtonMask
	hint    string
}

// NewGrid - lays the board out below the column header and right of the rank labels.
func NewGrid(cellWidth, cellHeight int) render.Grid {
	return render.Grid{OriginX: 3, OriginY: 1, CellWidth: cellWidth, CellHeight: cellHeight}
}

func New(logger *slog.Logger, screen tcell.Screen, game uGame, grid render.Grid) *UI {
	return &UI{
		logger: logger.With("component", "terminal"),
		screen: screen,
		game:   game,
		grid:   grid,
	}
}

// Run - initializes the screen and processes events until the user quits or ctx is cancelled.
func (that *UI) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	if err := that.screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer that.screen.Fini()

	that.screen.EnableMouse()
	that.screen.Clear()

	unsubscribe := that.game.Subscribe(that.Draw)
	defer unsubscribe()

	that.Draw(that.game.State(ctx))

	go func() {
		<-ctx.Done()
		_ = that.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	log.Info("terminal started")

	for {
		switch ev := that.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventResize:
			that.screen.Sync()
			that.Draw(that.game.State(ctx))
		case *tcell.EventKey:
			if isQuit(ev) {
				log.Info("quit requested")
				return nil
			}
		case *tcell.EventMouse:
			that.handleMouse(ctx, ev)
		}
	}
}

func (that *UI) handleMouse(ctx context.Context, ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && that.buttons&tcell.Button1 == 0
	that.buttons = buttons

	if !pressed {
		return
	}

	x, y := ev.Position()
	that.hint = ""

	view, _, err := that.game.ClickPoint(ctx, x, y)
	switch {
	case errors.Is(err, apperror.ErrOutsideBoard):
		that.hint = "click a square"
		that.Draw(view)
	case err != nil:
		that.logger.Error("failed to handle click", "error", err)
	}
}

// Draw - paints the board, highlights and the status line.
func (that *UI) Draw(view chess.View) {
	that.screen.Clear()

	for col := 0; col < entity.BoardSize; col++ {
		x, _ := that.grid.Origin(entity.Square{Col: col})
		that.drawText(x+that.grid.CellWidth/2, that.grid.OriginY-1, fmt.Sprint(col), labelStyle)
	}

	for row := 0; row < entity.BoardSize; row++ {
		_, y := that.grid.Origin(entity.Square{Row: row})
		that.drawText(that.grid.OriginX-2, y+that.grid.CellHeight/2, fmt.Sprint(row), labelStyle)

		for col := 0; col < entity.BoardSize; col++ {
			that.drawSquare(view, entity.Square{Row: row, Col: col})
		}
	}

	status := view.TurnLabel
	if that.hint != "" {
		status += "  (" + that.hint + ")"
	}
	that.drawText(that.grid.OriginX, that.grid.OriginY+that.grid.Height()+1, status, statusStyle)
	that.drawText(that.grid.OriginX, that.grid.OriginY+that.grid.Height()+2, "q: quit", labelStyle)

	that.screen.Show()
}

func (that *UI) drawSquare(view chess.View, sq entity.Square) {
	style := darkStyle
	if (sq.Row+sq.Col)%2 == 0 {
		style = lightStyle
	}

	switch {
	case view.IsSelected(sq):
		style = selectedStyle
	case view.IsDestination(sq):
		style = moveStyle
	}

	x0, y0 := that.grid.Origin(sq)
	for y := y0; y < y0+that.grid.CellHeight; y++ {
		for x := x0; x < x0+that.grid.CellWidth; x++ {
			that.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	if piece, ok := view.PieceAt(sq); ok {
		glyph := []rune(piece.Symbol())[0]
		that.screen.SetContent(x0+that.grid.CellWidth/2, y0+that.grid.CellHeight/2, glyph, nil, style)
	}
}

func (that *UI) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		that.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	default:
		return false
	}
}
