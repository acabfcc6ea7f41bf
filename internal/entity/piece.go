package entity

import (
	"fmt"
	"strings"
)

// Kind is the closed set of chess piece types. The zero value marks an empty cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindPawn
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing
)

var kindNames = [...]string{
	KindNone:   "",
	KindPawn:   "pawn",
	KindKnight: "knight",
	KindBishop: "bishop",
	KindRook:   "rook",
	KindQueen:  "queen",
	KindKing:   "king",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind - returns the kind for its lowercase name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := KindPawn; k <= KindKing; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown piece kind %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Color identifies a side.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent - returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Title - returns the capitalized name used in UI labels.
func (c Color) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Piece is an immutable kind+color value. It carries no identity of its own.
type Piece struct {
	Kind  Kind  `json:"kind"`
	Color Color `json:"color"`
}

func (p Piece) String() string {
	return string(p.Color) + " " + p.Kind.String()
}

var (
	whiteSymbols = map[Kind]string{
		KindKing: "♔", KindQueen: "♕", KindRook: "♖", KindBishop: "♗", KindKnight: "♘", KindPawn: "♙",
	}
	blackSymbols = map[Kind]string{
		KindKing: "♚", KindQueen: "♛", KindRook: "♜", KindBishop: "♝", KindKnight: "♞", KindPawn: "♟",
	}
	letters = map[Kind]string{
		KindKing: "K", KindQueen: "Q", KindRook: "R", KindBishop: "B", KindKnight: "N", KindPawn: "P",
	}
)

// Symbol - returns the unicode chess glyph for the piece.
func (p Piece) Symbol() string {
	if p.Color == White {
		return whiteSymbols[p.Kind]
	}
	return blackSymbols[p.Kind]
}

// Letter - returns the one-letter code, uppercase for white and lowercase for black.
func (p Piece) Letter() string {
	if p.Color == White {
		return letters[p.Kind]
	}
	return strings.ToLower(letters[p.Kind])
}
