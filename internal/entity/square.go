package entity

import "fmt"

// BoardSize is the number of rows and columns.
const BoardSize = 8

// Square addresses a cell. Row 0 is black's home rank, column 0 is the left file.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Square) InRange() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset - returns the square shifted by the given deltas. The result may be out of range.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}
