package game

import (
	"fmt"
	"strings"
)

// Piece is the contents of one square.
type Piece int

const (
	Empty Piece = iota
	White
	Black
)

// Opposite returns the other color. Empty has no opposite and returns
// Empty.
func (p Piece) Opposite() Piece {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "empty"
	}
}

// symbol is the single-character board-string form of p.
func (p Piece) symbol() byte {
	switch p {
	case White:
		return 'w'
	case Black:
		return 'b'
	default:
		return '-'
	}
}

func parsePiece(ch byte) (Piece, error) {
	switch ch {
	case 'w', 'W':
		return White, nil
	case 'b', 'B':
		return Black, nil
	case '-':
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: piece %q", ErrBadBoardString, ch)
	}
}

// ParseSide converts a side-to-move token ("white" or "black", any
// case) into a Piece.
func ParseSide(s string) (Piece, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return Empty, fmt.Errorf("side to move must be white or black, got %q", s)
	}
}
