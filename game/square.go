package game

import "fmt"

// Squares are identified by a linearized index in [1, MaxIndex]: the
// number of the square in row-major order, with row 1 the bottom row and
// column a the leftmost. Odd indices carry the diagonal lines of the
// cross-hatched board, so diagonal movement exists only from them.

const (
	// Side is the edge length of the board.
	Side = 5
	// MaxIndex is the highest linearized square index.
	MaxIndex = Side * Side
)

// ErrInvalidSquare reports a coordinate or index outside the board.
var ErrInvalidSquare = fmt.Errorf("invalid square")

// Index returns the linearized index of column c ('a'..'e') and row r
// ('1'..'5').
func Index(c, r byte) (int, error) {
	if !ValidColRow(c, r) {
		return 0, fmt.Errorf("%w: %c%c", ErrInvalidSquare, c, r)
	}
	return int(r-'1')*Side + int(c-'a') + 1, nil
}

// Col returns the column letter ('a'..'e') of square k.
func Col(k int) byte {
	return byte((k-1)%Side) + 'a'
}

// Row returns the row digit ('1'..'5') of square k.
func Row(k int) byte {
	return byte((k-1)/Side) + '1'
}

// ValidIndex reports whether k is a linearized square index.
func ValidIndex(k int) bool {
	return k >= 1 && k <= MaxIndex
}

// ValidColRow reports whether column c and row r name a square.
func ValidColRow(c, r byte) bool {
	return c >= 'a' && c < 'a'+Side && r >= '1' && r < '1'+Side
}

// IsOdd reports whether square k lies on the diagonal lines of the
// board.
func IsOdd(k int) bool {
	return k%2 == 1
}

// Neighbor returns the square dc columns and dr rows away from k, or
// ok == false when that square is off the board. All movement geometry
// goes through here, so column arithmetic can never wrap across an
// edge.
func Neighbor(k, dc, dr int) (int, bool) {
	c := int(Col(k)-'a') + dc
	r := int(Row(k)-'1') + dr
	if c < 0 || c >= Side || r < 0 || r >= Side {
		return 0, false
	}
	return r*Side + c + 1, true
}

// SquareName returns the notation of square k, e.g. "c3".
func SquareName(k int) string {
	return string([]byte{Col(k), Row(k)})
}

type delta struct {
	dc, dr int
}

// Orthogonal directions exist from every square; diagonal ones only
// from odd squares.
var (
	orthogonals = [4]delta{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}
	diagonals   = [4]delta{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)
