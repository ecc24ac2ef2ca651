package game

import "math"

// Scoring bounds shared by the evaluator and the search engine.
const (
	// Infinity exceeds every reachable position value.
	Infinity = math.MaxInt32
	// WinScore is the saturating value of a forced win (for pov if
	// positive, against if negative). It strictly dominates every
	// mobility-based score.
	WinScore = Infinity - 1
)

// Mobility is the static evaluator: the number of legal moves open to
// the side on move, signed positive when it is pov's turn and negative
// otherwise. A side with no move has lost, which saturates the score.
func Mobility(b *Board, pov Piece) int {
	n := len(b.LegalMoves())
	if b.WhoseMove() == pov {
		if n == 0 {
			return -WinScore
		}
		return n
	}
	if n == 0 {
		return WinScore
	}
	return -n
}
