package game

import (
	"fmt"
	"strings"
)

// ErrBadNotation reports a move token that does not parse as
// <col><row>-<col><row>[-<col><row>...].
var ErrBadNotation = fmt.Errorf("bad move notation")

// Move is one unit of play: a simple step to an adjacent square, a
// capture jumping an adjacent enemy piece, or the head of a linked
// chain of captures played as a single turn. The zero value is the
// vestigial sentinel ("no move"), which no query or mutator accepts.
//
// A Move is immutable once built; chain links are traversed, never
// rewritten.
type Move struct {
	From int
	To   int
	Next *Move
}

// NewMove returns the single step from one square to another.
func NewMove(from, to int) Move {
	return Move{From: from, To: to}
}

// Chain links the given capture steps into one move. Each step's
// destination is expected to be the next step's origin. Chain of no
// steps is the vestigial move.
func Chain(steps ...Move) Move {
	if len(steps) == 0 {
		return Move{}
	}
	head := steps[len(steps)-1]
	head.Next = nil
	for i := len(steps) - 2; i >= 0; i-- {
		next := head
		head = steps[i]
		head.Next = &next
	}
	return head
}

// IsVestigial reports whether m is the zero-length placeholder move.
func (m Move) IsVestigial() bool {
	return m.From == m.To
}

// delta returns the column and row displacement of the first step.
func (m Move) delta() (dc, dr int) {
	return int(Col(m.To)) - int(Col(m.From)), int(Row(m.To)) - int(Row(m.From))
}

// IsJump reports whether the first step of m is a capture: a straight
// two-square displacement, orthogonal or diagonal.
func (m Move) IsJump() bool {
	if m.IsVestigial() || !ValidIndex(m.From) || !ValidIndex(m.To) {
		return false
	}
	dc, dr := m.delta()
	return (dc == 0 || dc == 2 || dc == -2) &&
		(dr == 0 || dr == 2 || dr == -2) &&
		(dc != 0 || dr != 0)
}

// Jumped returns the square captured by the first step of m. Only
// meaningful when IsJump.
func (m Move) Jumped() int {
	return (m.From + m.To) / 2
}

// IsLeft reports whether m's first step moves toward column a on the
// same row.
func (m Move) IsLeft() bool {
	dc, dr := m.delta()
	return dc < 0 && dr == 0
}

// IsRight reports whether m's first step moves toward column e on the
// same row.
func (m Move) IsRight() bool {
	dc, dr := m.delta()
	return dc > 0 && dr == 0
}

// IsForward reports whether m's first step moves straight toward row 5,
// White's direction of play.
func (m Move) IsForward() bool {
	dc, dr := m.delta()
	return dc == 0 && dr > 0
}

// IsBackward reports whether m's first step moves straight toward row
// 1, Black's direction of play.
func (m Move) IsBackward() bool {
	dc, dr := m.delta()
	return dc == 0 && dr < 0
}

func (m Move) IsNorthEast() bool {
	dc, dr := m.delta()
	return dc > 0 && dr > 0
}

func (m Move) IsNorthWest() bool {
	dc, dr := m.delta()
	return dc < 0 && dr > 0
}

func (m Move) IsSouthEast() bool {
	dc, dr := m.delta()
	return dc > 0 && dr < 0
}

func (m Move) IsSouthWest() bool {
	dc, dr := m.delta()
	return dc < 0 && dr < 0
}

// Steps flattens the chain into its individual steps, in playing order,
// with the links cleared.
func (m Move) Steps() []Move {
	var steps []Move
	for s := &m; s != nil; s = s.Next {
		steps = append(steps, Move{From: s.From, To: s.To})
	}
	return steps
}

// LastTo returns the square the moving piece finally lands on.
func (m Move) LastTo() int {
	s := &m
	for s.Next != nil {
		s = s.Next
	}
	return s.To
}

// Captured returns the squares jumped by the chain, in capture order.
// Empty for a simple step.
func (m Move) Captured() []int {
	var captured []int
	for s := &m; s != nil; s = s.Next {
		if s.IsJump() {
			captured = append(captured, s.Jumped())
		}
	}
	return captured
}

// Equal reports whether two moves play the same steps.
func (m Move) Equal(o Move) bool {
	a, b := &m, &o
	for a != nil && b != nil {
		if a.From != b.From || a.To != b.To {
			return false
		}
		a, b = a.Next, b.Next
	}
	return a == nil && b == nil
}

// isPrefixOf reports whether m's steps form a leading subsequence of
// o's steps.
func (m Move) isPrefixOf(o Move) bool {
	a, b := &m, &o
	for a != nil {
		if b == nil || a.From != b.From || a.To != b.To {
			return false
		}
		a, b = a.Next, b.Next
	}
	return true
}

// String renders m in move notation: "c2-c3", or "a3-c3-e3" for a
// chain. The vestigial move renders as "-".
func (m Move) String() string {
	if m.IsVestigial() {
		return "-"
	}
	var sb strings.Builder
	sb.WriteString(SquareName(m.From))
	for s := &m; s != nil; s = s.Next {
		sb.WriteByte('-')
		sb.WriteString(SquareName(s.To))
	}
	return sb.String()
}

// ParseMove converts move notation into a Move. Two squares make a
// simple step or a single capture; three or more make a capture chain.
// Board legality is not checked here.
func ParseMove(s string) (Move, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) < 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	squares := make([]int, len(parts))
	for i, p := range parts {
		if len(p) != 2 {
			return Move{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
		}
		k, err := Index(p[0], p[1])
		if err != nil {
			return Move{}, fmt.Errorf("%w in %q", err, s)
		}
		squares[i] = k
	}
	steps := make([]Move, len(squares)-1)
	for i := range steps {
		steps[i] = NewMove(squares[i], squares[i+1])
	}
	return Chain(steps...), nil
}
