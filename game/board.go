package game

import (
	"fmt"
	"strings"
	"unicode"
)

// Sentinel errors for the board's failure modes. Callers match them
// with errors.Is.
var (
	// ErrIllegalMove reports a move rejected by the rules in the
	// current position. Apply leaves the board untouched when it
	// returns this.
	ErrIllegalMove = fmt.Errorf("illegal move")
	// ErrBadBoardString reports a board description that fails
	// length or alphabet validation.
	ErrBadBoardString = fmt.Errorf("bad board description")
	// ErrEmptyHistory reports an Undo with no move to undo.
	ErrEmptyHistory = fmt.Errorf("no move to undo")
)

// startingPosition is the canonical initial layout, row 1 first.
const startingPosition = "wwwww wwwww bb-ww bbbbb bbbbb"

// View is a read-only capability on a Board: every query, none of the
// mutators. Subscribers and players receive a View; anything that
// needs to probe moves destructively takes its own Copy first.
type View interface {
	Get(k int) Piece
	At(c, r byte) (Piece, error)
	WhoseMove() Piece
	LegalMoves() []Move
	IsLegal(m Move) bool
	JumpPossible() bool
	GameOver() bool
	Stuck(side Piece) bool
	Winner() Piece
	History() []Move
	LastMove() (Move, bool)
	Copy() *Board
	Render(legend bool) string
	String() string
}

// Board is the full mutable game state: piece placement, side to move
// and the ordered history of applied moves. The history matters for
// legality: a lateral step may not exactly reverse either of the two
// most recent half-moves.
//
// Boards are not safe for concurrent use. Search engines must operate
// on their own Copy, never on the authoritative board.
type Board struct {
	cells     [MaxIndex + 1]Piece // index 0 unused
	whoseMove Piece
	history   []Move
	observers []func(View)
}

// NewBoard returns a board in the starting position, White to move.
func NewBoard() *Board {
	b := &Board{}
	if err := b.load(startingPosition, White); err != nil {
		panic(err)
	}
	return b
}

// Copy returns a board with identical position, side to move and
// history, sharing nothing mutable with b. Observers are not copied.
func (b *Board) Copy() *Board {
	nb := &Board{cells: b.cells, whoseMove: b.whoseMove}
	nb.history = append([]Move(nil), b.history...)
	return nb
}

// Clear resets b to the starting position and notifies observers.
func (b *Board) Clear() {
	if err := b.load(startingPosition, White); err != nil {
		panic(err)
	}
	b.notify()
}

// SetPieces loads a position from a 25-character description drawn from
// {b, w, -} (case-insensitive, whitespace ignored), row-major starting
// at row 1, with side to move next. Malformed input leaves the board
// unchanged. History is discarded; observers are notified once.
func (b *Board) SetPieces(str string, side Piece) error {
	if err := b.load(str, side); err != nil {
		return err
	}
	b.notify()
	return nil
}

func (b *Board) load(str string, side Piece) error {
	if side != White && side != Black {
		return fmt.Errorf("side to move must be white or black, got %v", side)
	}
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, str)
	if len(cleaned) != MaxIndex {
		return fmt.Errorf("%w: want %d squares, got %d", ErrBadBoardString, MaxIndex, len(cleaned))
	}
	var cells [MaxIndex + 1]Piece
	for i := 0; i < MaxIndex; i++ {
		p, err := parsePiece(cleaned[i])
		if err != nil {
			return err
		}
		cells[i+1] = p
	}
	b.cells = cells
	b.whoseMove = side
	b.history = nil
	return nil
}

// OnChange registers fn to be called synchronously, once per committed
// top-level mutation (Apply, Undo, Clear, SetPieces). fn must not
// mutate the board it is handed.
func (b *Board) OnChange(fn func(View)) {
	b.observers = append(b.observers, fn)
}

func (b *Board) notify() {
	for _, fn := range b.observers {
		fn(b)
	}
}

// Get returns the contents of square k. k must be a valid index; an
// out-of-range k is a programmer error.
func (b *Board) Get(k int) Piece {
	if !ValidIndex(k) {
		panic(fmt.Sprintf("square index %d out of range", k))
	}
	return b.cells[k]
}

// At returns the contents of the square at column c, row r, rejecting
// out-of-board coordinates.
func (b *Board) At(c, r byte) (Piece, error) {
	k, err := Index(c, r)
	if err != nil {
		return Empty, err
	}
	return b.cells[k], nil
}

// WhoseMove returns the side to move.
func (b *Board) WhoseMove() Piece {
	return b.whoseMove
}

// History returns a copy of the applied top-level moves, oldest first.
func (b *Board) History() []Move {
	return append([]Move(nil), b.history...)
}

// LastMove returns the most recent top-level move, if any.
func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1], true
}

// Equal reports whether two boards hold the same position with the
// same side to move. History is not compared.
func (b *Board) Equal(o *Board) bool {
	return b.cells == o.cells && b.whoseMove == o.whoseMove
}

// IsLegal reports whether m may be played by the side to move. The
// mandatory-capture rule is enforced by LegalMoves, not here: a simple
// step can be individually legal even while a capture exists
// elsewhere.
func (b *Board) IsLegal(m Move) bool {
	return b.legalFor(m, b.whoseMove)
}

func (b *Board) legalFor(m Move, side Piece) bool {
	if m.IsVestigial() || !ValidIndex(m.From) || !ValidIndex(m.To) {
		return false
	}
	if m.IsJump() {
		return b.legalChain(m, side)
	}
	if m.Next != nil {
		return false
	}
	return b.legalStep(m, side)
}

// legalStep checks a simple step: own piece, empty destination, a
// direction permitted for side and the origin's parity, and the two
// lateral restrictions (anti-shuffle, far rank).
func (b *Board) legalStep(m Move, side Piece) bool {
	if b.cells[m.From] != side || b.cells[m.To] != Empty {
		return false
	}
	dc, dr := m.delta()
	if dc < -1 || dc > 1 || dr < -1 || dr > 1 {
		return false
	}
	if dc != 0 && dr != 0 && !IsOdd(m.From) {
		return false
	}
	if m.IsLeft() || m.IsRight() {
		if b.reversesRecent(m) {
			return false
		}
		// A lateral step may not end on the rank the mover is
		// advancing toward.
		if side == White && Row(m.To) == '0'+Side {
			return false
		}
		if side == Black && Row(m.To) == '1' {
			return false
		}
		return true
	}
	if side == White {
		return m.IsForward() || m.IsNorthEast() || m.IsNorthWest()
	}
	return m.IsBackward() || m.IsSouthEast() || m.IsSouthWest()
}

// reversesRecent reports whether m exactly reverses one of the two most
// recent half-moves.
func (b *Board) reversesRecent(m Move) bool {
	tail := b.history
	if len(tail) > 2 {
		tail = tail[len(tail)-2:]
	}
	for _, prev := range tail {
		if prev.From == m.To && prev.To == m.From {
			return true
		}
	}
	return false
}

// legalChain checks a capture chain against a simulated progression of
// the position: every step must jump an opponent piece not already
// captured in this chain onto an empty square, with diagonal jumps only
// from odd origins. The origin square counts as occupied throughout, so
// a chain may not cycle back onto it.
func (b *Board) legalChain(m Move, side Piece) bool {
	if b.cells[m.From] != side {
		return false
	}
	cells := b.cells
	for s := &m; s != nil; s = s.Next {
		if !ValidIndex(s.From) || !ValidIndex(s.To) || !s.IsJump() {
			return false
		}
		dc, dr := s.delta()
		if dc != 0 && dr != 0 && !IsOdd(s.From) {
			return false
		}
		mid := s.Jumped()
		if cells[mid] != side.Opposite() || cells[s.To] != Empty {
			return false
		}
		cells[mid] = Empty
		if s.Next != nil {
			if s.Next.From != s.To {
				return false
			}
			continue // the piece moves on; s.To stays empty
		}
		cells[s.To] = side
	}
	return true
}

// Apply plays m for the side to move. An illegal move is rejected with
// ErrIllegalMove and the board is left untouched. A capture chain is
// executed step by step without re-validation; the side to move flips
// exactly once and observers are notified exactly once for the whole
// chain.
func (b *Board) Apply(m Move) error {
	if !b.IsLegal(m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	side := b.whoseMove
	for _, s := range m.Steps() {
		b.cells[s.From] = Empty
		b.cells[s.To] = side
		if s.IsJump() {
			b.cells[s.Jumped()] = Empty
		}
	}
	b.whoseMove = side.Opposite()
	b.history = append(b.history, m)
	b.notify()
	return nil
}

// Undo reverses the most recent top-level move, restoring captured
// pieces and the side to move, and notifies observers once. Undo with
// no history is a caller-contract violation reported as
// ErrEmptyHistory; the board is left untouched.
func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return ErrEmptyHistory
	}
	m := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	mover := b.whoseMove.Opposite()
	steps := m.Steps()
	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		b.cells[s.To] = Empty
		if s.IsJump() {
			b.cells[s.Jumped()] = mover.Opposite()
		}
	}
	b.cells[m.From] = mover
	b.whoseMove = mover
	b.notify()
	return nil
}

// GameOver reports whether the game has ended: the side to move has no
// legal move.
func (b *Board) GameOver() bool {
	return len(b.LegalMoves()) == 0
}

// Stuck reports whether the given side would have no legal move if it
// were on move, without disturbing the real side to move.
func (b *Board) Stuck(side Piece) bool {
	return len(b.legalMovesFor(side)) == 0
}

// Winner returns the side that left its opponent without a move, or
// Empty while the game is still running.
func (b *Board) Winner() Piece {
	if !b.GameOver() {
		return Empty
	}
	return b.whoseMove.Opposite()
}

func (b *Board) String() string {
	return b.Render(false)
}

// Render returns a text depiction of the board, top row first. With
// legend, row digits run down the left edge and column letters along
// the bottom; without, the grid is bordered by marker lines.
func (b *Board) Render(legend bool) string {
	var sb strings.Builder
	if !legend {
		sb.WriteString("===\n")
	}
	for r := byte('0' + Side); r >= '1'; r-- {
		if legend {
			sb.WriteByte(r)
			sb.WriteByte(' ')
		}
		sb.WriteByte(' ')
		for c := byte('a'); c < 'a'+Side; c++ {
			k, _ := Index(c, r)
			if c > 'a' {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b.cells[k].symbol())
		}
		sb.WriteByte('\n')
	}
	if legend {
		sb.WriteString("   a b c d e")
	} else {
		sb.WriteString("===")
	}
	return sb.String()
}
