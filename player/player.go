package player

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"qirkat/game"
)

// ErrNoMove signals that a player has no legal move available.
var ErrNoMove = errors.New("no move available")

// Player produces one legal move per turn, given the current position,
// or signals that no move is available.
type Player interface {
	Color() game.Piece
	FindMove(v game.View) (game.Move, error)
}

// Manual is the human-input adapter: it translates already-read move
// tokens into Move values and validates them against the board. It
// does no I/O of its own; the source callback supplies the next token.
type Manual struct {
	color  game.Piece
	source func() (string, error)
}

// NewManual returns a manual player for color taking tokens from
// source.
func NewManual(color game.Piece, source func() (string, error)) *Manual {
	if source == nil {
		panic("player: manual player needs a token source")
	}
	return &Manual{color: color, source: source}
}

func (p *Manual) Color() game.Piece {
	return p.color
}

// FindMove reads one token, parses it and checks it against the
// current position. Malformed or illegal tokens come back as errors
// for the caller to re-prompt on.
func (p *Manual) FindMove(v game.View) (game.Move, error) {
	token, err := p.source()
	if err != nil {
		return game.Move{}, err
	}
	m, err := game.ParseMove(token)
	if err != nil {
		return game.Move{}, err
	}
	if !v.IsLegal(m) {
		return game.Move{}, fmt.Errorf("%w: %s", game.ErrIllegalMove, m)
	}
	return m, nil
}

// Random plays a uniformly random legal move. Useful as a baseline
// opponent.
type Random struct {
	color game.Piece
	rng   *rand.Rand
}

// NewRandom returns a random player for color seeded with seed.
func NewRandom(color game.Piece, seed uint64) *Random {
	return &Random{color: color, rng: rand.New(rand.NewSource(seed))}
}

func (p *Random) Color() game.Piece {
	return p.color
}

func (p *Random) FindMove(v game.View) (game.Move, error) {
	moves := v.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoMove
	}
	return moves[p.rng.Intn(len(moves))], nil
}
