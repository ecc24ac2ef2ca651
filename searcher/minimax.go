package searcher

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"qirkat/game"
)

// DefaultDepth is the search depth used when no option overrides it.
// Depth 1 gives the shallow baseline; the logic is identical at every
// depth.
const DefaultDepth = 8

type Option func(*Minimax)

// WithDepth sets the maximum search depth before falling back to the
// static evaluation.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		m.depth = depth
	}
}

// Minimax is a depth-limited adversarial searcher with alpha-beta
// pruning. One instance serves one searching side per call; it always
// works on a private copy of the position, so minimax probes never
// touch the caller's board.
type Minimax struct {
	depth int

	// per-search state
	pov     game.Piece
	best    game.Move
	found   bool
	nodes   int
	cutoffs int
}

// New returns a searcher configured by the given options.
func New(options ...Option) *Minimax {
	m := &Minimax{depth: DefaultDepth}
	for _, option := range options {
		option(m)
	}
	if m.depth <= 0 {
		panic("searcher: depth must be positive")
	}
	return m
}

// Depth returns the configured maximum search depth.
func (m *Minimax) Depth() int {
	return m.depth
}

// FindMove searches the position for pov and returns the best move
// found. It errors when pov's side has no legal move to make.
func (m *Minimax) FindMove(v game.View, pov game.Piece) (game.Move, error) {
	board := v.Copy()
	m.pov = pov
	m.best, m.found = game.Move{}, false
	m.nodes, m.cutoffs = 0, 0

	start := time.Now()
	value := m.search(board, m.depth, 1, -game.Infinity, game.Infinity, true)
	log.Debug().
		Int("depth", m.depth).
		Int("nodes", m.nodes).
		Int("cutoffs", m.cutoffs).
		Int("value", value).
		Dur("elapsed", time.Since(start)).
		Msgf("search complete for %s", pov)

	if !m.found {
		return game.Move{}, fmt.Errorf("no legal move for %s", pov)
	}
	return m.best, nil
}

// search returns the value of the position for pov, looking depth plies
// ahead. sense is +1 at nodes where pov is on move (maximizing) and -1
// otherwise; one loop serves both polarities. Every Apply is paired
// with exactly one Undo before any pruning exit, so probes can never
// leak state across sibling branches.
func (m *Minimax) search(b *game.Board, depth, sense, alpha, beta int, save bool) int {
	m.nodes++
	moves := b.LegalMoves()
	if len(moves) == 0 {
		// The side on move is stuck and has lost. Saturate so the
		// result outranks any mobility value.
		return -sense * game.WinScore
	}
	if depth == 0 {
		return game.Mobility(b, m.pov)
	}

	bestSoFar := -sense * game.Infinity
	for _, mv := range moves {
		if err := b.Apply(mv); err != nil {
			panic(fmt.Sprintf("searcher: generated move rejected: %v", err))
		}
		value := m.search(b, depth-1, -sense, alpha, beta, false)
		if err := b.Undo(); err != nil {
			panic(fmt.Sprintf("searcher: unbalanced undo: %v", err))
		}
		if sense*value > sense*bestSoFar {
			bestSoFar = value
			if save {
				m.best, m.found = mv, true
			}
			if sense > 0 {
				alpha = max(alpha, value)
			} else {
				beta = min(beta, value)
			}
		}
		if beta <= alpha {
			m.cutoffs++
			break
		}
	}
	return bestSoFar
}
