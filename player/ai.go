package player

import (
	"time"

	"github.com/rs/zerolog/log"

	"qirkat/game"
	"qirkat/searcher"
)

// AI computes its own moves with the minimax searcher.
type AI struct {
	color   game.Piece
	minimax *searcher.Minimax
}

// NewAI returns a search-based player for color. Options are passed
// through to the searcher.
func NewAI(color game.Piece, options ...searcher.Option) *AI {
	return &AI{color: color, minimax: searcher.New(options...)}
}

func (p *AI) Color() game.Piece {
	return p.color
}

// FindMove searches the position and announces the chosen move.
func (p *AI) FindMove(v game.View) (game.Move, error) {
	if len(v.LegalMoves()) == 0 {
		return game.Move{}, ErrNoMove
	}
	start := time.Now()
	m, err := p.minimax.FindMove(v, p.color)
	if err != nil {
		return game.Move{}, err
	}
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("depth", p.minimax.Depth()).
		Msgf("%s moves %s.", p.color, m)
	return m, nil
}
