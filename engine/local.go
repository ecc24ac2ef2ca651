package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"qirkat/game"
	"qirkat/player"
)

// Local drives a game between two players on the authoritative board.
// Players only ever see a read-only view; the engine alone applies
// moves.
type Local struct {
	board   *game.Board
	players map[game.Piece]player.Player
	id      uuid.UUID
	log     zerolog.Logger
}

// NewLocal returns an engine for a fresh game between white and black.
func NewLocal(white, black player.Player) *Local {
	if white == nil || black == nil {
		panic("engine: both players are required")
	}
	id := uuid.New()
	return &Local{
		board: game.NewBoard(),
		players: map[game.Piece]player.Player{
			game.White: white,
			game.Black: black,
		},
		id:  id,
		log: log.With().Str("game", id.String()).Logger(),
	}
}

// Board returns a read-only view of the authoritative board.
func (l *Local) Board() game.View {
	return l.board
}

// OnChange subscribes fn to the authoritative board's change
// notifications.
func (l *Local) OnChange(fn func(game.View)) {
	l.board.OnChange(fn)
}

// Run plays until one side has no legal move, returning the winner.
// A game still open after MaxMoves half-moves is a draw (Empty). A
// player failing to produce a legal move aborts the game with an
// error.
func (l *Local) Run() (game.Piece, error) {
	l.log.Info().Msgf("%s is starting", game.White)
	for n := 0; n < MaxMoves; n++ {
		if l.board.GameOver() {
			winner := l.board.Winner()
			l.log.Info().Msgf("%s wins after %d half-moves", winner, n)
			return winner, nil
		}
		side := l.board.WhoseMove()
		m, err := l.players[side].FindMove(l.board)
		if err != nil {
			return game.Empty, fmt.Errorf("%s to move: %w", side, err)
		}
		if err := l.board.Apply(m); err != nil {
			return game.Empty, fmt.Errorf("%s played %s: %w", side, m, err)
		}
		l.log.Debug().Msgf("%s played %s", side, m)
	}
	l.log.Info().Msgf("no winner after %d half-moves", MaxMoves)
	return game.Empty, nil
}
