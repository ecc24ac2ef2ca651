package engine

import "qirkat/game"

// MaxMoves caps the number of half-moves before a game is declared
// drawn, guarding against endless maneuvering.
const MaxMoves = 500

type Engine interface {
	// Run plays a game to completion and returns the winner, or
	// Empty for a draw.
	Run() (game.Piece, error)
}
