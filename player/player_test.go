package player

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"qirkat/game"
	"qirkat/searcher"
)

func tokenSource(tokens ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		if i >= len(tokens) {
			return "", io.EOF
		}
		t := tokens[i]
		i++
		return t, nil
	}
}

// stuckWhite is a position where white, on move, has nothing to play: a
// lone piece on a5 can only step sideways onto its far rank, which the
// rules forbid.
func stuckWhite(t *testing.T) *game.Board {
	t.Helper()
	b := game.NewBoard()
	require.NoError(t, b.SetPieces(
		"----- ----- ----- ----- w----", game.White))
	return b
}

func TestManual(t *testing.T) {
	t.Run("legal token becomes a move", func(t *testing.T) {
		p := NewManual(game.White, tokenSource("c2-c3"))
		b := game.NewBoard()

		m, err := p.FindMove(b)
		require.NoError(t, err)
		require.Equal(t, "c2-c3", m.String())
		require.NoError(t, b.Apply(m))
	})

	t.Run("malformed token", func(t *testing.T) {
		p := NewManual(game.White, tokenSource("c2"))
		_, err := p.FindMove(game.NewBoard())
		require.ErrorIs(t, err, game.ErrBadNotation)
	})

	t.Run("off-board token", func(t *testing.T) {
		p := NewManual(game.White, tokenSource("f1-e1"))
		_, err := p.FindMove(game.NewBoard())
		require.ErrorIs(t, err, game.ErrInvalidSquare)
	})

	t.Run("illegal move", func(t *testing.T) {
		p := NewManual(game.White, tokenSource("a1-a2"))
		_, err := p.FindMove(game.NewBoard())
		require.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("source errors surface", func(t *testing.T) {
		p := NewManual(game.White, tokenSource())
		_, err := p.FindMove(game.NewBoard())
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("nil source panics", func(t *testing.T) {
		require.Panics(t, func() { NewManual(game.White, nil) })
	})
}

func TestRandom(t *testing.T) {
	t.Run("plays a legal move", func(t *testing.T) {
		b := game.NewBoard()
		p := NewRandom(game.White, 1)

		m, err := p.FindMove(b)
		require.NoError(t, err)
		require.True(t, b.IsLegal(m))
	})

	t.Run("stuck position", func(t *testing.T) {
		p := NewRandom(game.White, 1)
		_, err := p.FindMove(stuckWhite(t))
		require.True(t, errors.Is(err, ErrNoMove))
	})
}

func TestAI(t *testing.T) {
	t.Run("plays a legal move", func(t *testing.T) {
		b := game.NewBoard()
		p := NewAI(game.White, searcher.WithDepth(2))

		m, err := p.FindMove(b)
		require.NoError(t, err)
		require.True(t, b.IsLegal(m))
		require.Equal(t, game.White, p.Color())
	})

	t.Run("stuck position", func(t *testing.T) {
		p := NewAI(game.White, searcher.WithDepth(1))
		_, err := p.FindMove(stuckWhite(t))
		require.ErrorIs(t, err, ErrNoMove)
	})
}
