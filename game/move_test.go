package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("simple step", func(t *testing.T) {
		m, err := ParseMove("c2-c3")
		require.NoError(t, err)
		require.Equal(t, 8, m.From)
		require.Equal(t, 13, m.To)
		require.Nil(t, m.Next)
		require.Equal(t, "c2-c3", m.String())
	})

	t.Run("capture chain", func(t *testing.T) {
		m, err := ParseMove("a3-c3-e3")
		require.NoError(t, err)
		require.True(t, m.IsJump())
		require.Len(t, m.Steps(), 2)
		require.Equal(t, []int{12, 14}, m.Captured())
		require.Equal(t, 15, m.LastTo())
		require.Equal(t, "a3-c3-e3", m.String())
	})

	t.Run("malformed notation", func(t *testing.T) {
		for _, bad := range []string{"", "c2", "c2c3", "c2-c33", "c-c3"} {
			_, err := ParseMove(bad)
			require.ErrorIs(t, err, ErrBadNotation, "token %q should be rejected", bad)
		}
	})

	t.Run("off-board squares", func(t *testing.T) {
		for _, bad := range []string{"f1-e1", "a1-a6", "z9-a1"} {
			_, err := ParseMove(bad)
			require.ErrorIs(t, err, ErrInvalidSquare, "token %q should be rejected", bad)
		}
	})
}

func TestMoveVestigial(t *testing.T) {
	require.True(t, Move{}.IsVestigial())
	require.True(t, NewMove(7, 7).IsVestigial())
	require.False(t, NewMove(7, 8).IsVestigial())
	require.Equal(t, "-", Move{}.String())
}

func TestMoveJumped(t *testing.T) {
	require.True(t, NewMove(8, 18).IsJump())
	require.Equal(t, 13, NewMove(8, 18).Jumped())
	require.True(t, NewMove(1, 13).IsJump())
	require.Equal(t, 7, NewMove(1, 13).Jumped())
	require.False(t, NewMove(8, 13).IsJump())
	require.False(t, NewMove(8, 9).IsJump())
}

func TestMoveDirections(t *testing.T) {
	require.True(t, NewMove(8, 13).IsForward())
	require.True(t, NewMove(13, 8).IsBackward())
	require.True(t, NewMove(14, 13).IsLeft())
	require.True(t, NewMove(13, 14).IsRight())
	require.True(t, NewMove(7, 13).IsNorthEast())
	require.True(t, NewMove(9, 13).IsNorthWest())
	require.True(t, NewMove(13, 9).IsSouthEast())
	require.True(t, NewMove(13, 7).IsSouthWest())
	require.False(t, NewMove(8, 13).IsLeft())
	require.False(t, NewMove(8, 13).IsBackward())
}

func TestChainLinks(t *testing.T) {
	a := NewMove(11, 13)
	b := NewMove(13, 15)
	chain := Chain(a, b)

	require.Equal(t, 11, chain.From)
	require.Equal(t, 13, chain.To)
	require.NotNil(t, chain.Next)
	require.Equal(t, 15, chain.Next.To)
	require.Nil(t, chain.Next.Next)
	require.True(t, Chain().IsVestigial())
}

func TestMoveEqualAndPrefix(t *testing.T) {
	a := NewMove(11, 13)
	b := NewMove(13, 15)

	require.True(t, Chain(a, b).Equal(Chain(a, b)))
	require.False(t, Chain(a, b).Equal(Chain(a)))
	require.False(t, Chain(a).Equal(Chain(b)))

	require.True(t, Chain(a).isPrefixOf(Chain(a, b)))
	require.True(t, Chain(a, b).isPrefixOf(Chain(a, b)))
	require.False(t, Chain(a, b).isPrefixOf(Chain(a)))
	require.False(t, Chain(b).isPrefixOf(Chain(a, b)))
}
