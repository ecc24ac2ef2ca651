package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexBijection(t *testing.T) {
	seen := map[int]bool{}
	for c := byte('a'); c <= 'e'; c++ {
		for r := byte('1'); r <= '5'; r++ {
			k, err := Index(c, r)
			require.NoError(t, err)
			require.True(t, ValidIndex(k))
			require.False(t, seen[k], "index %d produced twice", k)
			seen[k] = true
			require.Equal(t, c, Col(k))
			require.Equal(t, r, Row(k))
		}
	}
	require.Len(t, seen, MaxIndex)
}

func TestIndexCorners(t *testing.T) {
	for _, tc := range []struct {
		name string
		want int
	}{
		{"a1", 1}, {"e1", 5}, {"a3", 11}, {"c3", 13}, {"e3", 15}, {"a5", 21}, {"e5", 25},
	} {
		k, err := Index(tc.name[0], tc.name[1])
		require.NoError(t, err)
		require.Equal(t, tc.want, k)
		require.Equal(t, tc.name, SquareName(k))
	}
}

func TestIndexRejectsOffBoard(t *testing.T) {
	for _, bad := range []string{"f1", "a6", "a0", "`3", "e6"} {
		_, err := Index(bad[0], bad[1])
		require.ErrorIs(t, err, ErrInvalidSquare, "coordinates %q should be rejected", bad)
	}
	require.False(t, ValidIndex(0))
	require.False(t, ValidIndex(26))
	require.False(t, ValidIndex(-3))
}

func TestIsOdd(t *testing.T) {
	for k := 1; k <= MaxIndex; k++ {
		require.Equal(t, k%2 == 1, IsOdd(k))
	}
}

func TestNeighbor(t *testing.T) {
	t.Run("interior square reaches all eight directions", func(t *testing.T) {
		for _, tc := range []struct {
			dc, dr int
			want   int
		}{
			{-1, 0, 12}, {1, 0, 14}, {0, 1, 18}, {0, -1, 8},
			{1, 1, 19}, {-1, 1, 17}, {1, -1, 9}, {-1, -1, 7},
		} {
			got, ok := Neighbor(13, tc.dc, tc.dr)
			require.True(t, ok)
			require.Equal(t, tc.want, got)
		}
	})

	t.Run("edges do not wrap", func(t *testing.T) {
		_, ok := Neighbor(5, 1, 0) // e1, rightward
		require.False(t, ok)
		_, ok = Neighbor(6, -1, 0) // a2, leftward
		require.False(t, ok)
		_, ok = Neighbor(5, 1, 1) // e1, northeast
		require.False(t, ok)
		_, ok = Neighbor(21, 0, 1) // a5, upward
		require.False(t, ok)
		_, ok = Neighbor(1, -1, -1) // a1, southwest
		require.False(t, ok)
	})
}
