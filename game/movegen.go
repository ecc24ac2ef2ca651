package game

import "sort"

// Move generation. Captures are mandatory: whenever any capture exists
// for the side to move, only capture chains are legal, each extended to
// maximal length. Chains are enumerated without mutating the board; a
// per-branch set of captured squares keeps a piece from being jumped
// twice within one chain while leaving sibling branches independent.

// LegalMoves returns every legal move for the side to move, in a
// deterministic order. When a capture is available the result holds
// only maximal capture chains; otherwise every legal simple step.
func (b *Board) LegalMoves() []Move {
	return b.legalMovesFor(b.whoseMove)
}

func (b *Board) legalMovesFor(side Piece) []Move {
	var moves []Move
	if b.jumpPossibleFor(side) {
		for k := 1; k <= MaxIndex; k++ {
			if b.cells[k] == side {
				b.jumpsFrom(k, side, &moves)
			}
		}
		moves = pruneSubsumed(moves)
	} else {
		for k := 1; k <= MaxIndex; k++ {
			if b.cells[k] == side {
				b.stepsFrom(k, side, &moves)
			}
		}
	}
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].String() < moves[j].String()
	})
	return moves
}

// MovesFrom returns the legal simple steps available to the side to
// move from square k.
func (b *Board) MovesFrom(k int) []Move {
	var moves []Move
	if ValidIndex(k) && b.cells[k] == b.whoseMove {
		b.stepsFrom(k, b.whoseMove, &moves)
	}
	return moves
}

// JumpPossible reports whether any capture is available to the side to
// move.
func (b *Board) JumpPossible() bool {
	return b.jumpPossibleFor(b.whoseMove)
}

func (b *Board) jumpPossibleFor(side Piece) bool {
	var none [MaxIndex + 1]bool
	for k := 1; k <= MaxIndex; k++ {
		if b.cells[k] == side && len(b.captureSteps(k, side, none)) > 0 {
			return true
		}
	}
	return false
}

// stepsFrom collects the legal simple steps from square k. Candidate
// directions mirror the movement rules: lateral both ways, straight
// ahead for the side, and the two forward diagonals when k is odd.
func (b *Board) stepsFrom(k int, side Piece, out *[]Move) {
	ahead := 1
	if side == Black {
		ahead = -1
	}
	candidates := []delta{{-1, 0}, {1, 0}, {0, ahead}}
	if IsOdd(k) {
		candidates = append(candidates, delta{-1, ahead}, delta{1, ahead})
	}
	for _, d := range candidates {
		to, ok := Neighbor(k, d.dc, d.dr)
		if !ok {
			continue
		}
		m := NewMove(k, to)
		if b.legalStep(m, side) {
			*out = append(*out, m)
		}
	}
}

// captureSteps returns the single captures available from square k for
// side, skipping midpoints already captured on this branch. k itself
// may be empty: during chain enumeration the moving piece is "at" k
// without the board having been mutated.
func (b *Board) captureSteps(k int, side Piece, visited [MaxIndex + 1]bool) []Move {
	var steps []Move
	dirs := orthogonals[:]
	if IsOdd(k) {
		dirs = append(append([]delta(nil), orthogonals[:]...), diagonals[:]...)
	}
	for _, d := range dirs {
		mid, ok := Neighbor(k, d.dc, d.dr)
		if !ok {
			continue
		}
		to, ok := Neighbor(k, 2*d.dc, 2*d.dr)
		if !ok {
			continue
		}
		if b.cells[mid] == side.Opposite() && !visited[mid] && b.cells[to] == Empty {
			steps = append(steps, NewMove(k, to))
		}
	}
	return steps
}

// jumpsFrom appends every maximal capture chain starting at square k.
func (b *Board) jumpsFrom(k int, side Piece, out *[]Move) {
	var visited [MaxIndex + 1]bool
	b.extendJumps(k, side, nil, visited, out)
}

// extendJumps explores capture continuations from square k. prefix
// holds the steps taken so far; visited marks the midpoints they
// captured. visited travels by value, so exploring one candidate
// direction cannot corrupt the set seen by a sibling.
func (b *Board) extendJumps(k int, side Piece, prefix []Move, visited [MaxIndex + 1]bool, out *[]Move) {
	next := b.captureSteps(k, side, visited)
	if len(next) == 0 {
		if len(prefix) > 0 {
			*out = append(*out, Chain(prefix...))
		}
		return
	}
	for _, s := range next {
		branch := visited
		branch[s.Jumped()] = true
		extended := append(prefix[:len(prefix):len(prefix)], s)
		b.extendJumps(s.To, side, extended, branch, out)
	}
}

// pruneSubsumed drops duplicates and any chain that is a strict prefix
// of another, keeping only the most complete form of each line of
// capture.
func pruneSubsumed(moves []Move) []Move {
	keep := make([]Move, 0, len(moves))
	for i, m := range moves {
		subsumed := false
		for j, o := range moves {
			if i == j || !m.isPrefixOf(o) {
				continue
			}
			if len(m.Steps()) < len(o.Steps()) || j < i {
				subsumed = true
				break
			}
		}
		if !subsumed {
			keep = append(keep, m)
		}
	}
	return keep
}
