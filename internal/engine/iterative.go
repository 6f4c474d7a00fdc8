package engine

import (
	"time"

	"affinitychess/internal/board"
)

// Limits configures an iterative-deepening search: the depth bounds and
// soft time budget named in the engine's options table.
type Limits struct {
	MaxDepth int           // upper bound for iterative deepening
	MinDepth int           // below this depth, the time budget is ignored
	MaxTime  time.Duration // soft wall-clock budget per move
}

// mateThreshold is the magnitude a publicly-reported score must exceed
// to be read as "a forced mate has been found" (spec's 10^6 convention).
// It is deliberately far above the Searcher's internal MateScore: the
// transposition table packs scores into an int16, so mate scores stay
// compact (±MateScore) inside the search and are only rescaled to the
// public magnitude at the iterative-deepening boundary, where nothing
// needs to fit in 16 bits anymore.
const mateThreshold = 1_000_000

// iteration records one completed depth of iterative deepening.
type iteration struct {
	move  board.Move
	score int
}

// BestMove runs iterative deepening from depth 1 to limits.MaxDepth,
// stopping at the first depth for which either the elapsed time exceeds
// limits.MaxTime (once limits.MinDepth has been reached) or the score
// indicates a forced mate. It applies the even-depth return rule: since
// there is no quiescence search, scores oscillate with depth parity, so
// on completion the move reported is the last iteration's if an even
// number of iterations completed, or the second-to-last's if odd; the
// reported score is the average of the last two completed iterations
// once at least two have completed.
func (s *Searcher) BestMove(pos *board.Position, limits Limits) (board.Move, int) {
	if limits.MaxDepth <= 0 {
		limits.MaxDepth = MaxPly - 1
	}

	start := time.Now()
	var completed []iteration

	for depth := 1; depth <= limits.MaxDepth; depth++ {
		move, score := s.Search(pos, depth)
		if s.stopFlag.Load() {
			break
		}
		if move == board.NoMove && len(completed) == 0 {
			// No legal moves at the root: terminal position, report it
			// directly rather than starting the even/odd bookkeeping.
			return board.NoMove, publicScore(score)
		}

		completed = append(completed, iteration{move: move, score: score})
		s.RecordCorrection(pos, score, depth)

		if isMateScore(score) {
			break
		}
		if depth >= limits.MinDepth && time.Since(start) >= limits.MaxTime {
			break
		}
	}

	return finalizeIterations(completed)
}

// finalizeIterations applies the even-depth return rule to a completed
// run of iterative deepening.
func finalizeIterations(completed []iteration) (board.Move, int) {
	n := len(completed)
	if n == 0 {
		return board.NoMove, 0
	}

	var chosen iteration
	if n%2 == 0 {
		chosen = completed[n-1]
	} else if n == 1 {
		chosen = completed[0]
	} else {
		chosen = completed[n-2]
	}

	score := chosen.score
	if n >= 2 {
		score = (completed[n-1].score + completed[n-2].score) / 2
	}

	return chosen.move, publicScore(score)
}

// isMateScore reports whether an internal engine score (compact,
// bounded by MateScore) represents a forced mate.
func isMateScore(score int) bool {
	abs := score
	if abs < 0 {
		abs = -abs
	}
	return abs > MateScore-MaxPly
}

// publicScore rescales an internal mate score to the public
// mate-magnitude convention (exceeds mateThreshold, shallower mates
// score higher), leaving ordinary centipawn scores untouched.
func publicScore(score int) int {
	if !isMateScore(score) {
		return score
	}
	pliesToMate := MateScore - abs(score)
	bonus := MaxPly - pliesToMate
	if bonus < 0 {
		bonus = 0
	}
	if score > 0 {
		return mateThreshold + bonus
	}
	return -(mateThreshold + bonus)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
