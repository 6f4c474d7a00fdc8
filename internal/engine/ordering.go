package engine

import (
	"affinitychess/internal/board"
)

// Move ordering priorities
const (
	TTMoveScore     = 10000000 // TT move gets highest priority
	GoodCaptureBase = 1000000  // Base score for the top-K captures (MVV-LVA)
	KillerScore1    = 900000   // First killer move
	KillerScore2    = 800000   // Second killer move
)

// MVV-LVA (Most Valuable Victim - Least Valuable Attacker) scores.
// Higher score = search first. Score = victimValue*10 - attackerValue.
var mvvLva = [6][6]int{
	//       P    N    B    R    Q    K  (attacker)
	/* P */ {15, 14, 14, 13, 12, 11}, // Pawn victim
	/* N */ {25, 24, 24, 23, 22, 21}, // Knight victim
	/* B */ {35, 34, 34, 33, 32, 31}, // Bishop victim
	/* R */ {45, 44, 44, 43, 42, 41}, // Rook victim
	/* Q */ {55, 54, 54, 53, 52, 51}, // Queen victim
	/* K */ {0, 0, 0, 0, 0, 0},       // King can't be captured
}

// MoveOrderer orders moves for the search: TT move, then the top-K
// captures by MVV-LVA (K is mvvStoreK), then killer moves, then the
// rest by history heuristic.
type MoveOrderer struct {
	numKillers int
	mvvStoreK  int

	// Killer moves (quiet moves that caused beta cutoffs), up to
	// numKillers per ply, most recent first.
	killers [MaxPly][]board.Move

	// History heuristic (indexed by [from][to])
	history [64][64]int
}

// NewMoveOrderer creates a move orderer that keeps numKillers killer
// slots per ply and promotes only the top mvvStoreK captures (by
// MVV-LVA) above the quiet-move ordering.
func NewMoveOrderer(numKillers, mvvStoreK int) *MoveOrderer {
	if numKillers < 1 {
		numKillers = 2
	}
	if mvvStoreK < 1 {
		mvvStoreK = 10
	}
	mo := &MoveOrderer{numKillers: numKillers, mvvStoreK: mvvStoreK}
	for i := range mo.killers {
		mo.killers[i] = make([]board.Move, 0, numKillers)
	}
	return mo
}

// Clear resets the move orderer for a new search.
func (mo *MoveOrderer) Clear() {
	for i := range mo.killers {
		mo.killers[i] = mo.killers[i][:0]
	}
	// Age history scores to prevent overflow across searches.
	for i := range mo.history {
		for j := range mo.history[i] {
			mo.history[i][j] /= 2
		}
	}
}

// ScoreMoves assigns ordering scores to moves.
func (mo *MoveOrderer) ScoreMoves(pos *board.Position, moves *board.MoveList, ply int, ttMove board.Move) []int {
	scores := make([]int, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		scores[i] = mo.scoreMove(pos, moves.Get(i), ply, ttMove)
	}
	mo.capCaptureRank(pos, moves, scores)
	return scores
}

// capCaptureRank keeps only the mvvStoreK best-scoring captures in the
// good-capture tier; captures beyond that rank fall back to ordering
// alongside quiet moves by history score, reflecting mvv_store_k.
func (mo *MoveOrderer) capCaptureRank(pos *board.Position, moves *board.MoveList, scores []int) {
	type cand struct {
		idx   int
		score int
	}
	var captures []cand
	for i := 0; i < moves.Len(); i++ {
		if scores[i] >= GoodCaptureBase {
			captures = append(captures, cand{i, scores[i]})
		}
	}
	if len(captures) <= mo.mvvStoreK {
		return
	}
	// Selection-sort the top mvvStoreK; demote the rest.
	for i := 0; i < mo.mvvStoreK; i++ {
		best := i
		for j := i + 1; j < len(captures); j++ {
			if captures[j].score > captures[best].score {
				best = j
			}
		}
		captures[i], captures[best] = captures[best], captures[i]
	}
	for i := mo.mvvStoreK; i < len(captures); i++ {
		m := moves.Get(captures[i].idx)
		scores[captures[i].idx] = mo.history[m.From()][m.To()]
	}
}

// scoreMove returns the ordering score for a single move.
func (mo *MoveOrderer) scoreMove(pos *board.Position, m board.Move, ply int, ttMove board.Move) int {
	if m == ttMove {
		return TTMoveScore
	}

	from := m.From()
	to := m.To()

	if m.IsCapture(pos) {
		attackerPiece := pos.PieceAt(from)
		attacker := attackerPiece.Type()

		var victim board.PieceType
		if m.IsEnPassant() {
			victim = board.Pawn
		} else {
			capturedPiece := pos.PieceAt(to)
			if capturedPiece == board.NoPiece {
				return GoodCaptureBase
			}
			victim = capturedPiece.Type()
		}

		score := GoodCaptureBase + mvvLva[victim][attacker]*1000
		if pieceValues[attacker] < pieceValues[victim] {
			score += 10000 // clearly winning capture
		}
		return score
	}

	if m.IsPromotion() {
		return GoodCaptureBase - 1000 + int(m.PromotionType())*100
	}

	for i, k := range mo.killers[ply] {
		if m == k {
			if i == 0 {
				return KillerScore1
			}
			return KillerScore2
		}
	}

	return mo.history[from][to]
}

// SortMoves sorts moves by their scores (descending).
func SortMoves(moves *board.MoveList, scores []int) {
	n := moves.Len()
	for i := 0; i < n-1; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		if best != i {
			moves.Swap(i, best)
			scores[i], scores[best] = scores[best], scores[i]
		}
	}
}

// PickMove selects the best remaining move and moves it to position
// index, for lazy move sorting (only sort as much as needed).
func PickMove(moves *board.MoveList, scores []int, index int) {
	best := index
	for j := index + 1; j < moves.Len(); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != index {
		moves.Swap(index, best)
		scores[index], scores[best] = scores[best], scores[index]
	}
}

// UpdateKillers adds a killer move at the given ply, most-recent-first,
// FIFO-evicting beyond numKillers.
func (mo *MoveOrderer) UpdateKillers(m board.Move, ply int) {
	if ply >= MaxPly {
		return
	}
	slot := mo.killers[ply]
	for _, k := range slot {
		if k == m {
			return
		}
	}
	if len(slot) < mo.numKillers {
		mo.killers[ply] = append([]board.Move{m}, slot...)
		return
	}
	mo.killers[ply] = append([]board.Move{m}, slot[:len(slot)-1]...)
}

// UpdateHistory updates the history score for a quiet move that caused
// a beta cutoff.
func (mo *MoveOrderer) UpdateHistory(m board.Move, depth int, isGood bool) {
	from := m.From()
	to := m.To()

	bonus := depth * depth
	if isGood {
		mo.history[from][to] += bonus
		if mo.history[from][to] > 400000 {
			for i := range mo.history {
				for j := range mo.history[i] {
					mo.history[i][j] /= 2
				}
			}
		}
	} else {
		mo.history[from][to] -= bonus
		if mo.history[from][to] < -400000 {
			mo.history[from][to] = -400000
		}
	}
}

// GetHistoryScore returns the history score for a move.
func (mo *MoveOrderer) GetHistoryScore(m board.Move) int {
	return mo.history[m.From()][m.To()]
}
