package board

// IsSquareAttacked reports whether sq is attacked by any piece of byColor,
// walking the mailbox rays/offsets directly from sq rather than from the
// attacking pieces. Used for check detection, castling-through-check, and
// king-move legality.
func IsSquareAttacked(p *Position, sq Square, byColor Color) bool {
	if sq == NoSquare {
		return false
	}
	cell0 := mbIndex64To120[sq]

	for _, delta := range rayDeltas {
		cell := cell0 + delta
		for {
			piece := p.cellAt(cell)
			if piece == OffBoard {
				break
			}
			if piece == NoPiece {
				cell += delta
				continue
			}
			if piece.Color() == byColor {
				pt := piece.Type()
				if isDiagonal(delta) {
					if pt == Bishop || pt == Queen {
						return true
					}
				} else if pt == Rook || pt == Queen {
					return true
				}
			}
			break
		}
	}

	for _, delta := range knightDeltas {
		piece := p.cellAt(cell0 + delta)
		if piece != OffBoard && piece.Color() == byColor && piece.Type() == Knight {
			return true
		}
	}

	for _, delta := range kingDeltas {
		piece := p.cellAt(cell0 + delta)
		if piece != OffBoard && piece.Color() == byColor && piece.Type() == King {
			return true
		}
	}

	var pawnDeltas [2]int
	if byColor == White {
		pawnDeltas = [2]int{-11, -9}
	} else {
		pawnDeltas = [2]int{9, 11}
	}
	for _, delta := range pawnDeltas {
		piece := p.cellAt(cell0 + delta)
		if piece != OffBoard && piece.Color() == byColor && piece.Type() == Pawn {
			return true
		}
	}

	return false
}

// maxCheckers is the most simultaneous checkers a legal chess position can
// have: two, e.g. a discovered check combined with the moved piece's own
// check.
const maxCheckers = 2

// CheckInfo is the result of scanning the eight sliding rays from the
// side-to-move king once per move-generation call: which enemy pieces (if
// any) check the king, and which of the king's own pieces are pinned.
type CheckInfo struct {
	Checkers    [maxCheckers]Square
	NumCheckers int

	Pinned   [64]bool   // Pinned[sq]: the piece on sq is pinned to its king
	PinnedBy [64]Square // PinnedBy[sq]: the enemy slider square pinning it
}

// IsPinned reports whether the piece on sq is pinned.
func (ci *CheckInfo) IsPinned(sq Square) bool {
	return ci.Pinned[sq]
}

// PinDirection returns the (file, rank) unit step a pinned piece on sq may
// still move along — the line from the king through sq.
func (ci *CheckInfo) PinDirection(ksq, sq Square) (df, dr int) {
	df = sign(sq.File() - ksq.File())
	dr = sign(sq.Rank() - ksq.Rank())
	return df, dr
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// ComputeCheckInfo scans the eight sliding rays from the side-to-move
// king, classifying for each ray whether the first friendly piece found is
// pinned by a same-direction enemy slider behind it, or whether the king
// is in check along that ray. Knight and pawn checks are found directly by
// their fixed offsets. This is the move generator's step 1 (spec'd per
// position, not maintained incrementally).
func ComputeCheckInfo(p *Position) CheckInfo {
	var ci CheckInfo
	us := p.SideToMove
	them := us.Other()
	ksq := p.KingSquare[us]
	kcell := mbIndex64To120[ksq]

	for _, delta := range rayDeltas {
		cell := kcell + delta
		var blocker Square = NoSquare

		for {
			piece := p.cellAt(cell)
			if piece == OffBoard {
				break
			}
			if piece == NoPiece {
				cell += delta
				continue
			}

			if blocker == NoSquare {
				if piece.Color() == us {
					blocker = mbIndex120To64[cell]
					cell += delta
					continue
				}
				// First piece on the ray is an enemy: check if it
				// attacks the king along this ray.
				if slidesInDirection(piece.Type(), delta) {
					if ci.NumCheckers < maxCheckers {
						ci.Checkers[ci.NumCheckers] = mbIndex120To64[cell]
					}
					ci.NumCheckers++
				}
				break
			}

			// Second piece on the ray: if it is an enemy slider matching
			// direction, the earlier friendly blocker is pinned.
			if piece.Color() != us && slidesInDirection(piece.Type(), delta) {
				ci.Pinned[blocker] = true
				ci.PinnedBy[blocker] = mbIndex120To64[cell]
			}
			break
		}
	}

	for _, delta := range knightDeltas {
		piece := p.cellAt(kcell + delta)
		if piece != OffBoard && piece.Color() == them && piece.Type() == Knight {
			if ci.NumCheckers < maxCheckers {
				ci.Checkers[ci.NumCheckers] = mbIndex120To64[kcell+delta]
			}
			ci.NumCheckers++
		}
	}

	var pawnDeltas [2]int
	if them == White {
		pawnDeltas = [2]int{-11, -9}
	} else {
		pawnDeltas = [2]int{9, 11}
	}
	for _, delta := range pawnDeltas {
		cell := kcell + delta
		piece := p.cellAt(cell)
		if piece != OffBoard && piece.Color() == them && piece.Type() == Pawn {
			if ci.NumCheckers < maxCheckers {
				ci.Checkers[ci.NumCheckers] = mbIndex120To64[cell]
			}
			ci.NumCheckers++
		}
	}

	return ci
}

// slidesInDirection reports whether pt can slide along a ray in the given
// mailbox delta direction: bishops/queens on diagonals, rooks/queens on
// orthogonals.
func slidesInDirection(pt PieceType, delta int) bool {
	if isDiagonal(delta) {
		return pt == Bishop || pt == Queen
	}
	return pt == Rook || pt == Queen
}
