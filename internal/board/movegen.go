package board

// GenerateLegalMoves returns every move available to the side to move
// that does not leave its own king in check: pins and checks are computed
// once (ComputeCheckInfo), pseudo-legal moves are generated per piece
// kind filtered by those pins, and a single checker additionally filters
// non-king moves down to captures of the checker or blocks of its ray.
func (p *Position) GenerateLegalMoves() *MoveList {
	ci := ComputeCheckInfo(p)
	ml := NewMoveList()

	p.generateKingMoves(ml, &ci)
	if ci.NumCheckers >= 2 {
		return ml
	}

	pseudo := NewMoveList()
	p.generatePawnMoves(pseudo, &ci)
	p.generateKnightMoves(pseudo, &ci)
	p.generateSliderMoves(pseudo, &ci, Bishop)
	p.generateSliderMoves(pseudo, &ci, Rook)
	p.generateSliderMoves(pseudo, &ci, Queen)

	if ci.NumCheckers == 0 {
		p.generateCastlingMoves(ml)
		for i := 0; i < pseudo.Len(); i++ {
			ml.Add(pseudo.Get(i))
		}
		return ml
	}

	// Single check: every non-king move must capture the checker or,
	// if the checker is a slider, block a square on the ray between it
	// and the king (spec step 5).
	checker := ci.Checkers[0]
	ksq := p.KingSquare[p.SideToMove]
	blockSquares := rayBetween(ksq, checker)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		if m.To() == checker {
			ml.Add(m)
			continue
		}
		if m.IsEnPassant() && p.PieceAt(checker).Type() == Pawn {
			capturedSq := NewSquare(m.To().File(), m.From().Rank())
			if capturedSq == checker {
				ml.Add(m)
				continue
			}
		}
		if contains(blockSquares, m.To()) {
			ml.Add(m)
		}
	}
	return ml
}

// GenerateCaptures returns legal captures only (including en passant and
// capture-promotions), for move orderers that want to probe captures
// ahead of the full list.
func (p *Position) GenerateCaptures() *MoveList {
	all := p.GenerateLegalMoves()
	ml := NewMoveList()
	for i := 0; i < all.Len(); i++ {
		m := all.Get(i)
		if m.IsCapture(p) {
			ml.Add(m)
		}
	}
	return ml
}

// IsCheckmate reports whether the side to move has no legal move and is
// in check.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && p.GenerateLegalMoves().Len() == 0
}

// IsStalemate reports whether the side to move has no legal move and is
// not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && p.GenerateLegalMoves().Len() == 0
}

// IsThreefoldRepetition reports whether the current position's hash has
// occurred three times in the game, scanning back only as far as the last
// pawn move or capture (HalfMoveClock plies), since no earlier position
// can recur after an irreversible move.
func (p *Position) IsThreefoldRepetition() bool {
	n := len(p.pastHashes)
	if n == 0 {
		return false
	}
	limit := p.HalfMoveClock
	if limit > n {
		limit = n
	}
	count := 0
	for i := n - 1; i >= n-limit; i-- {
		if p.pastHashes[i] == p.Hash {
			count++
		}
	}
	return count >= 3
}

// IsFiftyMoveRule reports the fifty-move (100 half-move) draw rule.
func (p *Position) IsFiftyMoveRule() bool {
	return p.HalfMoveClock >= 100
}

// GameOver reports whether the position is a terminal position: checkmate,
// stalemate, insufficient material, the fifty-move rule, or threefold
// repetition.
func (p *Position) GameOver() bool {
	if p.InsufficientMaterial() || p.IsFiftyMoveRule() || p.IsThreefoldRepetition() {
		return true
	}
	return p.GenerateLegalMoves().Len() == 0
}

// Copy returns an independent deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	newPos.pastHashes = append([]uint64(nil), p.pastHashes...)
	return &newPos
}

func contains(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// rayBetween returns the squares strictly between a slider checker and
// the king, or nil if the checker is adjacent or a non-slider (knight,
// pawn): those can only be dealt with by capture, never a block.
func rayBetween(ksq, checker Square) []Square {
	df := sign(checker.File() - ksq.File())
	dr := sign(checker.Rank() - ksq.Rank())
	if df == 0 && dr == 0 {
		return nil
	}
	var squares []Square
	f, r := ksq.File()+df, ksq.Rank()+dr
	for f != checker.File() || r != checker.Rank() {
		if f < 0 || f > 7 || r < 0 || r > 7 {
			return nil
		}
		squares = append(squares, NewSquare(f, r))
		f += df
		r += dr
	}
	return squares
}

// pinAllows reports whether a pinned piece on from may move to to: only
// squares colinear with the king through from are legal, since the piece
// must stay on the ray it is pinned along (including capturing the
// pinner itself).
func pinAllows(ksq, from, to Square) bool {
	dfK := from.File() - ksq.File()
	drK := from.Rank() - ksq.Rank()
	dfT := to.File() - ksq.File()
	drT := to.Rank() - ksq.Rank()
	return dfK*drT == drK*dfT
}

func (p *Position) generateKingMoves(ml *MoveList, ci *CheckInfo) {
	us := p.SideToMove
	them := us.Other()
	ksq := p.KingSquare[us]
	kcell := mbIndex64To120[ksq]

	// Vacate the king's own square before testing destinations, so a
	// slider attacking straight through the king's current square is
	// still seen as attacking the square just beyond it.
	p.mailbox[kcell] = NoPiece
	for _, delta := range kingDeltas {
		cell := kcell + delta
		target := p.cellAt(cell)
		if target == OffBoard {
			continue
		}
		if target != NoPiece && target.Color() == us {
			continue
		}
		toSq := mbIndex120To64[cell]
		if !IsSquareAttacked(p, toSq, them) {
			ml.Add(NewMove(ksq, toSq, Quiet))
		}
	}
	p.mailbox[kcell] = NewPiece(King, us)
}

func (p *Position) generateCastlingMoves(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	ksq := p.KingSquare[us]

	tryCastle := func(kingSide bool, kind MoveKind, kingTo Square, emptySquares []Square, kingPath []Square) {
		if !p.CastlingRights.CanCastle(us, kingSide) {
			return
		}
		for _, sq := range emptySquares {
			if !p.IsEmpty(sq) {
				return
			}
		}
		for _, sq := range kingPath {
			if IsSquareAttacked(p, sq, them) {
				return
			}
		}
		ml.Add(NewMove(ksq, kingTo, kind))
	}

	if us == White {
		tryCastle(true, CastleKing, G1, []Square{F1, G1}, []Square{E1, F1, G1})
		tryCastle(false, CastleQueen, C1, []Square{D1, C1, B1}, []Square{E1, D1, C1})
	} else {
		tryCastle(true, CastleKing, G8, []Square{F8, G8}, []Square{E8, F8, G8})
		tryCastle(false, CastleQueen, C8, []Square{D8, C8, B8}, []Square{E8, D8, C8})
	}
}

func (p *Position) generateKnightMoves(ml *MoveList, ci *CheckInfo) {
	us := p.SideToMove
	for sq := A1; sq <= H8; sq++ {
		piece := p.PieceAt(sq)
		if piece.Type() != Knight || piece.Color() != us {
			continue
		}
		if ci.Pinned[sq] {
			continue // a pinned knight never has a legal move
		}
		cell := mbIndex64To120[sq]
		for _, delta := range knightDeltas {
			target := p.cellAt(cell + delta)
			if target == OffBoard || (target != NoPiece && target.Color() == us) {
				continue
			}
			to := mbIndex120To64[cell+delta]
			ml.Add(NewMove(sq, to, Quiet))
		}
	}
}

func (p *Position) generateSliderMoves(ml *MoveList, ci *CheckInfo, pt PieceType) {
	us := p.SideToMove
	ksq := p.KingSquare[us]
	deltas := sliderDeltas(pt)

	for sq := A1; sq <= H8; sq++ {
		piece := p.PieceAt(sq)
		if piece.Type() != pt || piece.Color() != us {
			continue
		}
		pinned := ci.Pinned[sq]
		cell0 := mbIndex64To120[sq]
		for _, delta := range deltas {
			cell := cell0 + delta
			for {
				target := p.cellAt(cell)
				if target == OffBoard {
					break
				}
				to := mbIndex120To64[cell]
				if target == NoPiece {
					if !pinned || pinAllows(ksq, sq, to) {
						ml.Add(NewMove(sq, to, Quiet))
					}
					cell += delta
					continue
				}
				if target.Color() != us && (!pinned || pinAllows(ksq, sq, to)) {
					ml.Add(NewMove(sq, to, Quiet))
				}
				break
			}
		}
	}
}

func sliderDeltas(pt PieceType) []int {
	switch pt {
	case Bishop:
		return diagonalDeltas[:]
	case Rook:
		return orthogonalDeltas[:]
	default: // Queen
		return rayDeltas[:]
	}
}

func (p *Position) generatePawnMoves(ml *MoveList, ci *CheckInfo) {
	us := p.SideToMove
	them := us.Other()
	ksq := p.KingSquare[us]

	forward := 1
	startRank := 1
	promoRank := 7
	if us == Black {
		forward = -1
		startRank = 6
		promoRank = 0
	}

	addPawnMove := func(from, to Square, kind MoveKind) {
		if to.Rank() == promoRank {
			ml.Add(NewMove(from, to, PromoteQueen))
			ml.Add(NewMove(from, to, PromoteRook))
			ml.Add(NewMove(from, to, PromoteBishop))
			ml.Add(NewMove(from, to, PromoteKnight))
			return
		}
		ml.Add(NewMove(from, to, kind))
	}

	for sq := A1; sq <= H8; sq++ {
		piece := p.PieceAt(sq)
		if piece.Type() != Pawn || piece.Color() != us {
			continue
		}
		pinned := ci.Pinned[sq]
		file, rank := sq.File(), sq.Rank()

		// Single (and double) push.
		oneRank := rank + forward
		if oneRank >= 0 && oneRank <= 7 {
			oneSq := NewSquare(file, oneRank)
			if p.IsEmpty(oneSq) {
				if !pinned || pinAllows(ksq, sq, oneSq) {
					addPawnMove(sq, oneSq, Quiet)
				}
				if rank == startRank {
					twoSq := NewSquare(file, rank+2*forward)
					if p.IsEmpty(twoSq) && (!pinned || pinAllows(ksq, sq, twoSq)) {
						ml.Add(NewMove(sq, twoSq, DoublePush))
					}
				}
			}
		}

		// Diagonal captures and en passant.
		for _, df := range [2]int{-1, 1} {
			captureFile := file + df
			if captureFile < 0 || captureFile > 7 {
				continue
			}
			captureRank := rank + forward
			if captureRank < 0 || captureRank > 7 {
				continue
			}
			to := NewSquare(captureFile, captureRank)

			if to == p.EnPassant {
				if pinned && !pinAllows(ksq, sq, to) {
					continue
				}
				if p.enPassantLegal(sq, to) {
					ml.Add(NewMove(sq, to, EnPassant))
				}
				continue
			}

			target := p.PieceAt(to)
			if target != NoPiece && target.Color() == them {
				if !pinned || pinAllows(ksq, sq, to) {
					addPawnMove(sq, to, Quiet)
				}
			}
		}
	}
}

// enPassantLegal handles the discovered-check edge case: after removing
// both the capturing pawn and the captured pawn (which briefly share the
// king's rank), no enemy rook or queen may attack the king along that
// rank. Only relevant when capturer, captured pawn and king share a rank.
func (p *Position) enPassantLegal(from, to Square) bool {
	us := p.SideToMove
	ksq := p.KingSquare[us]
	capturedSq := NewSquare(to.File(), from.Rank())

	if ksq.Rank() != from.Rank() {
		return true
	}

	fromCell := mbIndex64To120[from]
	capturedCell := mbIndex64To120[capturedSq]
	savedFrom := p.mailbox[fromCell]
	savedCaptured := p.mailbox[capturedCell]
	p.mailbox[fromCell] = NoPiece
	p.mailbox[capturedCell] = NoPiece

	legal := !IsSquareAttacked(p, ksq, us.Other())

	p.mailbox[fromCell] = savedFrom
	p.mailbox[capturedCell] = savedCaptured
	return legal
}
