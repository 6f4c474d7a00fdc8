package board

// UndoInfo carries everything MakeMove cannot cheaply re-derive when
// UnmakeMove reverses it: the captured piece (and its square, which
// differs from the move's destination for en passant), and the game
// state fields that are not piece placements (castling rights, en
// passant target, clocks, hash). Piece-square sums, phase, material
// counts, and file multisets are restored automatically because
// UnmakeMove replays the same setPiece/removePiece calls MakeMove made,
// in reverse.
type UndoInfo struct {
	CapturedPiece  Piece
	CapturedSquare Square

	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	FullMoveNumber int

	Hash    uint64
	PawnKey uint64
}

// MakeMove applies m to the position and returns the information needed
// to undo it. The caller owns the returned UndoInfo and must pass the
// same value (paired with the same move) to UnmakeMove; Position also
// keeps its own hash history internally for repetition detection.
func (p *Position) MakeMove(m Move) UndoInfo {
	from, to := m.From(), m.To()
	us := p.SideToMove
	moving := p.PieceAt(from)

	undo := UndoInfo{
		CapturedPiece:  NoPiece,
		CapturedSquare: NoSquare,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
		Hash:           p.Hash,
		PawnKey:        p.PawnKey,
	}

	if p.EnPassant != NoSquare {
		p.Hash ^= ZobristEnPassant(p.EnPassant.File())
	}
	newEnPassant := NoSquare
	halfMoveReset := moving.Type() == Pawn

	switch m.Kind() {
	case EnPassant:
		capturedSq := NewSquare(to.File(), from.Rank())
		undo.CapturedPiece = p.removePiece(capturedSq)
		undo.CapturedSquare = capturedSq
		p.movePiece(from, to)
		halfMoveReset = true

	case CastleKing, CastleQueen:
		p.movePiece(from, to)
		rookFrom, rookTo := castlingRookSquares(us, m.Kind())
		p.movePiece(rookFrom, rookTo)

	case DoublePush:
		p.movePiece(from, to)
		newEnPassant = NewSquare(from.File(), (from.Rank()+to.Rank())/2)
		halfMoveReset = true

	case PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight:
		if captured := p.removePiece(to); captured != NoPiece {
			undo.CapturedPiece = captured
			undo.CapturedSquare = to
		}
		p.removePiece(from)
		p.setPiece(NewPiece(m.PromotionType(), us), to)
		halfMoveReset = true

	default: // Quiet
		if captured := p.removePiece(to); captured != NoPiece {
			undo.CapturedPiece = captured
			undo.CapturedSquare = to
			halfMoveReset = true
		}
		p.movePiece(from, to)
	}

	p.updateCastlingRightsAfterMove(from, to, moving)

	if newEnPassant != NoSquare {
		p.Hash ^= ZobristEnPassant(newEnPassant.File())
	}
	p.EnPassant = newEnPassant

	if halfMoveReset {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}
	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = us.Other()
	p.Hash ^= ZobristSideToMove()

	p.pastHashes = append(p.pastHashes, p.Hash)

	return undo
}

// UnmakeMove reverses m, restoring the exact state MakeMove started from.
func (p *Position) UnmakeMove(m Move, undo UndoInfo) {
	if len(p.pastHashes) > 0 {
		p.pastHashes = p.pastHashes[:len(p.pastHashes)-1]
	}

	p.SideToMove = p.SideToMove.Other()
	us := p.SideToMove
	from, to := m.From(), m.To()

	switch m.Kind() {
	case EnPassant:
		p.movePiece(to, from)
		if undo.CapturedPiece != NoPiece {
			p.setPiece(undo.CapturedPiece, undo.CapturedSquare)
		}

	case CastleKing, CastleQueen:
		p.movePiece(to, from)
		rookFrom, rookTo := castlingRookSquares(us, m.Kind())
		p.movePiece(rookTo, rookFrom)

	case PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight:
		p.removePiece(to)
		p.setPiece(NewPiece(Pawn, us), from)
		if undo.CapturedPiece != NoPiece {
			p.setPiece(undo.CapturedPiece, undo.CapturedSquare)
		}

	default:
		p.movePiece(to, from)
		if undo.CapturedPiece != NoPiece {
			p.setPiece(undo.CapturedPiece, undo.CapturedSquare)
		}
	}

	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
	p.HalfMoveClock = undo.HalfMoveClock
	p.FullMoveNumber = undo.FullMoveNumber
	p.Hash = undo.Hash
	p.PawnKey = undo.PawnKey
}

// castlingRookSquares returns the rook's from/to squares for a castling
// move of the given color and kind.
func castlingRookSquares(us Color, kind MoveKind) (from, to Square) {
	if us == White {
		if kind == CastleKing {
			return H1, F1
		}
		return A1, D1
	}
	if kind == CastleKing {
		return H8, F8
	}
	return A8, D8
}

// updateCastlingRightsAfterMove clears castling rights touched by a king
// move, a rook move off its home square, or a capture landing on a rook's
// home square — XORing the Zobrist constant for exactly the bits that
// flipped, per-bit, rather than recomputing the whole castling hash term.
func (p *Position) updateCastlingRightsAfterMove(from, to Square, moving Piece) {
	if p.CastlingRights == NoCastling {
		return
	}

	newRights := p.CastlingRights
	if moving.Type() == King {
		if moving.Color() == White {
			newRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			newRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	} else if moving.Type() == Rook {
		newRights = clearRookRight(newRights, from)
	}
	newRights = clearRookRight(newRights, to)

	if newRights == p.CastlingRights {
		return
	}
	changed := newRights ^ p.CastlingRights
	for _, bit := range [4]CastlingRights{WhiteKingSideCastle, WhiteQueenSideCastle, BlackKingSideCastle, BlackQueenSideCastle} {
		if changed&bit != 0 {
			p.Hash ^= ZobristCastlingBit(bit)
		}
	}
	p.CastlingRights = newRights
}

func clearRookRight(rights CastlingRights, sq Square) CastlingRights {
	switch sq {
	case A1:
		return rights &^ WhiteQueenSideCastle
	case H1:
		return rights &^ WhiteKingSideCastle
	case A8:
		return rights &^ BlackQueenSideCastle
	case H8:
		return rights &^ BlackKingSideCastle
	default:
		return rights
	}
}
