package board

import "testing"

func TestCheckmate(t *testing.T) {
	// Back rank mate: Black king on h8 boxed in by its own pawns, White
	// rook delivers mate along the eighth rank.
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	if !pos.InCheck() {
		t.Error("expected black to be in check")
	}
	if !pos.IsCheckmate() {
		t.Error("expected checkmate but got false")
	}
	if pos.IsStalemate() {
		t.Error("checkmate position should not also report stalemate")
	}
}

func TestNotCheckmate(t *testing.T) {
	// Black king can simply capture the checking rook.
	pos, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	if pos.IsCheckmate() {
		t.Error("expected NOT checkmate but got true")
	}

	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		t.Error("expected at least the capture of the checking rook")
	}
}

func TestStalemate(t *testing.T) {
	// Classic stalemate: black king on a8 has no legal move and is not
	// in check.
	pos, err := ParseFEN("k7/8/1Q6/8/8/8/8/1K6 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	if pos.InCheck() {
		t.Fatal("stalemate position should not be in check")
	}
	if !pos.IsStalemate() {
		t.Error("expected stalemate but got false")
	}
	if pos.IsCheckmate() {
		t.Error("stalemate position should not also report checkmate")
	}
}

// TestMakeUnmakeRoundTrip plays every legal move two plies deep from a
// handful of positions and checks that unmaking restores the position's
// Zobrist hash, side to move, and castling rights exactly.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		checkRoundTrip(t, pos, 2)
	}
}

func checkRoundTrip(t *testing.T, pos *Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}

	startHash := pos.Hash
	startSide := pos.SideToMove
	startRights := pos.CastlingRights
	startEP := pos.EnPassant

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)

		if recomputed := recomputeHash(pos); recomputed != pos.Hash {
			t.Errorf("move %s: incremental hash %016x does not match recomputed %016x", m.String(), pos.Hash, recomputed)
		}

		checkRoundTrip(t, pos, depth-1)

		pos.UnmakeMove(m, undo)

		if pos.Hash != startHash {
			t.Errorf("move %s: hash not restored after unmake, got %016x want %016x", m.String(), pos.Hash, startHash)
		}
		if pos.SideToMove != startSide {
			t.Errorf("move %s: side to move not restored after unmake", m.String())
		}
		if pos.CastlingRights != startRights {
			t.Errorf("move %s: castling rights not restored after unmake", m.String())
		}
		if pos.EnPassant != startEP {
			t.Errorf("move %s: en passant square not restored after unmake", m.String())
		}
	}
}

// recomputeHash rebuilds the Zobrist hash from scratch (piece placement,
// side to move, castling rights, en passant file) for comparison against
// the position's incrementally maintained Hash field.
func recomputeHash(p *Position) uint64 {
	var h uint64
	for sq := A1; sq <= H8; sq++ {
		piece := p.PieceAt(sq)
		if piece == NoPiece {
			continue
		}
		h ^= ZobristPiece(piece.Color(), piece.Type(), sq)
	}
	h ^= zobristCastlingMask(p.CastlingRights)
	if p.EnPassant != NoSquare {
		h ^= ZobristEnPassant(p.EnPassant.File())
	}
	if p.SideToMove == Black {
		h ^= ZobristSideToMove()
	}
	return h
}
