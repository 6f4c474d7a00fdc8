package board

// Polyglot-layout Zobrist keys, filled by this package's own fixed-seed
// xorshift64 PRNG, separate from the internal zobrist.go tables, so
// positions hash consistently across runs. They are not the published
// Polyglot random table, so these hashes do not match the keys stored in
// standard Polyglot .bin book files.
var (
	polyglotPieces     [12][64]uint64 // [piece_kind][square]
	polyglotCastling   [4]uint64      // [KQkq]
	polyglotEnPassant  [8]uint64      // [file]
	polyglotSideToMove uint64
)

func init() {
	initPolyglotKeys()
}

// polyglotPieceKind maps (Color, PieceType) to the Polyglot piece index:
// bp, bN, bB, bR, bQ, bK, wp, wN, wB, wR, wQ, wK.
var polyglotPieceKind = [2][6]int{
	{6, 7, 8, 9, 10, 11}, // White
	{0, 1, 2, 3, 4, 5},   // Black
}

// PolyglotHash computes the Polyglot-layout hash key for this position
// from the keys above, for opening-book lookups.
func (p *Position) PolyglotHash() uint64 {
	var hash uint64

	for sq := A1; sq <= H8; sq++ {
		piece := p.PieceAt(sq)
		if piece == NoPiece {
			continue
		}
		kind := polyglotPieceKind[piece.Color()][piece.Type()]
		hash ^= polyglotPieces[kind][sq]
	}

	if p.CastlingRights&WhiteKingSideCastle != 0 {
		hash ^= polyglotCastling[0]
	}
	if p.CastlingRights&WhiteQueenSideCastle != 0 {
		hash ^= polyglotCastling[1]
	}
	if p.CastlingRights&BlackKingSideCastle != 0 {
		hash ^= polyglotCastling[2]
	}
	if p.CastlingRights&BlackQueenSideCastle != 0 {
		hash ^= polyglotCastling[3]
	}

	if p.EnPassant != NoSquare {
		file := p.EnPassant.File()
		epRank := p.EnPassant.Rank()
		canCapture := false
		// The pawn that could capture en passant sits one rank toward the
		// side to move from the target square, and belongs to that side.
		capturingRank := epRank - 1
		capturingColor := White
		if p.SideToMove == Black {
			capturingRank = epRank + 1
			capturingColor = Black
		}
		if file > 0 && p.PieceAt(NewSquare(file-1, capturingRank)) == NewPiece(Pawn, capturingColor) {
			canCapture = true
		}
		if file < 7 && p.PieceAt(NewSquare(file+1, capturingRank)) == NewPiece(Pawn, capturingColor) {
			canCapture = true
		}
		if canCapture {
			hash ^= polyglotEnPassant[file]
		}
	}

	if p.SideToMove == White {
		hash ^= polyglotSideToMove
	}

	return hash
}

func initPolyglotKeys() {
	var s uint64 = 0x37b4a4b3f0d1c0d0

	rng := func() uint64 {
		s ^= s >> 12
		s ^= s << 25
		s ^= s >> 27
		return s * 0x2545F4914F6CDD1D
	}

	for piece := 0; piece < 12; piece++ {
		for sq := 0; sq < 64; sq++ {
			polyglotPieces[piece][sq] = rng()
		}
	}
	for i := 0; i < 4; i++ {
		polyglotCastling[i] = rng()
	}
	for i := 0; i < 8; i++ {
		polyglotEnPassant[i] = rng()
	}
	polyglotSideToMove = rng()
}
