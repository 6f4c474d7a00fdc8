package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position represents a complete chess position on the 10x12 mailbox.
// Material, piece-square, phase and pawn/rook-file state are maintained
// incrementally by setPiece/removePiece/movePiece so the evaluator and
// move generator never recompute them from scratch.
type Position struct {
	mailbox [120]Piece // sentinel border is OffBoard, see mailbox.go

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // target square for en passant, NoSquare if none
	HalfMoveClock  int    // moves since last pawn move or capture
	FullMoveNumber int

	Hash    uint64 // Zobrist hash, maintained incrementally
	PawnKey uint64 // Zobrist hash of pawns only, for pawn-structure caching

	KingSquare [2]Square

	PieceCount [2][6]int // inventory counts, by Color then PieceType
	PawnFiles  [2][8]int // pawns per file, by Color
	RookFiles  [2][8]int // rooks per file, by Color

	Phase int // 0-24, see phaseWeight; 24 is the full-material opening

	PSTMG [2]int // incremental midgame material+PST sum, by Color
	PSTEG [2]int // incremental endgame material+PST sum, by Color

	// pastHashes holds the post-move Zobrist hash of every position played
	// to reach this one, pushed by MakeMove and popped by UnmakeMove. Used
	// only to detect threefold repetition: scanned back HalfMoveClock
	// plies, since a pawn move or capture makes every earlier entry
	// unreachable again.
	pastHashes []uint64
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// newBlankPosition returns an empty position with the mailbox border
// sentinels in place and no pieces on the 64 playable squares. The zero
// value of Position is not safe to use directly: Piece(0) is WhitePawn,
// so every blank position must go through here.
func newBlankPosition() *Position {
	p := &Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	for cell := range p.mailbox {
		p.mailbox[cell] = OffBoard
	}
	for sq := A1; sq <= H8; sq++ {
		p.mailbox[mbIndex64To120[sq]] = NoPiece
	}
	p.KingSquare[White] = NoSquare
	p.KingSquare[Black] = NoSquare
	return p
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.mailbox[mbIndex64To120[sq]]
}

// cellAt returns the piece at a raw 120-cell mailbox index, including
// OffBoard for sentinel cells. Used by ray-walking code in attacks.go
// and movegen.go.
func (p *Position) cellAt(cell int) Piece {
	return p.mailbox[cell]
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.PieceAt(sq) == NoPiece
}

// setPiece places a piece on an empty square, updating every piece of
// incremental state in lockstep. Never call on an occupied square.
func (p *Position) setPiece(piece Piece, sq Square) {
	c := piece.Color()
	pt := piece.Type()

	p.mailbox[mbIndex64To120[sq]] = piece
	p.PieceCount[c][pt]++
	p.Phase += phaseWeight[pt]

	mg, eg := pstTerms(pt, c, sq)
	p.PSTMG[c] += mg
	p.PSTEG[c] += eg

	p.Hash ^= ZobristPiece(c, pt, sq)
	if pt == Pawn {
		p.PawnFiles[c][sq.File()]++
		p.PawnKey ^= ZobristPiece(c, pt, sq)
	}
	if pt == Rook {
		p.RookFiles[c][sq.File()]++
	}
	if pt == King {
		p.KingSquare[c] = sq
	}
}

// removePiece clears a square, returning the piece that was there (or
// NoPiece if it was already empty).
func (p *Position) removePiece(sq Square) Piece {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return NoPiece
	}
	c := piece.Color()
	pt := piece.Type()

	p.mailbox[mbIndex64To120[sq]] = NoPiece
	p.PieceCount[c][pt]--
	p.Phase -= phaseWeight[pt]

	mg, eg := pstTerms(pt, c, sq)
	p.PSTMG[c] -= mg
	p.PSTEG[c] -= eg

	p.Hash ^= ZobristPiece(c, pt, sq)
	if pt == Pawn {
		p.PawnFiles[c][sq.File()]--
		p.PawnKey ^= ZobristPiece(c, pt, sq)
	}
	if pt == Rook {
		p.RookFiles[c][sq.File()]--
	}

	return piece
}

// movePiece relocates the piece on from to the (empty) square to.
func (p *Position) movePiece(from, to Square) {
	piece := p.removePiece(from)
	if piece == NoPiece {
		return
	}
	p.setPiece(piece, to)
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := p.PieceAt(sq)
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", p.FullMoveNumber)
	s += fmt.Sprintf("Hash: %016x\n", p.Hash)
	return s
}

// Clear resets the position to an empty board.
func (p *Position) Clear() {
	*p = *newBlankPosition()
}

// Validate checks basic structural invariants of the position.
func (p *Position) Validate() error {
	if p.PieceCount[White][King] != 1 {
		return fmt.Errorf("white must have exactly one king")
	}
	if p.PieceCount[Black][King] != 1 {
		return fmt.Errorf("black must have exactly one king")
	}
	for sq := A1; sq <= H8; sq++ {
		if p.PieceAt(sq).Type() == Pawn {
			rank := sq.Rank()
			if rank == 0 || rank == 7 {
				return fmt.Errorf("pawns cannot be on rank 1 or 8")
			}
		}
	}
	if IsSquareAttacked(p, p.KingSquare[p.SideToMove.Other()], p.SideToMove) {
		return fmt.Errorf("side not to move is in check")
	}
	return nil
}

// InCheck returns true if the side to move is currently in check.
func (p *Position) InCheck() bool {
	us := p.SideToMove
	return IsSquareAttacked(p, p.KingSquare[us], us.Other())
}

// Material returns the material balance (positive favors white), in
// centipawns, ignoring position.
func (p *Position) Material() int {
	score := 0
	for pt := Pawn; pt < King; pt++ {
		score += p.PieceCount[White][pt] * PieceValue[pt]
		score -= p.PieceCount[Black][pt] * PieceValue[pt]
	}
	return score
}

// HasNonPawnMaterial returns true if the side to move has non-pawn,
// non-king material.
func (p *Position) HasNonPawnMaterial() bool {
	us := p.SideToMove
	return p.PieceCount[us][Knight] > 0 || p.PieceCount[us][Bishop] > 0 ||
		p.PieceCount[us][Rook] > 0 || p.PieceCount[us][Queen] > 0
}

// InsufficientMaterial reports a dead position: K vs K, K+N vs K, or K+B
// vs K with no pawns or other material on the board.
func (p *Position) InsufficientMaterial() bool {
	for pt := Pawn; pt < King; pt++ {
		if pt == Knight || pt == Bishop {
			continue
		}
		if p.PieceCount[White][pt] > 0 || p.PieceCount[Black][pt] > 0 {
			return false
		}
	}
	minors := p.PieceCount[White][Knight] + p.PieceCount[White][Bishop] +
		p.PieceCount[Black][Knight] + p.PieceCount[Black][Bishop]
	return minors <= 1
}

// NullMoveUndo stores state for unmake of a null move.
type NullMoveUndo struct {
	EnPassant Square
	Hash      uint64
}

// MakeNullMove passes the turn without moving a piece, for null-move
// pruning. Callers must not invoke this while InCheck() is true.
func (p *Position) MakeNullMove() NullMoveUndo {
	undo := NullMoveUndo{EnPassant: p.EnPassant, Hash: p.Hash}

	if p.EnPassant != NoSquare {
		p.Hash ^= ZobristEnPassant(p.EnPassant.File())
	}
	p.EnPassant = NoSquare
	p.SideToMove = p.SideToMove.Other()
	p.Hash ^= ZobristSideToMove()

	return undo
}

// UnmakeNullMove undoes a null move.
func (p *Position) UnmakeNullMove(undo NullMoveUndo) {
	p.EnPassant = undo.EnPassant
	p.Hash = undo.Hash
	p.SideToMove = p.SideToMove.Other()
}
