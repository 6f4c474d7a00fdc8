package board

import "fmt"

// Move encodes the (from-square, to-square, kind) tuple in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-15: MoveKind
type Move uint16

// MoveKind distinguishes the nine move shapes the generator produces.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	DoublePush
	EnPassant
	CastleKing
	CastleQueen
	PromoteQueen
	PromoteRook
	PromoteBishop
	PromoteKnight
)

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a move of the given kind.
func NewMove(from, to Square, kind MoveKind) Move {
	return Move(from) | Move(to)<<6 | Move(kind)<<12
}

// NewCastling creates a castling move from the king's from/to squares,
// inferring kingside vs. queenside from the direction of travel.
func NewCastling(from, to Square) Move {
	if to.File() > from.File() {
		return NewMove(from, to, CastleKing)
	}
	return NewMove(from, to, CastleQueen)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Kind returns the move kind.
func (m Move) Kind() MoveKind {
	return MoveKind((m >> 12) & 0xF)
}

// IsPromotion returns true if this move promotes a pawn.
func (m Move) IsPromotion() bool {
	switch m.Kind() {
	case PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight:
		return true
	default:
		return false
	}
}

// PromotionType returns the piece type promoted to (only valid when
// IsPromotion is true).
func (m Move) PromotionType() PieceType {
	switch m.Kind() {
	case PromoteQueen:
		return Queen
	case PromoteRook:
		return Rook
	case PromoteBishop:
		return Bishop
	case PromoteKnight:
		return Knight
	default:
		return NoPieceType
	}
}

// IsCastling returns true if this is a castling move.
func (m Move) IsCastling() bool {
	return m.Kind() == CastleKing || m.Kind() == CastleQueen
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Kind() == EnPassant
}

// IsDoublePush returns true if this is a pawn double-step.
func (m Move) IsDoublePush() bool {
	return m.Kind() == DoublePush
}

// IsCapture returns true if this move captures a piece, given the
// position it was generated from.
func (m Move) IsCapture(pos *Position) bool {
	if m.IsEnPassant() {
		return true
	}
	return pos.PieceAt(m.To()) != NoPiece
}

// IsQuiet returns true if this is not a capture or promotion.
func (m Move) IsQuiet(pos *Position) bool {
	return !m.IsCapture(pos) && !m.IsPromotion()
}

var promoChar = map[MoveKind]byte{
	PromoteQueen:  'q',
	PromoteRook:   'r',
	PromoteBishop: 'b',
	PromoteKnight: 'n',
}

// String returns the long-algebraic form of the move (e.g. "e2e4",
// "e7e8q"); castling renders as the king's own from-to squares.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if c, ok := promoChar[m.Kind()]; ok {
		s += string(c)
	}
	return s
}

// ParseMove parses a long-algebraic move string ("e2e4", "e7e8q") in
// the context of pos, inferring the move's kind from the position.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}
	pt := piece.Type()

	if len(s) == 5 {
		switch s[4] {
		case 'q':
			return NewMove(from, to, PromoteQueen), nil
		case 'r':
			return NewMove(from, to, PromoteRook), nil
		case 'b':
			return NewMove(from, to, PromoteBishop), nil
		case 'n':
			return NewMove(from, to, PromoteKnight), nil
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
	}

	if pt == King && abs(int(to)-int(from)) == 2 {
		if to.File() > from.File() {
			return NewMove(from, to, CastleKing), nil
		}
		return NewMove(from, to, CastleQueen), nil
	}

	if pt == Pawn && to == pos.EnPassant {
		return NewMove(from, to, EnPassant), nil
	}

	if pt == Pawn && abs(to.Rank()-from.Rank()) == 2 {
		return NewMove(from, to, DoublePush), nil
	}

	return NewMove(from, to, Quiet), nil
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set sets the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
