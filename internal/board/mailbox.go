package board

// The 10x12 mailbox embeds the 64 playable squares inside a sentinel
// border one file wide on each side and two ranks deep above and below,
// so a ray walk never needs a bounds
// check: it just reads the next cell and asks whether it is OffBoard.
//
// mbIndex64To120[sq] gives the mailbox cell for board Square sq.
// mbIndex120To64[cell] gives the board Square for mailbox cell cell,
// or NoSquare if the cell is a sentinel.
const mailboxWidth = 10

var mbIndex64To120 [64]int

var mbIndex120To64 [120]Square

func init() {
	idx := 0
	for cell := 0; cell < 120; cell++ {
		mbIndex120To64[cell] = NoSquare
	}
	for row := 2; row <= 9; row++ {
		for col := 1; col <= 8; col++ {
			cell := row*mailboxWidth + col
			mbIndex64To120[idx] = cell
			mbIndex120To64[cell] = Square(idx)
			idx++
		}
	}
}

// Adjacent-square deltas on the 120-cell mailbox, as specified: the
// four orthogonal, four diagonal, and eight knight offsets.
var (
	orthogonalDeltas = [4]int{-10, -1, 10, 1}
	diagonalDeltas   = [4]int{-11, -9, 9, 11}
	knightDeltas     = [8]int{-21, -19, -12, -8, 8, 12, 19, 21}
	kingDeltas       = [8]int{-11, -10, -9, -1, 1, 9, 10, 11}
)

// rayDeltas groups the eight king-adjacent directions as the four
// orthogonal rays followed by the four diagonal rays, matching the
// "scanning the eight sliding rays from the king" wording used for pin
// and check detection.
var rayDeltas = [8]int{-10, -1, 10, 1, -11, -9, 9, 11}

// isDiagonal reports whether a ray delta (as found in rayDeltas) is a
// diagonal direction (bishop/queen) rather than orthogonal (rook/queen).
func isDiagonal(delta int) bool {
	switch delta {
	case -11, -9, 9, 11:
		return true
	default:
		return false
	}
}
