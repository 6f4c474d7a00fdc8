package board

// Piece-square tables, written rank 8 first (index 0 = a8, index 63 = h1)
// as seen from White's side of the board. A White piece on sq reads entry
// sq.Mirror(); a Black piece on sq reads entry sq, which is the same table
// seen from Black's side. Every non-king piece uses the same table
// for both the midgame and endgame term; the king gets a distinct table
// for each phase so it is rewarded for sheltering behind its own pawns
// in the middlegame and for activity once the board empties.

var pstPawn = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pstKnight = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var pstBishop = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var pstRook = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var pstQueen = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var pstKingMidGame = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var pstKingEndGame = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

var pstByPieceType = [6]*[64]int{&pstPawn, &pstKnight, &pstBishop, &pstRook, &pstQueen, nil}

// phaseWeight is how much each piece type contributes to the 0-24 game
// phase counter, following original_source/settings.py's piece_phase_calc:
// total_phase = 16*pawn(0) + 4*bishop(1) + 4*knight(1) + 4*rook(2) + 2*queen(4) = 24.
var phaseWeight = [6]int{0, 1, 1, 2, 4, 0}

// pstTerms returns the midgame and endgame piece-square contribution
// (material plus positional) of placing piece pt/c on sq, positive when
// good for c; it is added to that colour's own PSTMG/PSTEG sum.
func pstTerms(pt PieceType, c Color, sq Square) (mg, eg int) {
	pstSq := sq.Mirror()
	if c == Black {
		pstSq = sq
	}

	material := PieceValue[pt]
	var mgPST, egPST int
	if pt == King {
		mgPST = pstKingMidGame[pstSq]
		egPST = pstKingEndGame[pstSq]
	} else {
		table := pstByPieceType[pt]
		mgPST = table[pstSq]
		egPST = mgPST
	}

	mg = material + mgPST
	eg = material + egPST
	return mg, eg
}
