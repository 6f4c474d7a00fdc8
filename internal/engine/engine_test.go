package engine

import (
	"testing"
	"time"

	"affinitychess/internal/board"
	"affinitychess/internal/config"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Search.MaxDepth = 5
	cfg.Search.MinDepth = 3
	cfg.Search.MaxTimeSeconds = 1
	cfg.Search.UseOpeningBook = false
	cfg.Search.UseTablebase = false
	return cfg
}

func TestEngineBestMoveBasic(t *testing.T) {
	pos := board.NewPosition()
	eng := NewEngine(16, testConfig())

	move, _ := eng.BestMove(pos)
	if move == board.NoMove {
		t.Error("BestMove returned NoMove for starting position")
	}
	t.Logf("Best move: %s", move.String())
}

func TestEngineBestMoveAcrossPositions(t *testing.T) {
	eng := NewEngine(16, testConfig())

	positions := []string{
		board.StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3", // Italian Game
		"8/8/8/4k3/8/4K3/4P3/8 w - - 0 1",                                   // KP endgame
	}

	for i, fen := range positions {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("Failed to parse position %d: %v", i, err)
		}

		move, _ := eng.BestMove(pos)
		if move == board.NoMove {
			if !pos.InCheck() || pos.GenerateLegalMoves().Len() > 0 {
				t.Errorf("Position %d: BestMove returned NoMove", i)
			}
		} else {
			t.Logf("Position %d: best move = %s", i, move.String())
		}
	}
}

func TestEngineOnInfoCallback(t *testing.T) {
	pos := board.NewPosition()
	eng := NewEngine(16, testConfig())

	var calls int
	eng.OnInfo = func(info SearchInfo) {
		calls++
		if info.Time <= 0 {
			t.Error("expected positive elapsed time in SearchInfo")
		}
	}

	eng.BestMove(pos)
	if calls != 1 {
		t.Errorf("expected OnInfo to fire once per BestMove call, got %d", calls)
	}
}

func TestEngineStop(t *testing.T) {
	pos := board.NewPosition()
	cfg := testConfig()
	cfg.Search.MaxDepth = 64
	cfg.Search.MaxTimeSeconds = 30
	eng := NewEngine(16, cfg)

	done := make(chan struct{})
	go func() {
		eng.BestMove(pos)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	eng.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("BestMove did not return after Stop")
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	eng := NewEngine(16, testConfig())

	move, score := eng.BestMove(pos)
	if move == board.NoMove {
		t.Fatal("expected a mating move, got NoMove")
	}

	undo := pos.MakeMove(move)
	defer pos.UnmakeMove(move, undo)
	if !pos.IsCheckmate() {
		t.Errorf("move %s did not deliver checkmate (score=%d)", move.String(), score)
	}
}

func TestSearchStalemateTrap(t *testing.T) {
	// The textbook queen-vs-king stalemate trap: the queen on f7 covers
	// every one of the black king's flight squares (g7, h7 via the
	// white king on g6, g8 via the queen's own diagonal) without giving
	// check. Black, to move, has no legal move and is not in check.
	pos, err := board.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.InCheck() {
		t.Fatal("test position should not be in check")
	}
	if !pos.IsStalemate() {
		t.Fatal("expected this position to be a stalemate")
	}

	eng := NewEngine(16, testConfig())
	move, _ := eng.BestMove(pos)
	if move != board.NoMove {
		t.Errorf("expected NoMove on a stalemated position, got %s", move.String())
	}
}

func TestSearchDetectsThreefoldRepetition(t *testing.T) {
	pos := board.NewPosition()
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	// Three round trips push the starting position's hash onto the
	// position's history three times (the position's own pre-game hash
	// is never recorded, only post-move hashes), satisfying the
	// threefold check.
	for rep := 0; rep < 3; rep++ {
		for _, uci := range moves {
			from, err := board.ParseSquare(uci[0:2])
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", uci[0:2], err)
			}
			to, err := board.ParseSquare(uci[2:4])
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", uci[2:4], err)
			}

			found := false
			legal := pos.GenerateLegalMoves()
			for i := 0; i < legal.Len(); i++ {
				m := legal.Get(i)
				if m.From() == from && m.To() == to {
					pos.MakeMove(m)
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("move %s was not found among legal moves", uci)
			}
		}
	}

	if !pos.IsThreefoldRepetition() {
		t.Error("expected threefold repetition after three knight round trips")
	}
}

func TestPawnHashTable(t *testing.T) {
	pt := NewPawnTable(1) // 1MB

	pos := board.NewPosition()

	// First probe should miss
	_, _, found := pt.Probe(pos.PawnKey)
	if found {
		t.Error("Expected cache miss on first probe")
	}

	// Store and retrieve
	pt.Store(pos.PawnKey, -15, -20)

	mg, eg, found := pt.Probe(pos.PawnKey)
	if !found {
		t.Error("Expected cache hit after store")
	}
	if mg != -15 || eg != -20 {
		t.Errorf("Wrong values: got mg=%d, eg=%d, want -15, -20", mg, eg)
	}

	// Verify PawnKey changes when pawns move
	oldKey := pos.PawnKey
	move := board.NewMove(board.E2, board.E4, board.Quiet)
	undo := pos.MakeMove(move)
	if pos.PawnKey == oldKey {
		t.Error("PawnKey should change when pawn moves")
	}

	// Verify PawnKey is restored on unmake
	pos.UnmakeMove(move, undo)
	if pos.PawnKey != oldKey {
		t.Error("PawnKey should be restored on unmake")
	}

	t.Logf("PawnKey: %016x", pos.PawnKey)
}
