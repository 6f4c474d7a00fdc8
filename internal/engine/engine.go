// Package engine implements the chess search engine.
package engine

import (
	"log"
	"time"

	"affinitychess/internal/board"
	"affinitychess/internal/book"
	"affinitychess/internal/config"
	"affinitychess/internal/tablebase"
)

// SearchInfo reports the result of a finished iterative-deepening search
// (score, node count, elapsed time, principal variation) to the OnInfo
// callback, once per search; Depth is not filled in.
type SearchInfo struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	PV    []board.Move
}

// Engine wires a single-threaded Searcher together with the engine's
// external collaborators (opening book, tablebase) and the configured
// search limits. There is no worker pool: search concurrency is
// explicitly out of scope (see the package's non-goals).
type Engine struct {
	cfg       config.Config
	tt        *TranspositionTable
	pawnTable *PawnTable
	corrHist  *CorrectionHistory
	searcher  *Searcher

	book      book.Prober
	tablebase tablebase.Prober

	OnInfo func(SearchInfo)
}

// NewEngine creates an engine with the given transposition table size in
// MB, using cfg for the search and move-ordering parameters.
func NewEngine(ttSizeMB int, cfg config.Config) *Engine {
	tt := NewTranspositionTable(ttSizeMB)
	pawnTable := NewPawnTable(1)
	corrHist := NewCorrectionHistory()

	return &Engine{
		cfg:       cfg,
		tt:        tt,
		pawnTable: pawnTable,
		corrHist:  corrHist,
		searcher:  NewSearcher(tt, cfg.Search.NumKillers, cfg.Search.MVVStoreK, pawnTable, corrHist),
		tablebase: tablebase.NoopProber{},
	}
}

// LoadBook loads an opening book from a Polyglot file.
func (e *Engine) LoadBook(filename string) error {
	b, err := book.LoadPolyglot(filename)
	if err != nil {
		return err
	}
	e.book = b
	return nil
}

// SetBook sets the opening book prober directly.
func (e *Engine) SetBook(b book.Prober) {
	e.book = b
}

// HasBook returns true if an opening book is configured.
func (e *Engine) HasBook() bool {
	return e.book != nil
}

// SetTablebase sets the tablebase prober.
func (e *Engine) SetTablebase(tb tablebase.Prober) {
	e.tablebase = tb
}

// HasTablebase returns true if a tablebase prober is configured and
// reports itself available.
func (e *Engine) HasTablebase() bool {
	return e.tablebase != nil && e.tablebase.Available()
}

// BestMove finds the best move for pos, consulting the opening book and
// tablebase (when enabled and applicable) before falling back to
// iterative-deepening search. When the tablebase returns a move with a
// distance-to-zeroing of 1 or less, the engine runs one shallow
// (min_depth) search first, in case a faster forced mate than the
// tablebase's own result exists; otherwise the tablebase move is played
// directly.
func (e *Engine) BestMove(pos *board.Position) (board.Move, int) {
	if e.cfg.Search.UseOpeningBook && e.book != nil {
		if move, ok := e.book.Probe(pos); ok {
			log.Printf("[engine] book move %s", move.String())
			return move, 0
		}
	}

	if e.cfg.Search.UseTablebase && e.tablebase != nil && e.tablebase.Available() {
		if n := tablebase.CountPieces(pos); n <= 5 && n <= e.tablebase.MaxPieces() {
			result := e.tablebase.ProbeRoot(pos)
			if result.Found && result.Move != board.NoMove {
				if result.DTZ > 1 {
					log.Printf("[engine] tablebase move %s (dtz=%d)", result.Move.String(), result.DTZ)
					return result.Move, tablebase.WDLToScore(result.WDL, 0)
				}
				if move, score, found := e.searchForMate(pos); found {
					return move, score
				}
				return result.Move, tablebase.WDLToScore(result.WDL, 0)
			}
		}
	}

	return e.search(pos)
}

// searchForMate runs one shallow search at the configured minimum depth,
// returning a move only if it found a forced mate.
func (e *Engine) searchForMate(pos *board.Position) (board.Move, int, bool) {
	e.tt.NewSearch()
	e.searcher.Reset()
	move, score := e.searcher.Search(pos, e.cfg.Search.MinDepth)
	if move == board.NoMove {
		return board.NoMove, 0, false
	}
	abs := score
	if abs < 0 {
		abs = -abs
	}
	if abs <= MateScore-MaxPly {
		return board.NoMove, 0, false
	}
	return move, publicScore(score), true
}

// search runs iterative deepening within the configured depth/time
// limits and reports progress through OnInfo.
func (e *Engine) search(pos *board.Position) (board.Move, int) {
	e.tt.NewSearch()
	e.searcher.Reset()

	limits := Limits{
		MaxDepth: e.cfg.Search.MaxDepth,
		MinDepth: e.cfg.Search.MinDepth,
		MaxTime:  e.cfg.Search.MaxTime(),
	}

	start := time.Now()
	move, score := e.searcher.BestMove(pos, limits)

	if e.OnInfo != nil {
		e.OnInfo(SearchInfo{
			Score: score,
			Nodes: e.searcher.Nodes(),
			Time:  time.Since(start),
			PV:    e.searcher.GetPV(),
		})
	}

	return move, score
}

// Stop stops the current search.
func (e *Engine) Stop() {
	e.searcher.Stop()
}

// Clear clears the transposition table and move-ordering state.
func (e *Engine) Clear() {
	e.tt.Clear()
	e.searcher.Reset()
}

// Perft performs a perft test (for debugging move generation).
func (e *Engine) Perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		move := moves.Get(i)
		undo := pos.MakeMove(move)
		nodes += e.Perft(pos, depth-1)
		pos.UnmakeMove(move, undo)
	}

	return nodes
}

// Evaluate returns the static evaluation of a position from the
// perspective of the side to move.
func (e *Engine) Evaluate(pos *board.Position) int {
	return EvaluateCached(pos, e.pawnTable)
}

// ScoreToString converts a score to a human-readable string.
func ScoreToString(score int) string {
	if score > mateThreshold {
		plies := MaxPly - (score - mateThreshold)
		return "Mate in " + itoa((plies+1)/2)
	}
	if score < -mateThreshold {
		plies := MaxPly - (-score - mateThreshold)
		return "Mated in " + itoa((plies+1)/2)
	}

	sign := ""
	if score < 0 {
		sign = "-"
		score = -score
	}
	pawns := score / 100
	centipawns := score % 100

	return sign + itoa(pawns) + "." + itoa(centipawns)
}

// itoa is a minimal integer-to-string conversion, kept dependency-free
// since it is only used for this one diagnostic string.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	s := ""
	for n > 0 {
		s = string('0'+byte(n%10)) + s
		n /= 10
	}
	return s
}
