// play is a minimal driver that reads a position and prints the
// engine's chosen move, wiring the opening book and tablebase
// collaborators when configured. It is not a UCI server.
package main

import (
	"flag"
	"log"

	"affinitychess/internal/board"
	"affinitychess/internal/config"
	"affinitychess/internal/engine"
	"affinitychess/internal/tablebase"
)

var (
	configPath = flag.String("config", "", "TOML config file (defaults used if absent)")
	position   = flag.String("fen", "", "position to move from (default to standard)")
	bookPath   = flag.String("book", "", "Polyglot opening book file")
	ttSizeMB   = flag.Int("tt", 64, "transposition table size in MB")
)

func main() {
	flag.Parse()

	fen := *position
	if fen == "" {
		fen = board.StartFEN
	}

	pos, err := board.ParseFEN(fen)
	if err != nil {
		log.Fatalf("invalid fen %q: %v", fen, err)
	}

	cfg := config.Load(*configPath)
	eng := engine.NewEngine(*ttSizeMB, cfg)
	eng.SetTablebase(tablebase.NoopProber{})

	if *bookPath != "" {
		if err := eng.LoadBook(*bookPath); err != nil {
			log.Printf("book not loaded: %v", err)
		}
	}

	eng.OnInfo = func(info engine.SearchInfo) {
		log.Printf("depth search: score=%d nodes=%d time=%v pv=%v", info.Score, info.Nodes, info.Time, info.PV)
	}

	move, score := eng.BestMove(pos)
	if move == board.NoMove {
		log.Println("no legal move (checkmate or stalemate)")
		return
	}

	log.Printf("best move: %s (%s)", move.String(), engine.ScoreToString(score))
}
