// bench runs the search on a fixed set of positions and reports node
// counts and timing, for tracking search-speed regressions.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"affinitychess/internal/board"
	"affinitychess/internal/config"
	"affinitychess/internal/engine"
)

var (
	configPath = flag.String("config", "", "TOML config file (defaults used if absent)")
	ttSizeMB   = flag.Int("tt", 64, "transposition table size in MB")
	maxDepth   = flag.Int("depth", 0, "override max_depth from config (0 = use config)")
)

// benchPositions is a fixed, representative set of middlegame and
// endgame FENs, independent of any opening book or tablebase hit.
var benchPositions = []string{
	board.StartFEN,
	"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"8/8/8/4k3/8/4K3/4P3/8 w - - 0 1",
}

func main() {
	flag.Parse()

	cfg := config.Load(*configPath)
	cfg.Search.UseOpeningBook = false
	cfg.Search.UseTablebase = false
	if *maxDepth > 0 {
		cfg.Search.MaxDepth = *maxDepth
	}

	var totalNodes uint64
	var totalTime time.Duration

	for i, fen := range benchPositions {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			log.Fatalf("position %d: invalid fen %q: %v", i, fen, err)
		}

		eng := engine.NewEngine(*ttSizeMB, cfg)
		var nodes uint64
		eng.OnInfo = func(info engine.SearchInfo) { nodes = info.Nodes }

		start := time.Now()
		move, score := eng.BestMove(pos)
		elapsed := time.Since(start)

		fmt.Printf("position %d: move=%s score=%d nodes=%d time=%v\n", i, move.String(), score, nodes, elapsed)

		totalNodes += nodes
		totalTime += elapsed
	}

	if totalTime > 0 {
		fmt.Printf("total: %v across %d positions (%.0f nps aggregate)\n",
			totalTime, len(benchPositions), float64(totalNodes)/totalTime.Seconds())
	}
}
