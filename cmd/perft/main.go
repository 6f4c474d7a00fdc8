// perft is a move-generator verification tool. See:
// https://www.chessprogramming.org/Perft_Results.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"affinitychess/internal/board"
)

var (
	depth    = flag.Int("depth", 5, "search depth")
	position = flag.String("fen", "", "start position (default to standard)")
	divide   = flag.Bool("divide", false, "print per-move counts at the final depth")
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

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodes := perft(pos, d, *divide && d == *depth)
		elapsed := time.Since(start)
		fmt.Printf("perft %d: %d nodes in %v (%.0f nps)\n", d, nodes, elapsed, float64(nodes)/elapsed.Seconds())
	}
}

func perft(pos *board.Position, depth int, divide bool) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 && !divide {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		var count uint64
		if depth == 1 {
			count = 1
		} else {
			count = perft(pos, depth-1, false)
		}
		pos.UnmakeMove(m, undo)

		if divide {
			fmt.Printf("%s: %d\n", m.String(), count)
		}
		nodes += count
	}
	return nodes
}
