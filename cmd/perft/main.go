package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	dm "checkers-engine/draughtsmg"
)

func main() {
	depth := flag.Int("depth", 8, "maximum perft depth")
	fen := flag.String("fen", dm.FENStartPos, "starting position")
	flag.Parse()

	board, err := dm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad fen:", err)
		os.Exit(1)
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodes := dm.Perft(board, d)
		elapsed := time.Since(start)
		fmt.Printf("perft(%d) = %d (%s)\n", d, nodes, elapsed)
	}
}
