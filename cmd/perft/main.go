// Command perft counts the leaf positions reachable from a position key, for
// checking move generation against published reference numbers.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/logx"
)

func main() {
	key := flag.String("key", board.InitialKey, "position key (defaults to the initial position)")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-move node counts at the root")
	parallel := flag.Bool("parallel", false, "search root moves concurrently")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logx.NewLogger(level)

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	b, side, err := board.DecodeKey(*key)
	if err != nil {
		log.Error().Err(err).Str("key", *key).Msg("decode key")
		os.Exit(2)
	}
	log.Debug().Str("key", board.EncodeKey(b, side)).Int("depth", *depth).Msg("perft")

	if *divide {
		div := board.PerftDivide(b, side, *depth)
		moves := make([]string, 0, len(div))
		var sum int64
		for m, n := range div {
			moves = append(moves, m)
			sum += n
		}
		sort.Strings(moves)
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	var nodes int64
	if *parallel {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		nodes, err = board.PerftParallel(ctx, b, side, *depth)
		if err != nil {
			log.Error().Err(err).Msg("perft interrupted")
			os.Exit(1)
		}
	} else {
		nodes = board.Perft(b, side, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()

	fmt.Printf("depth %d \tnodes %d \ttime %s \tnps %.0f\n", *depth, nodes, elapsed, nps)
}
