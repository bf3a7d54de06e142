package board

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Perft counts the leaf nodes of the legal move tree of the given depth with
// side to move first. It is the standard check of move generation.
func Perft(b *Board, side Color, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := b.LegalMovesFor(side)
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		nodes += Perft(b.After(m), side.Other(), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by the move
// in coordinate form.
func PerftDivide(b *Board, side Color, depth int) map[string]int64 {
	divide := make(map[string]int64)
	if depth < 1 {
		return divide
	}
	for _, m := range b.LegalMovesFor(side) {
		divide[m.String()] = Perft(b.After(m), side.Other(), depth-1)
	}
	return divide
}

// PerftParallel is Perft with the root moves searched concurrently, each on its
// own clone of b. It stops early if ctx is cancelled.
func PerftParallel(ctx context.Context, b *Board, side Color, depth int) (int64, error) {
	if depth <= 1 {
		return Perft(b, side, depth), nil
	}

	var nodes atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, m := range b.LegalMovesFor(side) {
		child := b.After(m)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			nodes.Add(Perft(child, side.Other(), depth-1))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return nodes.Load(), nil
}
