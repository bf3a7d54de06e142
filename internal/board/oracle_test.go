package board

import (
	"math/rand/v2"
	"sort"
	"strings"
	"testing"

	"github.com/notnil/chess"
)

// firstFields returns the placement, side and castling fields of a key or FEN.
func firstFields(s string) string {
	return strings.Join(strings.Fields(s)[:3], " ")
}

// TestRandomGamesAgainstReference plays random games and compares the legal
// move set and resulting position with an independent rules library at every
// ply.
func TestRandomGamesAgainstReference(t *testing.T) {
	games, maxPlies := 20, 160
	if testing.Short() {
		games = 4
	}
	rng := rand.New(rand.NewPCG(1, 2))

	for game := 0; game < games; game++ {
		ref := chess.NewGame()
		b, side := Initial(), White

		for ply := 0; ply < maxPlies; ply++ {
			refMoves := ref.ValidMoves()
			want := make([]string, len(refMoves))
			for i, m := range refMoves {
				want[i] = m.String()
			}
			sort.Strings(want)

			ours := b.LegalMovesFor(side)
			got := moveStrings(ours)

			if strings.Join(got, " ") != strings.Join(want, " ") {
				t.Fatalf("game %d ply %d at %s:\n got %v\nwant %v", game, ply, EncodeKey(b, side), got, want)
			}
			if len(ours) == 0 || ref.Outcome() != chess.NoOutcome {
				break
			}

			m := ours[rng.IntN(len(ours))]
			var refMove *chess.Move
			for _, rm := range refMoves {
				if rm.String() == m.String() {
					refMove = rm
					break
				}
			}
			if err := ref.Move(refMove); err != nil {
				t.Fatalf("game %d ply %d: reference rejected %s: %v", game, ply, m, err)
			}

			b = b.After(m)
			side = side.Other()

			if got, want := firstFields(EncodeKey(b, side)), firstFields(ref.FEN()); got != want {
				t.Fatalf("game %d ply %d after %s: key %q, want %q", game, ply, m, got, want)
			}
		}
	}
}
