package game

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hailam/chessrules/internal/board"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(zerolog.Nop())

	s := m.NewGame(board.White, board.Initial())
	if s.ID == "" {
		t.Fatal("session has no id")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}

	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != s {
		t.Error("Get returned a different session")
	}

	other := m.NewGame(board.Black, board.Initial())
	if other.ID == s.ID {
		t.Error("two sessions share an id")
	}
	other.Do(func(st *State) {
		if st.CurrentPlayer() != board.Black {
			t.Errorf("CurrentPlayer() = %s, want Black", st.CurrentPlayer())
		}
	})
	if other.UpdatedAt().Before(other.CreatedAt) {
		t.Error("UpdatedAt() is earlier than CreatedAt")
	}

	if err := m.Delete(s.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(s.ID); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("Get after Delete = %v, want ErrGameNotFound", err)
	}
	if err := m.Delete(s.ID); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("second Delete = %v, want ErrGameNotFound", err)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestSessionsPlayConcurrently(t *testing.T) {
	m := NewManager(zerolog.Nop())
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	var wg sync.WaitGroup
	sessions := make([]*Session, 8)
	for i := range sessions {
		sessions[i] = m.NewGame(board.White, board.Initial())
	}
	for _, s := range sessions {
		for _, str := range moves {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Do(func(st *State) {
					for _, m := range st.AllLegalMoves() {
						if m.String() == str {
							st.MakeMove(m)
							return
						}
					}
				})
			}()
		}
	}
	wg.Wait()

	for _, s := range sessions {
		s.Do(func(st *State) {
			if st.Plies() > len(moves) {
				t.Errorf("session %s played %d plies", s.ID, st.Plies())
			}
		})
	}
}
