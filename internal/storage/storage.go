package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/klauspost/compress/zstd"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	gamePrefix     = "game/"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("storage: not found")

// Preferences stores user settings.
type Preferences struct {
	Username      string    `json:"username"`
	StartingColor string    `json:"starting_color"`
	Flipped       bool      `json:"flipped"`
	SoundEnabled  bool      `json:"sound_enabled"`
	LastPlayed    time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Username:      "Player",
		StartingColor: "white",
		SoundEnabled:  true,
	}
}

// Stats stores aggregate results over all recorded games.
type Stats struct {
	GamesPlayed   int            `json:"games_played"`
	WhiteWins     int            `json:"white_wins"`
	BlackWins     int            `json:"black_wins"`
	Draws         int            `json:"draws"`
	DrawsByReason map[string]int `json:"draws_by_reason"`
	WinsByReason  map[string]int `json:"wins_by_reason"`
	TotalPlayTime time.Duration  `json:"total_play_time"`
	LongestGame   int            `json:"longest_game_plies"`
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{
		DrawsByReason: make(map[string]int),
		WinsByReason:  make(map[string]int),
	}
}

// DrawRate returns the share of drawn games as a percentage (0-100).
func (s *Stats) DrawRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Draws) / float64(s.GamesPlayed) * 100
}

// GameRecord is the archived summary of a finished game.
type GameRecord struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	// Winner is "white", "black", or empty for a draw.
	Winner   string `json:"winner,omitempty"`
	Reason   string `json:"reason"`
	Plies    int    `json:"plies"`
	FinalKey string `json:"final_key"`
}

// Storage wraps BadgerDB for persistent storage. Game records are stored
// zstd-compressed.
type Storage struct {
	db  *badger.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Open opens (or creates) the database under dir. An empty dir selects the
// platform data directory.
func Open(dir string) (*Storage, error) {
	dbDir, err := DatabaseDir(dir)
	if err != nil {
		return nil, fmt.Errorf("database dir: %w", err)
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the Storage.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		db.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &Storage{db: db, enc: enc, dec: dec}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.enc != nil {
		s.enc.Close()
	}
	if s.dec != nil {
		s.dec.Close()
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("storage: close: %w", err)
		}
	}
	return nil
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("storage: encode preferences: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
	if err != nil {
		return fmt.Errorf("storage: save preferences: %w", err)
	}
	return nil
}

// LoadPreferences loads user preferences, returns defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})
	if err != nil {
		return prefs, fmt.Errorf("storage: load preferences: %w", err)
	}
	return prefs, nil
}

// LoadStats loads statistics, returns empty stats if not found.
func (s *Storage) LoadStats() (*Stats, error) {
	var stats *Stats
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		stats, err = loadStats(txn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("storage: load stats: %w", err)
	}
	return stats, nil
}

func loadStats(txn *badger.Txn) (*Stats, error) {
	stats := NewStats()

	item, err := txn.Get([]byte(keyStats))
	if err == badger.ErrKeyNotFound {
		return stats, nil
	}
	if err != nil {
		return nil, err
	}

	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	if stats.DrawsByReason == nil {
		stats.DrawsByReason = make(map[string]int)
	}
	if stats.WinsByReason == nil {
		stats.WinsByReason = make(map[string]int)
	}
	return stats, err
}

// RecordGame archives a finished game and updates the statistics in one
// transaction.
func (s *Storage) RecordGame(rec GameRecord) error {
	if rec.ID == "" {
		return errors.New("storage: game record without id")
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("storage: encode game %s: %w", rec.ID, err)
	}
	compressed := s.enc.EncodeAll(raw, nil)

	err = s.db.Update(func(txn *badger.Txn) error {
		stats, err := loadStats(txn)
		if err != nil {
			return err
		}

		stats.GamesPlayed++
		if !rec.StartedAt.IsZero() && rec.FinishedAt.After(rec.StartedAt) {
			stats.TotalPlayTime += rec.FinishedAt.Sub(rec.StartedAt)
		}
		if rec.Plies > stats.LongestGame {
			stats.LongestGame = rec.Plies
		}

		switch rec.Winner {
		case "white":
			stats.WhiteWins++
			stats.WinsByReason[rec.Reason]++
		case "black":
			stats.BlackWins++
			stats.WinsByReason[rec.Reason]++
		default:
			stats.Draws++
			stats.DrawsByReason[rec.Reason]++
		}

		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		if err := txn.Set([]byte(keyStats), data); err != nil {
			return err
		}
		return txn.Set([]byte(gamePrefix+rec.ID), compressed)
	})
	if err != nil {
		return fmt.Errorf("storage: record game %s: %w", rec.ID, err)
	}
	return nil
}

// LoadGame returns the archived game with the given id.
func (s *Storage) LoadGame(id string) (*GameRecord, error) {
	var rec GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gamePrefix + id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return s.decodeRecord(val, &rec)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("storage: load game %s: %w", id, err)
	}
	return &rec, nil
}

// ListGames returns up to limit archived games, most recently finished first.
// A limit of zero or less returns them all.
func (s *Storage) ListGames(limit int) ([]GameRecord, error) {
	var records []GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec GameRecord
			err := it.Item().Value(func(val []byte) error {
				return s.decodeRecord(val, &rec)
			})
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: list games: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].FinishedAt.After(records[j].FinishedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *Storage) decodeRecord(val []byte, rec *GameRecord) error {
	raw, err := s.dec.DecodeAll(val, nil)
	if err != nil {
		return fmt.Errorf("decompress game record: %w", err)
	}
	return json.Unmarshal(raw, rec)
}
