package storage

import (
	"sync"

	"go.uber.org/zap"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// BestScoreKeeper adapts a Store to breakout.BestScoreStore for one game ID.
// Database failures are logged and reported as 0 so the simulation never
// sees an error.
type BestScoreKeeper struct {
	store  *Store
	gameID string
	log    *zap.SugaredLogger
}

// NewBestScoreKeeper creates a keeper. A nil logger discards failures.
func NewBestScoreKeeper(store *Store, gameID string, log *zap.SugaredLogger) *BestScoreKeeper {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &BestScoreKeeper{store: store, gameID: gameID, log: log}
}

// BestScore returns the stored best score, or 0 on failure.
func (k *BestScoreKeeper) BestScore() int {
	best, err := k.store.BestScore(k.gameID)
	if err != nil {
		k.log.Errorw("read best score", "game", k.gameID, "error", err)
		return 0
	}
	return best
}

// SetBestScore stores a new best score, logging failures.
func (k *BestScoreKeeper) SetBestScore(score int) {
	if err := k.store.SetBestScore(k.gameID, score); err != nil {
		k.log.Errorw("write best score", "game", k.gameID, "score", score, "error", err)
	}
}

// ResultOf describes a finished session as a results row.
func ResultOf(gameID string, s *breakout.Session) Result {
	outcome := OutcomeLost
	if s.Phase() == breakout.PhaseWon {
		outcome = OutcomeWon
	}
	return Result{
		GameID:  gameID,
		Score:   s.Score().Current,
		Outcome: outcome,
		Seed:    s.Seed(),
		Ticks:   int64(s.Ticks()), //#nosec G115 -- tick count fits in int64
	}
}

// MemoryBestScore keeps the best score in memory. Used when no database is
// available and in tests.
type MemoryBestScore struct {
	mu   sync.Mutex
	best int
}

// BestScore returns the best score seen so far.
func (m *MemoryBestScore) BestScore() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best
}

// SetBestScore replaces the best score if the new one is higher.
func (m *MemoryBestScore) SetBestScore(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = max(m.best, score)
}

var (
	_ breakout.BestScoreStore = (*BestScoreKeeper)(nil)
	_ breakout.BestScoreStore = (*MemoryBestScore)(nil)
)
