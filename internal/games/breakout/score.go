package breakout

// BestScoreStore persists the best score across sessions.
// Implementations report 0 when nothing has been stored yet and are
// expected to swallow (and log) their own failures.
type BestScoreStore interface {
	BestScore() int
	SetBestScore(score int)
}

// Score tracks the current session's points and the best known score.
type Score struct {
	Current int
	Best    int
}

// Add awards points for the current session.
func (s *Score) Add(points int) {
	s.Current += points
}

// Commit records the current score at a terminal event. The store is only
// written when the current score beats what it holds. Returns true if the
// store was updated.
func (s *Score) Commit(store BestScoreStore) bool {
	stored := store.BestScore()
	s.Best = max(stored, s.Current)
	if s.Current > stored {
		store.SetBestScore(s.Current)
		return true
	}
	return false
}

type nopStore struct{}

func (nopStore) BestScore() int { return 0 }
func (nopStore) SetBestScore(int) {}
