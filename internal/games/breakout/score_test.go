package breakout

import "testing"

type memoryStore struct {
	best int
	sets int
}

func (m *memoryStore) BestScore() int { return m.best }

func (m *memoryStore) SetBestScore(score int) {
	m.best = score
	m.sets++
}

func TestScoreCommit(t *testing.T) {
	tests := []struct {
		name        string
		stored      int
		current     int
		wantBest    int
		wantUpdated bool
	}{
		{"empty store", 0, 12, 12, true},
		{"new record", 30, 40, 40, true},
		{"below record", 30, 12, 30, false},
		{"tie keeps the store", 30, 30, 30, false},
		{"zero score", 0, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &memoryStore{best: tc.stored}
			s := Score{Current: tc.current}

			updated := s.Commit(store)

			if updated != tc.wantUpdated {
				t.Errorf("Commit() = %v, expected %v", updated, tc.wantUpdated)
			}
			if s.Best != tc.wantBest {
				t.Errorf("Best = %d, expected %d", s.Best, tc.wantBest)
			}
			if store.best != tc.wantBest {
				t.Errorf("store holds %d, expected %d", store.best, tc.wantBest)
			}
			if !tc.wantUpdated && store.sets != 0 {
				t.Error("store should not be written without a new record")
			}
		})
	}
}

func TestScoreAdd(t *testing.T) {
	var s Score
	for range 7 {
		s.Add(1)
	}
	if s.Current != 7 {
		t.Errorf("Current = %d, expected 7", s.Current)
	}
}
