package manager

import "sync"

// maxScores caps the score history kept for the session.
const maxScores = 50

// GameStats is a copy of the session statistics.
type GameStats struct {
	GamesPlayed  int     `json:"gamesPlayed"`
	HighScore    int     `json:"highScore"`
	AverageScore float64 `json:"averageScore"`
	ScoreHistory []int   `json:"scoreHistory"`
}

// StateManager keeps per-session score statistics. Nothing is written to
// disk; a new process starts from zero.
type StateManager struct {
	mu           sync.RWMutex
	gamesPlayed  int
	highScore    int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0, maxScores),
	}
}

// AddToHistory records the final score of a finished game.
func (sm *StateManager) AddToHistory(score int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.gamesPlayed++
	if score > sm.highScore {
		sm.highScore = score
	}
	if len(sm.scoreHistory) >= maxScores {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetHighScore() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.highScore
}

func (sm *StateManager) GamesPlayed() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.gamesPlayed
}

// Stats returns a snapshot; the history slice is a copy.
func (sm *StateManager) Stats() GameStats {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]int, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)

	var avg float64
	if len(history) > 0 {
		sum := 0
		for _, score := range history {
			sum += score
		}
		avg = float64(sum) / float64(len(history))
	}

	return GameStats{
		GamesPlayed:  sm.gamesPlayed,
		HighScore:    sm.highScore,
		AverageScore: avg,
		ScoreHistory: history,
	}
}
