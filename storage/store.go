// Package storage persists the best score and the ranked score history across runs
package storage

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Chao-po/vertical-space-shooter/parameter"
)

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . ScoreStore

// Keys used in the key-value backend
const (
	KeyBest    = "vs_highscore"
	KeyHistory = "vs_history"
)

// ErrCorrupt reports a backend value that cannot be decoded
var ErrCorrupt = errors.New("storage: corrupt value")

// KV is the minimal key-value backend: integers and ordered integer lists
type KV interface {
	GetInt(key string) (int, bool, error)
	SetInt(key string, v int) error
	GetList(key string) ([]int, bool, error)
	SetList(key string, v []int) error
}

// ScoreStore receives final scores and serves the best score and ranked history
type ScoreStore interface {
	Best() (int, error)
	History() ([]int, error)
	Submit(score int) error
}

// Scoreboard implements ScoreStore on top of a KV backend
type Scoreboard struct {
	kv    KV
	limit int
}

// NewScoreboard keeps the top parameter.HistorySize scores
func NewScoreboard(kv KV) *Scoreboard {
	return &Scoreboard{kv: kv, limit: parameter.HistorySize}
}

// Best returns zero when nothing was stored yet
func (s *Scoreboard) Best() (int, error) {
	v, ok, err := s.kv.GetInt(KeyBest)
	if err != nil {
		return 0, fmt.Errorf("load best score: %w", err)
	}
	if !ok {
		return 0, nil
	}
	return v, nil
}

// History returns scores in descending order, at most limit entries
func (s *Scoreboard) History() ([]int, error) {
	v, ok, err := s.kv.GetList(KeyHistory)
	if err != nil {
		return nil, fmt.Errorf("load score history: %w", err)
	}
	if !ok {
		return []int{}, nil
	}
	return Rank(v, s.limit), nil
}

// Submit records a finished run's score
// Best is only written when beaten; history is always re-ranked and truncated
func (s *Scoreboard) Submit(score int) error {
	best, err := s.Best()
	if err != nil {
		best = 0
	}
	var errs []error
	if score > best {
		if err := s.kv.SetInt(KeyBest, score); err != nil {
			errs = append(errs, fmt.Errorf("save best score: %w", err))
		}
	}

	history, err := s.History()
	if err != nil {
		history = nil
	}
	history = Rank(append(history, score), s.limit)
	if err := s.kv.SetList(KeyHistory, history); err != nil {
		errs = append(errs, fmt.Errorf("save score history: %w", err))
	}
	return errors.Join(errs...)
}

// Rank sorts a copy of scores descending and keeps at most limit entries
func Rank(scores []int, limit int) []int {
	out := make([]int, len(scores))
	copy(out, scores)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
