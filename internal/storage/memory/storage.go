package memory

import (
	"context"
	"sync"

	"github.com/mcoot/pig-go/internal/model"
	"github.com/mcoot/pig-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	summaries map[model.GameID]*model.GameSummary
	order     []model.GameID // oldest first
	stats     map[string]*model.PlayerStats
	limit     int
}

// New creates a new in-memory storage instance retaining at most
// historyLimit summaries (0 for no limit)
func New(historyLimit int) *Storage {
	return &Storage{
		summaries: make(map[model.GameID]*model.GameSummary),
		stats:     make(map[string]*model.PlayerStats),
		limit:     historyLimit,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Summary operations

func (s *Storage) SaveSummary(ctx context.Context, summary *model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.summaries[summary.ID]; !exists {
		s.order = append(s.order, summary.ID)
	}
	s.summaries[summary.ID] = summary

	for _, name := range summary.PlayerNames() {
		stats, ok := s.stats[name]
		if !ok {
			stats = &model.PlayerStats{Name: name}
			s.stats[name] = stats
		}
		stats.Record(summary.Outcome.ResultFor(name))
	}

	if s.limit > 0 && len(s.order) > s.limit {
		evicted := s.order[:len(s.order)-s.limit]
		for _, id := range evicted {
			delete(s.summaries, id)
		}
		s.order = append([]model.GameID(nil), s.order[len(evicted):]...)
	}
	return nil
}

func (s *Storage) GetSummary(ctx context.Context, id model.GameID) (*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary, ok := s.summaries[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return summary, nil
}

func (s *Storage) ListSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.order)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]*model.GameSummary, 0, n)
	for i := len(s.order) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, s.summaries[s.order[i]])
	}
	return result, nil
}

// Stats operations

// GetPlayerStats returns zero counts for a name with no recorded games
func (s *Storage) GetPlayerStats(ctx context.Context, name string) (*model.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.stats[name]
	if !ok {
		return &model.PlayerStats{Name: name}, nil
	}
	copied := *stats
	return &copied, nil
}
