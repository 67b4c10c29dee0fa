package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pig-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New(0)
	s.ctx = context.Background()
}

func summary(id model.GameID, p1 string, s1 int, p2 string, s2 int) *model.GameSummary {
	scores := []model.PlayerScore{
		{Name: p1, Kind: model.PlayerKindComputer, Score: s1},
		{Name: p2, Kind: model.PlayerKindComputer, Score: s2},
	}
	completed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.GameSummary{
		ID:          id,
		Config:      model.DefaultGameConfig(),
		Outcome:     model.DecideOutcome(model.ReasonTargetReached, scores),
		StartedAt:   completed.Add(-time.Minute),
		CompletedAt: completed,
	}
}

// Summary tests

func (s *StorageSuite) TestSaveAndGetSummary() {
	sum := summary("G1", "Alice", 100, "Bob", 42)

	err := s.storage.SaveSummary(s.ctx, sum)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSummary(s.ctx, "G1")
	s.Require().NoError(err)
	s.Equal(sum.ID, retrieved.ID)
	s.Equal("Alice", retrieved.Outcome.Winner)
}

func (s *StorageSuite) TestGetSummaryNotFound() {
	_, err := s.storage.GetSummary(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListSummariesNewestFirst() {
	for i := 1; i <= 3; i++ {
		id := model.GameID(fmt.Sprintf("G%d", i))
		s.Require().NoError(s.storage.SaveSummary(s.ctx, summary(id, "A", 100, "B", 0)))
	}

	all, err := s.storage.ListSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(model.GameID("G3"), all[0].ID)
	s.Equal(model.GameID("G1"), all[2].ID)

	limited, err := s.storage.ListSummaries(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(limited, 2)
	s.Equal(model.GameID("G3"), limited[0].ID)
	s.Equal(model.GameID("G2"), limited[1].ID)
}

func (s *StorageSuite) TestListSummariesEmpty() {
	list, err := s.storage.ListSummaries(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *StorageSuite) TestHistoryLimitEvictsOldest() {
	store := New(2)
	for i := 1; i <= 3; i++ {
		id := model.GameID(fmt.Sprintf("G%d", i))
		s.Require().NoError(store.SaveSummary(s.ctx, summary(id, "A", 100, "B", 0)))
	}

	_, err := store.GetSummary(s.ctx, "G1")
	s.ErrorIs(err, model.ErrGameNotFound)

	list, err := store.ListSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(list, 2)

	// Stats outlive evicted summaries
	stats, err := store.GetPlayerStats(s.ctx, "A")
	s.Require().NoError(err)
	s.Equal(3, stats.Wins)
}

// Stats tests

func (s *StorageSuite) TestPlayerStats() {
	s.Require().NoError(s.storage.SaveSummary(s.ctx, summary("G1", "Alice", 100, "Bob", 10)))
	s.Require().NoError(s.storage.SaveSummary(s.ctx, summary("G2", "Bob", 101, "Alice", 99)))
	s.Require().NoError(s.storage.SaveSummary(s.ctx, summary("G3", "Alice", 30, "Carol", 30)))

	alice, err := s.storage.GetPlayerStats(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerStats{Name: "Alice", Games: 3, Wins: 1, Losses: 1, Ties: 1}, *alice)

	carol, err := s.storage.GetPlayerStats(s.ctx, "Carol")
	s.Require().NoError(err)
	s.Equal(model.PlayerStats{Name: "Carol", Games: 1, Ties: 1}, *carol)
}

func (s *StorageSuite) TestPlayerStatsUnknownName() {
	stats, err := s.storage.GetPlayerStats(s.ctx, "Nobody")
	s.Require().NoError(err)
	s.Equal(model.PlayerStats{Name: "Nobody"}, *stats)
}

// Concurrency test

func (s *StorageSuite) TestConcurrentSaves() {
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := model.GameID(fmt.Sprintf("G%d", i))
			_ = s.storage.SaveSummary(s.ctx, summary(id, "A", 100, "B", 0))
			_, _ = s.storage.ListSummaries(s.ctx, 5)
		}(i)
	}
	wg.Wait()

	stats, err := s.storage.GetPlayerStats(s.ctx, "B")
	s.Require().NoError(err)
	s.Equal(50, stats.Losses)
}
