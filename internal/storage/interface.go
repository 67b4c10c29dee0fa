package storage

import (
	"context"

	"github.com/mcoot/pig-go/internal/model"
)

// Storage defines the interface for result persistence.
// Only finished games are stored; in-progress games are never persisted.
type Storage interface {
	// Summary operations
	SaveSummary(ctx context.Context, summary *model.GameSummary) error
	GetSummary(ctx context.Context, id model.GameID) (*model.GameSummary, error)
	// ListSummaries returns up to limit summaries, newest first.
	// A limit of zero or less returns everything retained.
	ListSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error)

	// Stats operations
	GetPlayerStats(ctx context.Context, name string) (*model.PlayerStats, error)
}
