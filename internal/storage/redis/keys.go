package redis

import (
	"fmt"

	"github.com/mcoot/pig-go/internal/model"
)

// Key prefix for all pig data
const keyPrefix = "pig"

// Hash fields of a player stats key
const (
	fieldGames  = "games"
	fieldWins   = "wins"
	fieldLosses = "losses"
	fieldTies   = "ties"
)

// summaryKey returns the Redis key for a GameSummary
func summaryKey(id model.GameID) string {
	return fmt.Sprintf("%s:summary:%s", keyPrefix, id)
}

// recentIndexKey returns the Redis key for the LIST of summary IDs, newest first
func recentIndexKey() string {
	return fmt.Sprintf("%s:idx:recent", keyPrefix)
}

// statsKey returns the Redis key for the HASH of a player's result counts
func statsKey(name string) string {
	return fmt.Sprintf("%s:stats:%s", keyPrefix, name)
}

// resultField maps a result onto its stats hash field
func resultField(result model.PlayerResult) string {
	switch result {
	case model.ResultWin:
		return fieldWins
	case model.ResultLoss:
		return fieldLosses
	default:
		return fieldTies
	}
}
