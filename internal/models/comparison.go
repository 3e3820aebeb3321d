package models

import (
	"time"

	"github.com/google/uuid"
)

// ComparisonEntry is the persisted form of one comparison participant.
// Repo lists are dropped on save; only the snapshot and metrics survive.
type ComparisonEntry struct {
	User    *GitHubUser        `json:"user"`
	Metrics *ComparisonMetrics `json:"metrics"`
}

// Comparison is a saved comparison run. OwnerID is nil for anonymous saves.
type Comparison struct {
	ID        string            `json:"id"`
	OwnerID   *string           `json:"owner_id"`
	Usernames []string          `json:"usernames"`
	Results   []ComparisonEntry `json:"results"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewComparison creates a new Comparison with a generated UUID
func NewComparison(ownerID *string, usernames []string, results []ComparisonEntry) *Comparison {
	return &Comparison{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Usernames: usernames,
		Results:   results,
		CreatedAt: time.Now(),
	}
}
