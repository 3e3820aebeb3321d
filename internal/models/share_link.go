package models

import (
	"time"

	"github.com/google/uuid"
)

// ShareLink is a public-read token pointing at a saved comparison
type ShareLink struct {
	Token        string    `json:"token"`
	ComparisonID string    `json:"comparison_id"`
	ViewCount    int       `json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewShareLink creates a new ShareLink with a generated token
func NewShareLink(comparisonID string) *ShareLink {
	return &ShareLink{
		Token:        uuid.New().String(),
		ComparisonID: comparisonID,
		ViewCount:    0,
		CreatedAt:    time.Now(),
	}
}
