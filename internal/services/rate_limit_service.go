package services

import (
	"context"
	"time"

	gogithub "github.com/google/go-github/v57/github"
)

// RateLimitStatus is the remaining unauthenticated GitHub quota. The fetch
// layer does not manage rate limits, so this readout is the only visibility
// callers get into how close they are to a 403.
type RateLimitStatus struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

type RateLimitService struct {
	client *gogithub.Client
}

func NewRateLimitService(client *gogithub.Client) *RateLimitService {
	return &RateLimitService{
		client: client,
	}
}

// Status fetches the current core rate limit window
func (s *RateLimitService) Status(ctx context.Context) (*RateLimitStatus, error) {
	limits, _, err := s.client.RateLimit.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &RateLimitStatus{
		Limit:     limits.Core.Limit,
		Remaining: limits.Core.Remaining,
		ResetAt:   limits.Core.Reset.Time,
	}, nil
}
