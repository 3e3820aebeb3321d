package github

import "fmt"

// NotFoundError means the requested entity does not exist upstream (HTTP 404)
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("github: %s not found", e.Resource)
}

// UpstreamError is any other non-2xx response or network failure from the
// GitHub API. It is returned as-is; this layer never retries.
type UpstreamError struct {
	Resource   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("github: request for %s failed: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("github: API returned status %d for %s", e.StatusCode, e.Resource)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
