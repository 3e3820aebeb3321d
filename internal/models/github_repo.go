package models

import "time"

// GitHubRepo is an immutable snapshot of a repository
type GitHubRepo struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	HTMLURL         string    `json:"html_url"`
	Description     *string   `json:"description"`
	Fork            bool      `json:"fork"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	ForksCount      int       `json:"forks_count"`
	Language        *string   `json:"language"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HasDescription reports whether the repository has a non-empty description
func (r *GitHubRepo) HasDescription() bool {
	return r.Description != nil && *r.Description != ""
}
