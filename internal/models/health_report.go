package models

import "time"

// RepositoryHealthReport is the ephemeral result of a repository health
// analysis. Nothing in it is persisted; every analysis rebuilds it from
// freshly fetched data.
type RepositoryHealthReport struct {
	Repository    *GitHubRepo        `json:"repository"`
	Languages     map[string]int     `json:"languages"`
	Commits       []GitHubCommit     `json:"commits"`
	RecentCommits []GitHubCommit     `json:"recent_commits"`
	Issues        IssueCounts        `json:"issues"`
	PullRequests  PullRequestCounts  `json:"pull_requests"`
	Contributors  int                `json:"contributors"`
	Documentation DocumentationFlags `json:"documentation"`
	Activity      ActivitySummary    `json:"activity"`
	HealthScore   int                `json:"health_score"`
	HealthGrade   string             `json:"health_grade"`
}

// IssueCounts splits issues by state, with pull requests already filtered out
type IssueCounts struct {
	Open   int `json:"open"`
	Closed int `json:"closed"`
}

type PullRequestCounts struct {
	Open   int `json:"open"`
	Closed int `json:"closed"`
}

// DocumentationFlags records which community files were found in the
// repository's root directory listing
type DocumentationFlags struct {
	HasReadme        bool `json:"has_readme"`
	HasLicense       bool `json:"has_license"`
	HasContributing  bool `json:"has_contributing"`
	HasCodeOfConduct bool `json:"has_code_of_conduct"`
}

// ActivitySummary describes recent commit activity within the fetched page
type ActivitySummary struct {
	RecentCommitCount int        `json:"recent_commit_count"`
	LastCommitDate    *time.Time `json:"last_commit_date"`
	IsActive          bool       `json:"is_active"`
}
