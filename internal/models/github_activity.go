package models

import "time"

// GitHubEvent is a single entry in a user's public event feed.
// Only the fields needed for the contribution proxy are decoded.
type GitHubEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// GitHubCommit is a commit as returned by the repository commits endpoint
type GitHubCommit struct {
	SHA    string       `json:"sha"`
	Commit CommitDetail `json:"commit"`
}

type CommitDetail struct {
	Message string       `json:"message"`
	Author  CommitAuthor `json:"author"`
}

type CommitAuthor struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

// GitHubIssue is an issue as returned by the issues endpoint. The endpoint
// mixes pull requests into the result; PullRequest is non-nil for those.
type GitHubIssue struct {
	Number      int       `json:"number"`
	Title       string    `json:"title"`
	State       string    `json:"state"`
	PullRequest *struct{} `json:"pull_request,omitempty"`
}

// GitHubPullRequest is a pull request from the pulls endpoint,
// which is already free of the issue/PR mixing above
type GitHubPullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	State  string `json:"state"`
}

// GitHubContributor is an entry from the contributors endpoint
type GitHubContributor struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
}

// GitHubContentEntry is one entry from a directory listing
type GitHubContentEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// SearchResult carries the total hit count of a search query
type SearchResult struct {
	TotalCount int `json:"total_count"`
}
