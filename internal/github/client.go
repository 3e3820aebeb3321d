package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Rajan16703/gitcompare/internal/models"
)

// Client is a minimal unauthenticated GitHub REST client. All reads are
// public, so requests carry no token and are subject to the unauthenticated
// rate limit, which this layer does not mitigate.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new GitHub API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// get issues a single GET request and decodes the JSON response into target.
// A 404 maps to NotFoundError, any other non-2xx status or transport failure
// to UpstreamError. No retries.
func (c *Client) get(ctx context.Context, path string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &UpstreamError{Resource: path, Err: err}
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "gitcompare")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Resource: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{Resource: path}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Resource: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &UpstreamError{Resource: path, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}

// GetUser fetches a user's public account record
func (c *Client) GetUser(ctx context.Context, username string) (*models.GitHubUser, error) {
	var user models.GitHubUser
	if err := c.get(ctx, fmt.Sprintf("/users/%s", username), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserRepos fetches the first 100 repositories of a user, most recently
// updated first. Further pages are never fetched; the truncation is part of
// the contract.
func (c *Client) GetUserRepos(ctx context.Context, username string) ([]models.GitHubRepo, error) {
	var repos []models.GitHubRepo
	if err := c.get(ctx, fmt.Sprintf("/users/%s/repos?per_page=100&sort=updated", username), &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetUserEvents fetches a user's recent public event feed. GitHub keeps
// roughly 90 days / 300 events, so the length is only a contribution proxy.
func (c *Client) GetUserEvents(ctx context.Context, username string) ([]models.GitHubEvent, error) {
	var events []models.GitHubEvent
	if err := c.get(ctx, fmt.Sprintf("/users/%s/events", username), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SearchAuthoredCount returns the total number of issues or pull requests
// authored by username. kind is "pr" or "issue".
func (c *Client) SearchAuthoredCount(ctx context.Context, username, kind string) (int, error) {
	var result models.SearchResult
	if err := c.get(ctx, fmt.Sprintf("/search/issues?q=author:%s+type:%s", username, kind), &result); err != nil {
		return 0, err
	}
	return result.TotalCount, nil
}

// GetRepository fetches a single repository record
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*models.GitHubRepo, error) {
	var repository models.GitHubRepo
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/%s", owner, repo), &repository); err != nil {
		return nil, err
	}
	return &repository, nil
}

// GetLanguages fetches the byte-count-per-language map of a repository
func (c *Client) GetLanguages(ctx context.Context, owner, repo string) (map[string]int, error) {
	languages := make(map[string]int)
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/languages", owner, repo), &languages); err != nil {
		return nil, err
	}
	return languages, nil
}

// GetCommits fetches up to 30 most recent commits, newest first
func (c *Client) GetCommits(ctx context.Context, owner, repo string) ([]models.GitHubCommit, error) {
	var commits []models.GitHubCommit
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/commits?per_page=30", owner, repo), &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

// GetIssues fetches up to 100 issues of any state. The endpoint mixes pull
// requests into the result; callers must filter on the pull_request marker.
func (c *Client) GetIssues(ctx context.Context, owner, repo string) ([]models.GitHubIssue, error) {
	var issues []models.GitHubIssue
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/issues?state=all&per_page=100", owner, repo), &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// GetPullRequests fetches up to 100 pull requests of any state
func (c *Client) GetPullRequests(ctx context.Context, owner, repo string) ([]models.GitHubPullRequest, error) {
	var pulls []models.GitHubPullRequest
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/pulls?state=all&per_page=100", owner, repo), &pulls); err != nil {
		return nil, err
	}
	return pulls, nil
}

// GetContributors fetches up to 100 contributors
func (c *Client) GetContributors(ctx context.Context, owner, repo string) ([]models.GitHubContributor, error) {
	var contributors []models.GitHubContributor
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/contributors?per_page=100", owner, repo), &contributors); err != nil {
		return nil, err
	}
	return contributors, nil
}

// GetRootContents fetches the root directory listing of a repository
func (c *Client) GetRootContents(ctx context.Context, owner, repo string) ([]models.GitHubContentEntry, error) {
	var entries []models.GitHubContentEntry
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/contents/", owner, repo), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
