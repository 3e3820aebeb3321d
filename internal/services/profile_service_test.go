package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Rajan16703/gitcompare/internal/github"
	"github.com/Rajan16703/gitcompare/internal/models"
	"github.com/stretchr/testify/assert"
)

const octocatUser = `{
	"login": "octocat",
	"id": 583231,
	"avatar_url": "https://avatars.githubusercontent.com/u/583231",
	"html_url": "https://github.com/octocat",
	"name": "The Octocat",
	"bio": "Building things",
	"blog": "https://octocat.dev",
	"public_repos": 20,
	"public_gists": 10,
	"followers": 100,
	"following": 9,
	"created_at": "2011-01-25T18:44:36Z",
	"updated_at": "2024-01-01T00:00:00Z"
}`

const octocatRepos = `[
	{"id": 1, "name": "cli", "full_name": "octocat/cli", "fork": false,
	 "description": "Tools and readme examples for building command line applications",
	 "stargazers_count": 300, "forks_count": 60, "language": "Go"},
	{"id": 2, "name": "cli-fork", "full_name": "octocat/cli-fork", "fork": true,
	 "description": "CLI",
	 "stargazers_count": 150, "forks_count": 80, "language": "Go"},
	{"id": 3, "name": "web", "full_name": "octocat/web", "fork": false,
	 "description": null,
	 "stargazers_count": 50, "forks_count": 20, "language": "TypeScript"}
]`

// newProfileFixtureServer serves a deterministic GitHub double for octocat.
// Ten events, 40 authored PRs, 30 authored issues.
func newProfileFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/users/octocat":
			w.Write([]byte(octocatUser))
		case r.URL.Path == "/users/octocat/repos":
			w.Write([]byte(octocatRepos))
		case r.URL.Path == "/users/octocat/events":
			w.Write([]byte(`[` + strings.Repeat(`{"id":"1","type":"PushEvent"},`, 9) + `{"id":"10","type":"PushEvent"}]`))
		case r.URL.Path == "/search/issues" && strings.Contains(r.URL.RawQuery, "type:pr"):
			w.Write([]byte(`{"total_count": 40}`))
		case r.URL.Path == "/search/issues" && strings.Contains(r.URL.RawQuery, "type:issue"):
			w.Write([]byte(`{"total_count": 30}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newProfileService(serverURL string) *ProfileService {
	return NewProfileService(github.NewClient(serverURL, 5*time.Second))
}

func TestFetchCompleteProfile(t *testing.T) {
	server := newProfileFixtureServer(t)
	defer server.Close()

	service := newProfileService(server.URL)
	profile, err := service.FetchCompleteProfile(context.Background(), "octocat")

	assert.NoError(t, err)
	assert.Equal(t, "octocat", profile.User.Login)
	assert.Len(t, profile.Repos, 3)

	m := profile.Metrics
	assert.Equal(t, 500, m.TotalStars)
	assert.Equal(t, 160, m.TotalForks)
	assert.Equal(t, 100, m.Followers)
	assert.Equal(t, 9, m.Following)
	assert.Equal(t, 3, m.Repositories)
	assert.Equal(t, 2, m.Languages)
	assert.Equal(t, 10, m.Contributions)
	assert.Equal(t, 70, m.PRIssues)
	// "readme" in a non-fork description (+5) plus one description over 50
	// characters (+1)
	assert.InDelta(t, 6.0, m.ReadmeQualityScore, 1e-9)
	// repos>10, followers>50, gists>5, bio, blog
	assert.Equal(t, 5, m.AchievementScore)
	// 1 fork / 10 + 3 popular / 5
	assert.InDelta(t, 0.7, m.CommunityScore, 1e-9)
	assert.Greater(t, m.ProfileAge, 0)

	// 0.15 + 4 + 15 + 8 + 2 + 6 + 7 + 1 + 5 + 0.7
	assert.InDelta(t, 48.85, m.TotalScore, 1e-9)
}

func TestFetchCompleteProfileZeroRepos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/users/newbie":
			w.Write([]byte(`{"login":"newbie","id":7,"public_repos":0,"public_gists":0,
				"followers":10,"following":2,"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"}`))
		case r.URL.Path == "/users/newbie/repos":
			w.Write([]byte(`[]`))
		case r.URL.Path == "/users/newbie/events":
			w.Write([]byte(`[{"id":"1","type":"PushEvent"},{"id":"2","type":"PushEvent"},
				{"id":"3","type":"PushEvent"},{"id":"4","type":"PushEvent"},{"id":"5","type":"PushEvent"}]`))
		case r.URL.Path == "/search/issues":
			w.Write([]byte(`{"total_count": 0}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	service := newProfileService(server.URL)
	profile, err := service.FetchCompleteProfile(context.Background(), "newbie")

	assert.NoError(t, err)

	m := profile.Metrics
	assert.Equal(t, 0, m.TotalStars)
	assert.Equal(t, 0, m.TotalForks)
	assert.Equal(t, 0, m.Languages)
	assert.InDelta(t, 0.0, m.ReadmeQualityScore, 1e-9)
	assert.InDelta(t, 0.0, m.CommunityScore, 1e-9)
	assert.Equal(t, 0, m.AchievementScore)

	// Only the non-repo-derived terms remain:
	// contributions 5/1000*15 + followers 10/500*5
	assert.InDelta(t, 0.175, m.TotalScore, 1e-9)
}

func TestFetchCompleteProfileNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	service := newProfileService(server.URL)
	_, err := service.FetchCompleteProfile(context.Background(), "ghost")

	var notFound *github.NotFoundError
	assert.Error(t, err)
	assert.True(t, errors.As(err, &notFound), "a missing account must surface as NotFoundError")
}

func TestFetchCompleteProfileNotFoundBeatsRepoFailure(t *testing.T) {
	// The repos fetch fails differently; the user 404 must still win
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/ghost" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := newProfileService(server.URL)
	_, err := service.FetchCompleteProfile(context.Background(), "ghost")

	var notFound *github.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestFetchCompleteProfileBonusMetricDegradation(t *testing.T) {
	// Events and search both fail; the profile must still come back with
	// those metrics zeroed
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/octocat":
			w.Write([]byte(octocatUser))
		case "/users/octocat/repos":
			w.Write([]byte(octocatRepos))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	service := newProfileService(server.URL)
	profile, err := service.FetchCompleteProfile(context.Background(), "octocat")

	assert.NoError(t, err)
	assert.Equal(t, 0, profile.Metrics.Contributions)
	assert.Equal(t, 0, profile.Metrics.PRIssues)

	// Total loses only the contribution and search terms
	assert.InDelta(t, 41.7, profile.Metrics.TotalScore, 1e-9)
}

func TestFetchCompleteProfilePartialSearchFailureZeroesCount(t *testing.T) {
	// One of the two search queries failing zeroes the whole sub-metric
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/users/octocat":
			w.Write([]byte(octocatUser))
		case r.URL.Path == "/users/octocat/repos":
			w.Write([]byte(octocatRepos))
		case r.URL.Path == "/users/octocat/events":
			w.Write([]byte(`[]`))
		case r.URL.Path == "/search/issues" && strings.Contains(r.URL.RawQuery, "type:pr"):
			w.Write([]byte(`{"total_count": 40}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	service := newProfileService(server.URL)
	profile, err := service.FetchCompleteProfile(context.Background(), "octocat")

	assert.NoError(t, err)
	assert.Equal(t, 0, profile.Metrics.PRIssues)
}

func TestFetchCompleteProfileEmptyUsername(t *testing.T) {
	service := newProfileService("http://127.0.0.1:0")
	_, err := service.FetchCompleteProfile(context.Background(), "")
	assert.Error(t, err)
}

func TestCompareProfilesRanking(t *testing.T) {
	profiles := []*models.ProfileWithMetrics{
		{User: &models.GitHubUser{Login: "low"}, Metrics: &models.ComparisonMetrics{TotalScore: 10}},
		{User: &models.GitHubUser{Login: "high"}, Metrics: &models.ComparisonMetrics{TotalScore: 80}},
		{User: &models.GitHubUser{Login: "mid"}, Metrics: &models.ComparisonMetrics{TotalScore: 40}},
	}

	rankProfiles(profiles)

	assert.Equal(t, "high", profiles[0].User.Login)
	assert.Equal(t, "mid", profiles[1].User.Login)
	assert.Equal(t, "low", profiles[2].User.Login)
}

func TestProfileAgeDays(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// Half a day rounds up to one whole day
	assert.Equal(t, 1, profileAgeDays(now.Add(-12*time.Hour), now))
	assert.Equal(t, 10, profileAgeDays(now.AddDate(0, 0, -10), now))
}

func TestReadmeQualityScoreForkedReposDoNotCount(t *testing.T) {
	desc := "A readme-driven project template with extensive documentation included"
	repos := []models.GitHubRepo{
		{Fork: true, Description: &desc},
	}

	// The description mentions "readme" but the repo is a fork, so only the
	// length bonus applies
	assert.InDelta(t, 1.0, readmeQualityScore(repos), 1e-9)
}

func TestCountLanguagesDeduplicates(t *testing.T) {
	goLang := "Go"
	rust := "Rust"
	repos := []models.GitHubRepo{
		{Language: &goLang},
		{Language: &goLang},
		{Language: &rust},
		{Language: nil},
	}

	assert.Equal(t, 2, countLanguages(repos))
}
