package services

import (
	"context"
	"strings"
	"time"

	"github.com/Rajan16703/gitcompare/internal/github"
	"github.com/Rajan16703/gitcompare/internal/models"
	"github.com/Rajan16703/gitcompare/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// recentCommitWindow is how far back a commit still counts as recent activity
const recentCommitWindow = 30 * 24 * time.Hour

// HealthService analyzes the documentation and activity hygiene of a single
// repository and condenses it into a 0-100 score with a letter grade
type HealthService struct {
	client *github.Client
}

func NewHealthService(client *github.Client) *HealthService {
	return &HealthService{
		client: client,
	}
}

// AnalyzeRepositoryHealth fans out seven requests for the repository and
// folds the responses into a health report. Only the root directory listing
// may fail silently (a fresh repo has no browsable contents); every other
// failed fetch aborts the analysis.
func (s *HealthService) AnalyzeRepositoryHealth(ctx context.Context, owner, repo string) (*models.RepositoryHealthReport, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		repository   *models.GitHubRepo
		repoErr      error
		languages    map[string]int
		commits      []models.GitHubCommit
		issues       []models.GitHubIssue
		pulls        []models.GitHubPullRequest
		contributors []models.GitHubContributor
		contents     []models.GitHubContentEntry
	)

	g.Go(func() error {
		repository, repoErr = s.client.GetRepository(gctx, owner, repo)
		return repoErr
	})

	g.Go(func() error {
		var err error
		languages, err = s.client.GetLanguages(gctx, owner, repo)
		return err
	})

	g.Go(func() error {
		var err error
		commits, err = s.client.GetCommits(gctx, owner, repo)
		return err
	})

	g.Go(func() error {
		var err error
		issues, err = s.client.GetIssues(gctx, owner, repo)
		return err
	})

	g.Go(func() error {
		var err error
		pulls, err = s.client.GetPullRequests(gctx, owner, repo)
		return err
	})

	g.Go(func() error {
		var err error
		contributors, err = s.client.GetContributors(gctx, owner, repo)
		return err
	})

	g.Go(func() error {
		entries, err := s.client.GetRootContents(gctx, owner, repo)
		if err != nil {
			logger.WithError(err).WithField("repo", owner+"/"+repo).Warnf("contents fetch failed, documentation flags default to false")
			return nil
		}
		contents = entries
		return nil
	})

	if err := g.Wait(); err != nil {
		// Surface the repository record's error first so a missing or
		// private repo is reported as NotFound, not as whichever sibling
		// request happened to fail first
		if repoErr != nil {
			return nil, repoErr
		}
		return nil, err
	}

	docs := detectDocumentation(contents)
	recent := filterRecentCommits(commits, time.Now().Add(-recentCommitWindow))

	report := &models.RepositoryHealthReport{
		Repository:    repository,
		Languages:     languages,
		Commits:       commits,
		RecentCommits: recent,
		Issues:        partitionIssues(issues),
		PullRequests:  partitionPullRequests(pulls),
		Contributors:  len(contributors),
		Documentation: docs,
		Activity:      summarizeActivity(commits, recent),
	}

	report.HealthScore = computeHealthScore(docs, repository, len(recent), len(contributors))
	report.HealthGrade = healthGrade(report.HealthScore)

	return report, nil
}

// detectDocumentation matches root filenames against the community file
// names, case-insensitively and by substring
func detectDocumentation(contents []models.GitHubContentEntry) models.DocumentationFlags {
	flags := models.DocumentationFlags{}
	for _, entry := range contents {
		name := strings.ToLower(entry.Name)
		if strings.Contains(name, "readme") {
			flags.HasReadme = true
		}
		if strings.Contains(name, "license") || strings.Contains(name, "licence") {
			flags.HasLicense = true
		}
		if strings.Contains(name, "contributing") {
			flags.HasContributing = true
		}
		if strings.Contains(name, "code_of_conduct") || strings.Contains(name, "code-of-conduct") {
			flags.HasCodeOfConduct = true
		}
	}
	return flags
}

// partitionIssues counts issues by state, dropping the pull requests the
// issues endpoint mixes in. The pulls endpoint reports those correctly.
func partitionIssues(issues []models.GitHubIssue) models.IssueCounts {
	counts := models.IssueCounts{}
	for _, issue := range issues {
		if issue.PullRequest != nil {
			continue
		}
		if issue.State == "open" {
			counts.Open++
		} else {
			counts.Closed++
		}
	}
	return counts
}

func partitionPullRequests(pulls []models.GitHubPullRequest) models.PullRequestCounts {
	counts := models.PullRequestCounts{}
	for _, pull := range pulls {
		if pull.State == "open" {
			counts.Open++
		} else {
			counts.Closed++
		}
	}
	return counts
}

// filterRecentCommits keeps commits authored after the cutoff
func filterRecentCommits(commits []models.GitHubCommit, cutoff time.Time) []models.GitHubCommit {
	recent := make([]models.GitHubCommit, 0, len(commits))
	for _, commit := range commits {
		if commit.Commit.Author.Date.After(cutoff) {
			recent = append(recent, commit)
		}
	}
	return recent
}

// summarizeActivity derives the activity summary from the fetched commit
// page. The page is sorted newest first, so item 0 carries the last commit
// date within the fetched window.
func summarizeActivity(commits, recent []models.GitHubCommit) models.ActivitySummary {
	summary := models.ActivitySummary{
		RecentCommitCount: len(recent),
		IsActive:          len(recent) > 0,
	}
	if len(commits) > 0 {
		date := commits[0].Commit.Author.Date
		summary.LastCommitDate = &date
	}
	return summary
}

// computeHealthScore adds up the nine qualifying conditions. Maximum 100.
func computeHealthScore(docs models.DocumentationFlags, repository *models.GitHubRepo, recentCommits, contributors int) int {
	score := 0
	if docs.HasReadme {
		score += 20
	}
	if docs.HasLicense {
		score += 15
	}
	if docs.HasContributing {
		score += 10
	}
	if docs.HasCodeOfConduct {
		score += 10
	}
	if repository.HasDescription() {
		score += 10
	}
	if recentCommits > 0 {
		score += 15
	}
	if contributors > 1 {
		score += 10
	}
	if repository.StargazersCount > 0 {
		score += 5
	}
	if repository.ForksCount > 0 {
		score += 5
	}
	return score
}

// healthGrade maps a health score to its letter grade
func healthGrade(score int) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 60:
		return "B"
	case score >= 40:
		return "C"
	default:
		return "D"
	}
}
