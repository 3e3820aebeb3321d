package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Rajan16703/gitcompare/internal/github"
	"github.com/Rajan16703/gitcompare/internal/models"
	"github.com/Rajan16703/gitcompare/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// ProfileService fetches GitHub profiles and computes comparison metrics.
// It holds no state across calls; every fetch re-derives everything.
type ProfileService struct {
	client *github.Client
}

func NewProfileService(client *github.Client) *ProfileService {
	return &ProfileService{
		client: client,
	}
}

// FetchCompleteProfile fetches the account record, the first repo page and
// the bonus metric sources for a username, then computes the weighted
// composite score. The account and repo fetches are mandatory; the event
// feed and the two search queries degrade to zero on failure instead of
// failing the whole profile.
func (s *ProfileService) FetchCompleteProfile(ctx context.Context, username string) (*models.ProfileWithMetrics, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}

	g, gctx := errgroup.WithContext(ctx)

	var (
		user     *models.GitHubUser
		userErr  error
		repos    []models.GitHubRepo
		reposErr error
	)

	g.Go(func() error {
		user, userErr = s.client.GetUser(gctx, username)
		return userErr
	})

	g.Go(func() error {
		repos, reposErr = s.client.GetUserRepos(gctx, username)
		return reposErr
	})

	// Bonus metrics: failures here never abort the fetch
	var (
		contributions       int
		prCount, issueCount int
		prErr, issErr       error
	)

	g.Go(func() error {
		events, err := s.client.GetUserEvents(gctx, username)
		if err != nil {
			logger.WithError(err).WithField("username", username).Warnf("events fetch failed, contributions default to 0")
			return nil
		}
		contributions = len(events)
		return nil
	})

	g.Go(func() error {
		prCount, prErr = s.client.SearchAuthoredCount(gctx, username, "pr")
		return nil
	})

	g.Go(func() error {
		issueCount, issErr = s.client.SearchAuthoredCount(gctx, username, "issue")
		return nil
	})

	if err := g.Wait(); err != nil {
		// The account record decides existence; surface its error first so a
		// 404 is reported as NotFound regardless of the repo fetch's outcome
		if userErr != nil {
			return nil, userErr
		}
		return nil, reposErr
	}

	// Either search failing zeroes the whole sub-metric
	prIssues := prCount + issueCount
	if prErr != nil || issErr != nil {
		logger.WithField("username", username).Warnf("search fetch failed, pr/issue count defaults to 0")
		prIssues = 0
	}

	metrics := computeMetrics(user, repos, contributions, prIssues, time.Now())

	return &models.ProfileWithMetrics{
		User:    user,
		Metrics: metrics,
		Repos:   repos,
	}, nil
}

// CompareProfiles fetches every username concurrently and returns the
// profiles ranked by total score, best first
func (s *ProfileService) CompareProfiles(ctx context.Context, usernames []string) ([]*models.ProfileWithMetrics, error) {
	if len(usernames) == 0 {
		return nil, errors.New("at least one username is required")
	}

	g, gctx := errgroup.WithContext(ctx)
	profiles := make([]*models.ProfileWithMetrics, len(usernames))

	for i, username := range usernames {
		g.Go(func() error {
			profile, err := s.FetchCompleteProfile(gctx, username)
			if err != nil {
				return err
			}
			profiles[i] = profile
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rankProfiles(profiles)
	return profiles, nil
}

// rankProfiles sorts profiles by total score, highest first
func rankProfiles(profiles []*models.ProfileWithMetrics) {
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Metrics.TotalScore > profiles[j].Metrics.TotalScore
	})
}

// computeMetrics derives all comparison metrics from a fetched snapshot
func computeMetrics(user *models.GitHubUser, repos []models.GitHubRepo, contributions, prIssues int, now time.Time) *models.ComparisonMetrics {
	totalStars := 0
	totalForks := 0
	for _, repo := range repos {
		totalStars += repo.StargazersCount
		totalForks += repo.ForksCount
	}

	metrics := &models.ComparisonMetrics{
		TotalStars:         totalStars,
		TotalForks:         totalForks,
		Followers:          user.Followers,
		Following:          user.Following,
		Repositories:       len(repos),
		Languages:          countLanguages(repos),
		Contributions:      contributions,
		ReadmeQualityScore: readmeQualityScore(repos),
		PRIssues:           prIssues,
		AchievementScore:   achievementScore(user),
		CommunityScore:     communityScore(repos),
		ProfileAge:         profileAgeDays(user.CreatedAt, now),
	}

	metrics.TotalScore = totalScore(user, metrics)
	return metrics
}

// countLanguages counts distinct non-null languages within the fetched repo
// page. Repos beyond the first page are not considered.
func countLanguages(repos []models.GitHubRepo) int {
	seen := make(map[string]struct{})
	for _, repo := range repos {
		if repo.Language != nil {
			seen[*repo.Language] = struct{}{}
		}
	}
	return len(seen)
}

// readmeQualityScore is a 0-10 heuristic: 5 points if any non-fork repo's
// description mentions "readme", plus one point per repo with a description
// longer than 50 characters, capped at 5
func readmeQualityScore(repos []models.GitHubRepo) float64 {
	score := 0.0

	for _, repo := range repos {
		if !repo.Fork && repo.Description != nil && strings.Contains(strings.ToLower(*repo.Description), "readme") {
			score += 5
			break
		}
	}

	described := 0
	for _, repo := range repos {
		if repo.Description != nil && len(*repo.Description) > 50 {
			described++
		}
	}
	score += math.Min(float64(described), 5) / 5 * 5

	return score
}

// achievementScore is a 0-5 profile completeness heuristic
func achievementScore(user *models.GitHubUser) int {
	score := 0
	if user.PublicRepos > 10 {
		score++
	}
	if user.Followers > 50 {
		score++
	}
	if user.PublicGists > 5 {
		score++
	}
	if user.HasBio() {
		score++
	}
	if user.HasBlog() {
		score++
	}
	return score
}

// communityScore is a 0-10 heuristic over the forked and popular repo ratio
func communityScore(repos []models.GitHubRepo) float64 {
	forked := 0
	popular := 0
	for _, repo := range repos {
		if repo.Fork {
			forked++
		}
		if repo.StargazersCount > 10 {
			popular++
		}
	}
	return math.Min(float64(forked)/10, 5) + math.Min(float64(popular)/5, 5)
}

// profileAgeDays is the account age in whole days, rounded up
func profileAgeDays(createdAt, now time.Time) int {
	return int(math.Ceil(math.Abs(now.Sub(createdAt).Hours() / 24)))
}

// totalScore is the weighted composite. Each ratio term is capped at 1 before
// weighting, so no single signal can exceed its stated weight.
func totalScore(user *models.GitHubUser, m *models.ComparisonMetrics) float64 {
	return math.Min(float64(m.Contributions)/1000, 1)*15 +
		math.Min(float64(user.PublicRepos)/50, 1)*10 +
		math.Min(float64(m.TotalStars)/500, 1)*15 +
		math.Min(float64(m.TotalForks)/200, 1)*10 +
		math.Min(float64(m.Languages)/10, 1)*10 +
		m.ReadmeQualityScore +
		math.Min(float64(m.PRIssues)/100, 1)*10 +
		math.Min(float64(user.Followers)/500, 1)*5 +
		float64(m.AchievementScore) +
		m.CommunityScore
}
