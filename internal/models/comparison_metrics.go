package models

// ComparisonMetrics holds the derived metrics for one profile. All values are
// recomputed from fetched data on every comparison and never persisted
// independently of their profile snapshot.
type ComparisonMetrics struct {
	TotalStars         int     `json:"total_stars"`
	TotalForks         int     `json:"total_forks"`
	Followers          int     `json:"followers"`
	Following          int     `json:"following"`
	Repositories       int     `json:"repositories"`
	Languages          int     `json:"languages"`
	Contributions      int     `json:"contributions"`
	ReadmeQualityScore float64 `json:"readme_quality_score"`
	PRIssues           int     `json:"pr_issues"`
	AchievementScore   int     `json:"achievement_score"`
	CommunityScore     float64 `json:"community_score"`
	ProfileAge         int     `json:"profile_age"`
	TotalScore         float64 `json:"total_score"`
}

// ProfileWithMetrics aggregates one account snapshot with its derived metrics
// and the repository page the metrics were computed from
type ProfileWithMetrics struct {
	User    *GitHubUser        `json:"user"`
	Metrics *ComparisonMetrics `json:"metrics"`
	Repos   []GitHubRepo       `json:"repos,omitempty"`
}
