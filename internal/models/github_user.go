package models

import "time"

// GitHubUser is an immutable snapshot of a public GitHub account,
// decoded verbatim from the API and never mutated locally.
type GitHubUser struct {
	Login       string    `json:"login"`
	ID          int64     `json:"id"`
	AvatarURL   string    `json:"avatar_url"`
	HTMLURL     string    `json:"html_url"`
	Name        *string   `json:"name"`
	Company     *string   `json:"company"`
	Blog        *string   `json:"blog"`
	Location    *string   `json:"location"`
	Email       *string   `json:"email"`
	Bio         *string   `json:"bio"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasBio reports whether the account has a non-empty bio
func (u *GitHubUser) HasBio() bool {
	return u.Bio != nil && *u.Bio != ""
}

// HasBlog reports whether the account has a non-empty blog URL
func (u *GitHubUser) HasBlog() bool {
	return u.Blog != nil && *u.Blog != ""
}
