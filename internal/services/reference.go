package services

import (
	"regexp"
	"strings"
)

// repoRefPattern matches owner/repo pairs, either bare or inside a
// github.com URL. Owner and repo follow GitHub's allowed character sets.
var repoRefPattern = regexp.MustCompile(`(?:github\.com/)?([A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?)/([A-Za-z0-9._-]+)`)

// ParseRepoReference extracts the first owner/repo reference from free text.
// Returns ok=false when no reference is present.
func ParseRepoReference(text string) (owner, repo string, ok bool) {
	match := repoRefPattern.FindStringSubmatch(text)
	if match == nil {
		return "", "", false
	}

	owner = match[1]
	repo = strings.TrimSuffix(match[2], ".git")
	repo = strings.TrimRight(repo, ".")
	if repo == "" {
		return "", "", false
	}

	return owner, repo, true
}
