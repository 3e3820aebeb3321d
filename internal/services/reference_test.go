package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRepoReference(t *testing.T) {
	testCases := []struct {
		name  string
		text  string
		owner string
		repo  string
		ok    bool
	}{
		{"Bare reference", "golang/go", "golang", "go", true},
		{"Inside a sentence", "how healthy is gin-gonic/gin these days?", "gin-gonic", "gin", true},
		{"Full URL", "check https://github.com/torvalds/linux please", "torvalds", "linux", true},
		{"URL with .git suffix", "https://github.com/golang/go.git", "golang", "go", true},
		{"Trailing sentence period", "look at golang/go.", "golang", "go", true},
		{"Dotted repo name", "facebook/react.dev", "facebook", "react.dev", true},
		{"No reference", "what is a monad", "", "", false},
		{"Empty text", "", "", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			owner, repo, ok := ParseRepoReference(tc.text)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.owner, owner)
			assert.Equal(t, tc.repo, repo)
		})
	}
}
