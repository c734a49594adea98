package github

import (
	"context"
	"fmt"
	"os"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// RepoInfo is the subset of repository metadata verify and doctor report.
type RepoInfo struct {
	FullName      string
	Private       bool
	DefaultBranch string
	Archived      bool
}

// APIClient wraps the GitHub REST API for read-only metadata queries.
type APIClient struct {
	client *github.Client
}

// NewAPIClient creates an API client from the token in the given environment
// variable. Returns (nil, nil) when the variable is unset so callers can
// treat the API path as optional.
func NewAPIClient(tokenEnv string) (*APIClient, error) {
	if tokenEnv == "" {
		return nil, nil
	}
	token := os.Getenv(tokenEnv)
	if token == "" {
		return nil, nil
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return &APIClient{client: github.NewClient(tc)}, nil
}

// GetRepo fetches metadata for owner/repo.
func (c *APIClient) GetRepo(ctx context.Context, fullName string) (*RepoInfo, error) {
	owner, repo, err := SplitFullName(fullName)
	if err != nil {
		return nil, err
	}

	r, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("get repo %s: %w", fullName, err)
	}

	return &RepoInfo{
		FullName:      r.GetFullName(),
		Private:       r.GetPrivate(),
		DefaultBranch: r.GetDefaultBranch(),
		Archived:      r.GetArchived(),
	}, nil
}

// CheckToken verifies the token by fetching the authenticated user.
// Returns the login.
func (c *APIClient) CheckToken(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("token check failed: %w", err)
	}
	return user.GetLogin(), nil
}
