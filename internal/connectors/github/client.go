package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client wraps the go-github client with the helper methods the metadata
// fetcher needs.
type Client struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewClient creates a GitHub client. An empty token yields an anonymous
// client, which works for public repositories at a lower rate limit.
func NewClient(ctx context.Context, token string) *Client {
	if token == "" {
		httpClient := &http.Client{Timeout: DefaultTimeout}
		return &Client{
			gh:          gh.NewClient(httpClient),
			rateLimiter: NewRateLimiter(),
		}
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout

	return &Client{
		gh:          gh.NewClient(tc),
		rateLimiter: NewRateLimiter(),
	}
}

// NewClientWithHTTPClient creates a GitHub client with a custom http.Client.
// Useful for tests that stub the transport.
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{
		gh:          gh.NewClient(httpClient),
		rateLimiter: NewRateLimiter(),
	}
}

// GitHub returns the underlying go-github client.
func (c *Client) GitHub() *gh.Client {
	return c.gh
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// GetRepository fetches a single repository record.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	repository, resp, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, c.wrapError(err, "get repo")
	}

	c.updateRateLimitFromResponse(resp)
	return repository, nil
}

// ListLanguages fetches the language byte-count breakdown.
func (c *Client) ListLanguages(ctx context.Context, owner, repo string) (map[string]int, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	languages, resp, err := c.gh.Repositories.ListLanguages(ctx, owner, repo)
	if err != nil {
		return nil, c.wrapError(err, "list languages")
	}

	c.updateRateLimitFromResponse(resp)
	return languages, nil
}

// ListRootContents fetches the shallow root directory listing.
func (c *Client) ListRootContents(ctx context.Context, owner, repo string) ([]*gh.RepositoryContent, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	_, listing, resp, err := c.gh.Repositories.GetContents(ctx, owner, repo, "", nil)
	if err != nil {
		return nil, c.wrapError(err, "list root contents")
	}

	c.updateRateLimitFromResponse(resp)
	return listing, nil
}

// GetFileContent fetches and decodes the content of a root-level file.
func (c *Client) GetFileContent(ctx context.Context, owner, repo, path string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	content, _, resp, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		return "", c.wrapError(err, "get contents")
	}

	c.updateRateLimitFromResponse(resp)

	if content == nil {
		return "", fmt.Errorf("github: path %q is a directory, not a file", path)
	}

	decoded, err := content.GetContent()
	if err != nil {
		return "", fmt.Errorf("decode content: %w", err)
	}
	return decoded, nil
}

// updateRateLimitFromResponse updates the rate limiter from response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to this package's error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
			URL:        ghErr.Response.Request.URL.String(),
		}
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   c.rateLimiter.ResetTime(),
			Remaining: c.rateLimiter.Remaining(),
			Limit:     c.rateLimiter.Limit(),
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}
