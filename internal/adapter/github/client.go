package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/opensource-compass/compassdash/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns details about github repository.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer    HTTPDoer
	address string

	responseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
func NewClient(doer HTTPDoer, address string) *Client {
	c := Client{
		doer:    doer,
		address: address,

		responseMaxSize: 1024 * 1024 * 10,
	}

	return &c
}

// Repository returns star and fork counts of given repository.
func (c *Client) Repository(ctx context.Context, owner string, name string) (app.RepoStats, error) {
	const op = "repository"

	if err := checkRepo(owner, name); err != nil {
		return app.RepoStats{}, err
	}

	httpReq, err := c.newRequest(repoPath(owner, name), nil)
	if err != nil {
		return app.RepoStats{}, err
	}

	body, _, err := c.makeRequest(ctx, op, httpReq)
	if err != nil {
		return app.RepoStats{}, err
	}

	var resp repositoryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.RepoStats{}, app.NewFetchError(op, app.KindParse, fmt.Errorf("unmarshalling response: %w", err))
	}

	return resp.ToRepoStats(), nil
}

// CommitCount returns approximate number of commits in given repository.
//
// Commits are listed one per page, so the number of the last page is the commit count.
// If github doesn't send a link to the last page, total is returned as unknown.
func (c *Client) CommitCount(ctx context.Context, owner string, name string) (app.CommitTotal, error) {
	const op = "commits"
	const perPage = 1

	if err := checkRepo(owner, name); err != nil {
		return app.CommitTotal{}, err
	}

	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(perPage))
	httpReq, err := c.newRequest(repoPath(owner, name)+"/commits", v)
	if err != nil {
		return app.CommitTotal{}, err
	}

	_, header, err := c.makeRequest(ctx, op, httpReq)
	if err != nil {
		return app.CommitTotal{}, err
	}

	last, ok := lastPage(header.Get("Link"))
	if !ok {
		return app.CommitTotal{}, nil
	}

	return app.CommitTotal{
		Count: last * perPage,
		Known: true,
	}, nil
}

// Contributors returns repository contributors, sorted by github by contribution count.
func (c *Client) Contributors(ctx context.Context, owner string, name string, count int) ([]app.Contributor, error) {
	const op = "contributors"

	if err := checkRepo(owner, name); err != nil {
		return nil, err
	}
	if count < 1 || count > 100 {
		return nil, app.InvalidRequestError("count must be in range <1..100>")
	}

	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(count))
	httpReq, err := c.newRequest(repoPath(owner, name)+"/contributors", v)
	if err != nil {
		return nil, err
	}

	body, _, err := c.makeRequest(ctx, op, httpReq)
	if err != nil {
		return nil, err
	}
	// Empty repositories respond with 204.
	if len(body) == 0 {
		return []app.Contributor{}, nil
	}

	var resp contributorsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, app.NewFetchError(op, app.KindParse, fmt.Errorf("unmarshalling response: %w", err))
	}

	return resp.ToContributors(), nil
}

// Events returns most recent repository events, newest first.
func (c *Client) Events(ctx context.Context, owner string, name string, count int) ([]app.ActivityEvent, error) {
	const op = "events"

	if err := checkRepo(owner, name); err != nil {
		return nil, err
	}
	if count < 1 || count > 100 {
		return nil, app.InvalidRequestError("count must be in range <1..100>")
	}

	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(count))
	httpReq, err := c.newRequest(repoPath(owner, name)+"/events", v)
	if err != nil {
		return nil, err
	}

	body, _, err := c.makeRequest(ctx, op, httpReq)
	if err != nil {
		return nil, err
	}

	var resp eventsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, app.NewFetchError(op, app.KindParse, fmt.Errorf("unmarshalling response: %w", err))
	}
	events, err := resp.ToActivityEvents()
	if err != nil {
		return nil, app.NewFetchError(op, app.KindParse, err)
	}

	return events, nil
}

func (c *Client) newRequest(path string, query url.Values) (*http.Request, error) {
	u, err := url.Parse(c.address + path)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	return httpReq, nil
}

func (c *Client) makeRequest(ctx context.Context, op string, req *http.Request) ([]byte, http.Header, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, nil, app.NewFetchError(op, app.KindNetwork, fmt.Errorf("doing http request: %w", err))
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.Header, nil
	}
	if resp.StatusCode/100 > 3 {
		if checkRateLimitExceeded(resp.Header) {
			return nil, resp.Header, app.NewFetchError(op, app.KindStatus, errors.New("rate limit exceeded"))
		}
		return nil, resp.Header, app.NewFetchError(op, app.KindStatus, fmt.Errorf("got invalid http status code: %d", resp.StatusCode))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)))
	if err != nil {
		return nil, resp.Header, app.NewFetchError(op, app.KindNetwork, fmt.Errorf("reading http response body: %w", err))
	}

	return b, resp.Header, nil
}

func checkRateLimitExceeded(h http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}

func checkRepo(owner string, name string) error {
	if owner == "" {
		return app.InvalidRequestError("repository owner cannot be empty")
	}
	if name == "" {
		return app.InvalidRequestError("repository name cannot be empty")
	}
	return nil
}

func repoPath(owner string, name string) string {
	return "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(name)
}
