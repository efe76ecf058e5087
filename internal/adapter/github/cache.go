package github

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/opensource-compass/compassdash/internal/app"
	"golang.org/x/sync/singleflight"
)

// CachedClient wraps github client with caching layer.
// Only successful responses are cached, failed calls are retried by the next caller.
type CachedClient struct {
	client app.GithubClient
	cache  *lru.Cache
	ttl    time.Duration
	now    func() time.Time
	group  singleflight.Group
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache: %w", err)
	}

	return &CachedClient{
		client: client,
		cache:  cache,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Repository returns star and fork counts of given repository.
func (c *CachedClient) Repository(ctx context.Context, owner string, name string) (app.RepoStats, error) {
	v, err := c.load(c.cacheKey("repository", owner, name, 0), func() (interface{}, error) {
		return c.client.Repository(ctx, owner, name)
	})
	if err != nil {
		return app.RepoStats{}, err
	}

	return v.(app.RepoStats), nil
}

// CommitCount returns approximate number of commits in given repository.
func (c *CachedClient) CommitCount(ctx context.Context, owner string, name string) (app.CommitTotal, error) {
	v, err := c.load(c.cacheKey("commits", owner, name, 0), func() (interface{}, error) {
		return c.client.CommitCount(ctx, owner, name)
	})
	if err != nil {
		return app.CommitTotal{}, err
	}

	return v.(app.CommitTotal), nil
}

// Contributors returns repository contributors.
func (c *CachedClient) Contributors(ctx context.Context, owner string, name string, count int) ([]app.Contributor, error) {
	v, err := c.load(c.cacheKey("contributors", owner, name, count), func() (interface{}, error) {
		return c.client.Contributors(ctx, owner, name, count)
	})
	if err != nil {
		return nil, err
	}

	return v.([]app.Contributor), nil
}

// Events returns most recent repository events.
func (c *CachedClient) Events(ctx context.Context, owner string, name string, count int) ([]app.ActivityEvent, error) {
	v, err := c.load(c.cacheKey("events", owner, name, count), func() (interface{}, error) {
		return c.client.Events(ctx, owner, name, count)
	})
	if err != nil {
		return nil, err
	}

	return v.([]app.ActivityEvent), nil
}

// load returns cached value for key or calls fetch.
// Concurrent misses for the same key share one fetch, made with context of the first caller.
func (c *CachedClient) load(key string, fetch func() (interface{}, error)) (interface{}, error) {
	if v, ok := c.get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if v, ok := c.get(key); ok {
			return v, nil
		}
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		c.add(key, v)

		return v, nil
	})

	return v, err
}

func (c *CachedClient) get(key string) (interface{}, bool) {
	val, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	entry := val.(cacheEntry)
	if !entry.created.Add(c.ttl).After(c.now()) {
		c.cache.Remove(key)
		return nil, false
	}

	return entry.data, true
}

func (c *CachedClient) add(key string, data interface{}) {
	c.cache.Add(key, cacheEntry{
		created: c.now(),
		data:    data,
	})
}

func (c *CachedClient) cacheKey(method string, owner string, name string, count int) string {
	return method + "/" + owner + "/" + name + "/" + strconv.Itoa(count)
}

type cacheEntry struct {
	created time.Time
	data    interface{}
}
