package github

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/opensource-compass/compassdash/internal/app"
	"github.com/opensource-compass/compassdash/internal/app/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedClientCounts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockGithubClient(ctrl)
	client.EXPECT().Repository(gomock.Any(), "owner", "repo").Return(app.RepoStats{Stars: 1}, nil)
	client.EXPECT().CommitCount(gomock.Any(), "owner", "repo").
		Return(app.CommitTotal{}, app.NewFetchError("commits", app.KindStatus, errors.New("409")))
	client.EXPECT().Contributors(gomock.Any(), "owner", "repo", 100).
		Return(nil, app.NewFetchError("contributors", app.KindNetwork, errors.New("refused")))
	client.EXPECT().Events(gomock.Any(), "owner", "repo", 0).
		Return(nil, app.InvalidRequestError("count must be in range <1..100>"))

	reg := prometheus.NewRegistry()
	c, err := NewInstrumentedClient(client, reg)
	require.NoError(t, err)

	_, _ = c.Repository(context.Background(), "owner", "repo")
	_, _ = c.CommitCount(context.Background(), "owner", "repo")
	_, _ = c.Contributors(context.Background(), "owner", "repo", 100)
	_, _ = c.Events(context.Background(), "owner", "repo", 0)

	expected := `
# HELP compassdash_github_calls_total Number of github api calls by method and result.
# TYPE compassdash_github_calls_total counter
compassdash_github_calls_total{method="commits",result="status"} 1
compassdash_github_calls_total{method="contributors",result="network"} 1
compassdash_github_calls_total{method="events",result="invalid"} 1
compassdash_github_calls_total{method="repository",result="ok"} 1
`
	assert.NoError(t, testutil.CollectAndCompare(c.calls, strings.NewReader(expected)))
	assert.Equal(t, 4, testutil.CollectAndCount(c.duration))
}

func TestNewInstrumentedClientRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewInstrumentedClient(nil, reg)
	require.NoError(t, err)

	_, err = NewInstrumentedClient(nil, reg)
	assert.Error(t, err)
}
