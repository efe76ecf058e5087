package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/opensource-compass/compassdash/internal/app"
	"github.com/opensource-compass/compassdash/internal/app/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceLoadDashboard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     int
		wantPage int
	}{
		{name: "first page", page: 1, wantPage: 1},
		{name: "second page", page: 2, wantPage: 2},
		{name: "page too big", page: 10, wantPage: 2},
		{name: "negative page", page: -1, wantPage: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			contributors := make([]app.Contributor, 12)
			client := mock.NewMockGithubClient(ctrl)
			gomock.InOrder(
				client.EXPECT().Repository(gomock.Any(), "owner", "repo").Return(app.RepoStats{Stars: 1}, nil),
				client.EXPECT().CommitCount(gomock.Any(), "owner", "repo").Return(app.CommitTotal{}, nil),
				client.EXPECT().Contributors(gomock.Any(), "owner", "repo", app.ContributorsLimit).Return(contributors, nil),
				client.EXPECT().Events(gomock.Any(), "owner", "repo", app.EventsLimit).Return(nil, nil),
			)

			s := app.NewService(client, nil, "owner", "repo", time.Minute, newTestLogger())
			state := s.LoadDashboard(context.Background(), tt.page)

			assert.Equal(t, tt.wantPage, state.Pager.Page)
			assert.True(t, state.Repo.OK())
			assert.True(t, state.Activity.OK())
		})
	}
}

func TestServiceLoadCatalogLoadsOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock.NewMockProgramSource(ctrl)
	source.EXPECT().Programs(gomock.Any()).Return(testPrograms, nil).Times(1)

	s := app.NewService(nil, source, "owner", "repo", time.Minute, newTestLogger())
	c := s.LoadCatalog(context.Background())

	require.True(t, c.Programs().OK())
	assert.Equal(t, testPrograms, c.Programs().Value)

	// Filtering through the shared catalog doesn't reload nor mutate it.
	assert.Len(t, s.LoadCatalog(context.Background()).ApplyFilters(app.Filter{Search: "zzz"}), 0)
	assert.Same(t, c, s.LoadCatalog(context.Background()))
	assert.Equal(t, testPrograms, c.Programs().Value)
}

func TestServiceLoadCatalogCanceledRequest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock.NewMockProgramSource(ctrl)
	source.EXPECT().
		Programs(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]app.Program, error) {
			return testPrograms, ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := app.NewService(nil, source, "owner", "repo", time.Minute, newTestLogger())
	c := s.LoadCatalog(ctx)

	assert.True(t, c.Programs().OK())
}

func TestServiceLoadActivity(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := []app.ActivityEvent{
		{Kind: app.EventPush, ActorLogin: "a"},
		{Kind: "WatchEvent", ActorLogin: "b"},
	}
	client := mock.NewMockGithubClient(ctrl)
	client.EXPECT().Events(gomock.Any(), "owner", "repo", app.EventsLimit).Return(events, nil)

	s := app.NewService(client, nil, "owner", "repo", time.Minute, newTestLogger())
	state := s.LoadActivity(context.Background())

	require.True(t, state.Activity.OK())
	assert.Equal(t, events[:1], state.Activity.Value)
	assert.False(t, state.Repo.Loaded)
	assert.False(t, state.Contributors.Loaded)
}
