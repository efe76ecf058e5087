package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/opensource-compass/compassdash/internal/api/http/mock"
	"github.com/opensource-compass/compassdash/internal/app"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMux(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		path           string
		wantStatusCode int
	}{
		{
			name:           "page",
			method:         http.MethodGet,
			path:           "/",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "contributors fragment",
			method:         http.MethodGet,
			path:           "/contributors?page=3",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "activity fragment",
			method:         http.MethodGet,
			path:           "/activity",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "programs fragment",
			method:         http.MethodGet,
			path:           "/programs?search=x",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "dashboard api",
			method:         http.MethodGet,
			path:           "/api/dashboard",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "metrics",
			method:         http.MethodGet,
			path:           "/metrics",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid path",
			method:         http.MethodGet,
			path:           "/invalid_path",
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "invalid method",
			method:         http.MethodPost,
			path:           "/contributors",
			wantStatusCode: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mock.NewMockService(ctrl)
			service.EXPECT().
				LoadDashboard(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, page int) app.DashboardState {
					_, ok := ctx.Deadline()
					assert.True(t, ok, "request context without deadline")
					return testState(2, page)
				}).
				AnyTimes()
			service.EXPECT().
				LoadActivity(gomock.Any()).
				Return(testState(0, 1)).
				AnyTimes()
			service.EXPECT().
				LoadCatalog(gomock.Any()).
				DoAndReturn(func(ctx context.Context) *app.Catalog {
					return newTestCatalog(ctrl, nil, nil)
				}).
				AnyTimes()

			mux := NewMux(service, newTestRenderer(t), testSite, prometheus.NewRegistry(), time.Second, newTestLogger())

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatusCode, w.Code)
		})
	}
}
