package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeoutMiddleware(t *testing.T) {
	timeout := 10 * time.Millisecond

	var deadline time.Time
	var ok bool
	h := NewTimeoutMiddleware(timeout)(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	})

	start := time.Now()
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, ok)
	assert.WithinDuration(t, start.Add(timeout), deadline, 5*time.Millisecond)
}

func TestLoggingMiddlewareCallsHandler(t *testing.T) {
	var called bool
	h := NewLoggingMiddleware(newTestLogger())(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, w.Code)
}
