package limiter

import (
	"fmt"
	"net/http"

	"github.com/opensource-compass/compassdash/internal/app"
	"golang.org/x/time/rate"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// throttledDoer spaces outgoing requests so they never exceed configured rate.
type throttledDoer struct {
	doer    HTTPDoer
	limiter *rate.Limiter
}

// NewHTTPDoer wraps doer with outbound throttle.
// maxRate - maximum number of Dos per second, burst - number of Dos allowed at once.
// Non positive maxRate disables throttling and doer is returned as is.
func NewHTTPDoer(doer HTTPDoer, maxRate float64, burst int) HTTPDoer {
	if maxRate <= 0 {
		return doer
	}
	if burst < 1 {
		burst = 1
	}

	return &throttledDoer{
		doer:    doer,
		limiter: rate.NewLimiter(rate.Limit(maxRate), burst),
	}
}

// Do executes http request. Blocks until call rate is within limit or request context is done.
func (d *throttledDoer) Do(r *http.Request) (*http.Response, error) {
	if err := d.limiter.Wait(r.Context()); err != nil {
		return nil, app.TooManyRequestsError(fmt.Sprintf("waiting for outbound throttle %s: %v", r.URL.Path, err))
	}

	return d.doer.Do(r)
}
