package api

import (
	"math/rand/v2"
	"net/http"
	"time"
)

// latency injects a uniformly random delay in [min, max) before handing
// the request on, to simulate network latency against the in-memory data.
// The sleep is deliberately not tied to the request context: the delay
// affects wall-clock timing only and must not be cancellable.
func latency(min, max time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(min + rand.N(max-min))
			next.ServeHTTP(w, r)
		})
	}
}
