package middleware

import (
	"encoding/json"
	"net/http"

	"minitwit/internal/core"
)

const notAuthorizedMsg = "You are not authorized to use this resource!"

type SimulatorAuthMiddleware struct {
	expected string
	exempt   map[string]struct{}
}

// NewSimulatorAuthMiddleware checks the Authorization header against expected
// on every path except the exempt ones. An empty expected value disables the check.
func NewSimulatorAuthMiddleware(expected string, exempt ...string) *SimulatorAuthMiddleware {
	paths := make(map[string]struct{}, len(exempt))
	for _, p := range exempt {
		paths[p] = struct{}{}
	}

	return &SimulatorAuthMiddleware{
		expected: expected,
		exempt:   paths,
	}
}

func (m *SimulatorAuthMiddleware) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.expected == "" {
			next.ServeHTTP(w, r)
			return
		}

		if _, ok := m.exempt[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("Authorization") != m.expected {
			res := core.Forbidden(notAuthorizedMsg)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(res.StatusCode)
			_ = json.NewEncoder(w).Encode(res.Error)
			return
		}

		next.ServeHTTP(w, r)
	})
}
