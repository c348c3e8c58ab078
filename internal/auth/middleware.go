package auth

import (
	"log/slog"
	"net/http"

	"github.com/planboard/planboard/internal/platform/httpx"
)

// Middleware gates protected routes behind the configured credential pair,
// carried as a Basic-auth header on each request.
type Middleware struct {
	Configured Credentials
	Logger     *slog.Logger
}

// Require verifies the request credentials before passing through.
func (m Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="planboard"`)
			httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "credentials required")
			return
		}
		if err := Verify(Credentials{User: user, Password: pass}, m.Configured); err != nil {
			if m.Logger != nil {
				m.Logger.Warn("credential check failed", slog.String("path", r.URL.Path))
			}
			httpx.RespondError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
