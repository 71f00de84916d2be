package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"authportal/pkg/identity"
	"authportal/pkg/session"

	"github.com/gorilla/mux"
)

// Routes reachable without a session. Everything else behind the gate
// requires a valid session cookie; no handler re-checks auth on its own.
// Logout stays open: a client with an expired or destroyed token must still
// reach the handler that clears its cookie.
var noSessUrls = map[string]string{
	"/api/register": http.MethodPost,
	"/api/login":    http.MethodPost,
	"/api/logout":   http.MethodPost,
	"/api/enquiry":  http.MethodPost,
}

// CheckSession is the access gate: it resolves the session cookie through the
// manager and either attaches the identity to the request context or answers
// 401 without invoking the handler.
func CheckSession(sessions session.ManagerInterface, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := mux.CurrentRoute(r)
			template, err := route.GetPathTemplate()

			if err != nil {
				http.Error(w, "Route not found", http.StatusNotFound)
				return
			}

			if method, ok := noSessUrls[template]; ok && method == r.Method {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			ident, err := sessions.Validate(cookie.Value)
			if err != nil {
				logger.Error("session validate", "error", err)
				http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
				return
			}
			if ident == nil {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identity.ContextKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
