package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/transfer-auction/internal/domain/identity"
	"github.com/riskibarqy/transfer-auction/internal/platform/logging"
	"github.com/riskibarqy/transfer-auction/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// teamTokenHeader carries the opaque team credential. It is deliberately
// separate from Authorization so a browser tab can hold both an admin
// session and a team token at once.
const teamTokenHeader = "X-Team-Token"

// AdminVerifier checks admin session tokens minted at login.
type AdminVerifier interface {
	Verify(token string) error
}

// TeamVerifier resolves an opaque team token to its identity.
type TeamVerifier interface {
	Verify(ctx context.Context, token string) (identity.Identity, bool, error)
}

func RequireAdmin(verifier AdminVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequireAdmin")
		defer span.End()

		token, err := bearerToken(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		if err := verifier.Verify(token); err != nil {
			writeError(ctx, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(ctx, identity.Admin())))
	})
}

func RequireTeamToken(verifier TeamVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequireTeamToken")
		defer span.End()

		token := strings.TrimSpace(r.Header.Get(teamTokenHeader))
		if token == "" {
			writeError(ctx, w, fmt.Errorf("%w: missing %s header", usecase.ErrUnauthorized, teamTokenHeader))
			return
		}

		id, ok, err := verifier.Verify(ctx, token)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		if !ok {
			writeError(ctx, w, fmt.Errorf("%w: unknown team token", usecase.ErrUnauthorized))
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(ctx, id)))
	})
}

// RequireAuthenticated accepts either credential. When a request carries
// both, the admin session wins.
func RequireAuthenticated(admin AdminVerifier, team TeamVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequireAuthenticated")
		defer span.End()

		var adminID *identity.Identity
		if token, err := bearerToken(r); err == nil {
			if err := admin.Verify(token); err == nil {
				id := identity.Admin()
				adminID = &id
			}
		}

		var teamID *identity.Identity
		if token := strings.TrimSpace(r.Header.Get(teamTokenHeader)); token != "" {
			id, ok, err := team.Verify(ctx, token)
			if err != nil {
				writeError(ctx, w, err)
				return
			}
			if ok {
				teamID = &id
			}
		}

		resolved, ok := identity.Resolve(adminID, teamID)
		if !ok {
			writeError(ctx, w, fmt.Errorf("%w: admin session or team token required", usecase.ErrUnauthorized))
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(ctx, resolved)))
	})
}

func bearerToken(r *http.Request) (string, error) {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if authHeader == "" {
		return "", fmt.Errorf("%w: missing Authorization header", usecase.ErrUnauthorized)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("%w: invalid Authorization header format", usecase.ErrUnauthorized)
	}

	return strings.TrimSpace(parts[1]), nil
}

func RequestLogging(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequestLogging")
		defer span.End()

		started := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		// InfoContext appends trace_id and span_id on its own.
		logger.InfoContext(ctx, "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}

func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "transfer-auction-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return shouldTraceRequest(r.URL.Path)
		}),
	)
}

func shouldTraceRequest(path string) bool {
	normalized := strings.ToLower(strings.TrimSpace(path))
	switch normalized {
	case "/healthz", "/health", "/livez", "/readyz":
		return false
	default:
		return true
	}
}

type originPolicy struct {
	allowAll bool
	exact    map[string]struct{}
}

func newOriginPolicy(allowedOrigins []string) originPolicy {
	policy := originPolicy{exact: make(map[string]struct{}, len(allowedOrigins))}
	for _, origin := range allowedOrigins {
		switch candidate := strings.TrimSpace(origin); candidate {
		case "":
		case "*":
			policy.allowAll = true
		default:
			policy.exact[candidate] = struct{}{}
		}
	}

	return policy
}

// allowHeader returns the Access-Control-Allow-Origin value for the given
// Origin, or "" when the origin is not allowed.
func (p originPolicy) allowHeader(origin string) string {
	if p.allowAll {
		return "*"
	}
	if _, ok := p.exact[origin]; ok {
		return origin
	}

	return ""
}

func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	policy := newOriginPolicy(allowedOrigins)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.CORS")
		defer span.End()

		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		if allowValue := policy.allowHeader(origin); allowValue != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowValue)
			if allowValue != "*" {
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type,Accept,"+teamTokenHeader)
			w.Header().Set("Access-Control-Max-Age", "600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
