package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"roomgate/internal/core/services"
	"roomgate/pkg/logging"
	"testing"

	"github.com/stretchr/testify/require"
)

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := UserIDFromContext(r.Context())
		_, _ = io.WriteString(w, id)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tokens := services.NewTokenService("test-secret")
	token, err := tokens.GenerateToken("u1")
	require.NoError(t, err)
	handler := AuthMiddleware(tokens)(echoUser())

	tests := []struct {
		name   string
		target string
		header string
		code   int
		body   string
	}{
		{name: "bearer header", target: "/ws", header: "Bearer " + token, code: http.StatusOK, body: "u1"},
		{name: "query parameter", target: "/ws?token=" + token, code: http.StatusOK, body: "u1"},
		{name: "missing token", target: "/ws", code: http.StatusUnauthorized},
		{name: "wrong scheme", target: "/ws", header: "Basic " + token, code: http.StatusUnauthorized},
		{name: "forged token", target: "/ws?token=abc.def.ghi", code: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			require.Equal(t, tt.code, w.Code)
			if tt.body != "" {
				require.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	t.Run("should inject a request scoped logger and echo the request id", func(t *testing.T) {
		req := require.New(t)
		base := slog.New(slog.NewTextHandler(io.Discard, nil))
		var got *slog.Logger
		handler := RequestLogger(base)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = logging.FromContext(r.Context())
		}))
		r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		r.Header.Set(RequestIDHeader, "req-1")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		req.NotNil(got)
		req.NotSame(base, got)
		req.Equal("req-1", w.Header().Get(RequestIDHeader))
	})

	t.Run("should generate a request id when none is sent", func(t *testing.T) {
		handler := RequestLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))(http.NotFoundHandler())
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Len(t, w.Header().Get(RequestIDHeader), 36)
	})
}

func TestChain(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") }),
		mw("tracing"), mw("logging"), TracerMiddleware("roomgate"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"tracing", "logging", "handler"}, order)
}
