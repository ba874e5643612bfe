package http_server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/davarch/coolify-badge/internal/application"
	"github.com/davarch/coolify-badge/internal/domain"
	"github.com/davarch/coolify-badge/internal/infrastructure/badge_svg"
	"github.com/davarch/coolify-badge/internal/infrastructure/coolify_http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestHandler(src domain.DeploymentSource) http.Handler {
	uc := application.NewBadgeUseCase(zap.NewNop(), src, badge_svg.New())
	return NewHandler(zap.NewNop(), uc)
}

func get(t *testing.T, h http.Handler, path string) *http.Response {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec.Result()
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestRootAndHealth_DoNotTouchUpstream(t *testing.T) {
	src := &domain.MockSource{Err: domain.ErrUnreachable}
	h := newTestHandler(src)

	resp := get(t, h, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Badge service is alive!", body(t, resp))

	resp = get(t, h, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body(t, resp))

	assert.Equal(t, 0, src.Called)
}

func TestBadge_HeadersAlwaysSet(t *testing.T) {
	sources := map[string]domain.DeploymentSource{
		"finished":     &domain.MockSource{Deployment: domain.Deployment{Status: domain.StatusFinished}},
		"unauthorized": &domain.MockSource{Err: domain.ErrUnauthorized},
		"offline":      &domain.MockSource{Err: domain.ErrUnreachable},
		"parse_error":  &domain.MockSource{Err: domain.ErrMalformed},
	}
	for want, src := range sources {
		t.Run(want, func(t *testing.T) {
			resp := get(t, newTestHandler(src), "/badge/app-uuid")

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
			assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get("Cache-Control"))
			assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
			assert.Contains(t, body(t, resp), ">"+want+"</text>")
		})
	}
}

func TestBadge_PassesApplicationID(t *testing.T) {
	src := &domain.MockSource{Deployment: domain.Deployment{Status: domain.StatusQueued}}
	_ = get(t, newTestHandler(src), "/badge/k0c8w4s")

	assert.Equal(t, "k0c8w4s", src.LastID)
}

func TestHead(t *testing.T) {
	h := newTestHandler(&domain.MockSource{Deployment: domain.Deployment{Status: domain.StatusFinished}})

	for _, path := range []string{"/", "/health", "/badge/x"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "HEAD %s", path)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/badge/x", nil))
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
}

func TestUnknownRoute(t *testing.T) {
	resp := get(t, newTestHandler(&domain.MockSource{}), "/badge/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// End to end against a fake Coolify.
func TestBadge_AgainstUpstream(t *testing.T) {
	cases := []struct {
		name   string
		code   int
		body   string
		status string
		color  string
	}{
		{"first entry", http.StatusOK, `{"deployments":[{"status":"finished"},{"status":"failed"}]}`, "finished", "#3fb950"},
		{"empty list", http.StatusOK, `{"deployments":[]}`, "no_history", "#d1d5da"},
		{"missing field", http.StatusOK, `{"data":[]}`, "parse_error", "#cea61b"},
		{"401 ignores body", http.StatusUnauthorized, `{"deployments":[{"status":"finished"}]}`, "unauthorized", "#cea61b"},
		{"in progress", http.StatusOK, `{"deployments":[{"status":"in_progress"}]}`, "in_progress", "#2188ff"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/deployments/applications/my-app", r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				w.WriteHeader(c.code)
				_, _ = w.Write([]byte(c.body))
			}))
			defer upstream.Close()

			h := newTestHandler(coolify_http.New(upstream.URL, "tok", time.Second))
			resp := get(t, h, "/badge/my-app")
			out := body(t, resp)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, out, ">"+c.status+"</text>")
			assert.Contains(t, out, `fill="`+c.color+`"`)
		})
	}
}

func TestBadge_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	url := upstream.URL
	upstream.Close()

	resp := get(t, newTestHandler(coolify_http.New(url, "tok", time.Second)), "/badge/x")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), ">offline</text>")
}

func TestRequestLogger_LogsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	uc := application.NewBadgeUseCase(zap.NewNop(), &domain.MockSource{}, badge_svg.New())
	h := NewHandler(zap.New(core), uc)

	_ = get(t, h, "/health")
	_ = get(t, h, "/nope")

	require.Equal(t, 2, logs.Len())
	first := logs.All()[0].ContextMap()
	assert.Equal(t, "/health", first["path"])
	assert.EqualValues(t, 200, first["status"])
	assert.NotEmpty(t, first["request_id"])
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
}

func TestRecovery(t *testing.T) {
	h := NewHandler(zap.NewNop(), application.NewBadgeUseCase(zap.NewNop(), panicSource{}, badge_svg.New()))
	resp := get(t, h, "/badge/x")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

type panicSource struct{}

func (panicSource) LatestDeployment(context.Context, string) (domain.Deployment, error) {
	panic("boom")
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	s := NewServer(zap.NewNop(), "127.0.0.1:0", http.NotFoundHandler())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
