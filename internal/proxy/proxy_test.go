package proxy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}

func newTestProxy(t *testing.T, upstream http.Handler, cfg Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if upstream != nil {
		srv := httptest.NewServer(upstream)
		t.Cleanup(srv.Close)
		cfg.BaseURL = srv.URL
	}

	r := gin.New()
	p := New(&mockLogger{}, cfg)
	p.MapRoutes(r.Group("/api"))
	return r
}

func TestForward_PassesThroughJSON(t *testing.T) {
	var gotPath, gotAuth string
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	})
	r := newTestProxy(t, upstream, Config{Email: "bot@example.com", APIToken: "tok"})

	req := httptest.NewRequest(http.MethodGet, "/api/tracker/search?jql=project%3DTB", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	if w.Body.String() != `{"ok":true}` {
		t.Errorf("body = %s", w.Body.String())
	}
	if gotPath != "/rest/api/3/search?jql=project%3DTB" {
		t.Errorf("upstream path = %s", gotPath)
	}
	if gotAuth == "" {
		t.Error("missing upstream auth header")
	}
}

func TestForward_BearerAuth(t *testing.T) {
	var gotAuth string
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})
	r := newTestProxy(t, upstream, Config{BearerToken: "abc"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tracker/myself", nil))
	if gotAuth != "Bearer abc" {
		t.Errorf("auth = %q, want Bearer abc", gotAuth)
	}
}

func TestForward_NoContentPassesThrough(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r := newTestProxy(t, upstream, Config{Email: "e", APIToken: "t"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/tracker/issue/TB-1", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("body must be empty, got %s", w.Body.String())
	}
}

func TestForward_NonJSONBecomesBadGateway(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>login page</html>"))
	})
	r := newTestProxy(t, upstream, Config{Email: "e", APIToken: "t"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tracker/search", nil))
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["error"] == "" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestForward_MissingCredentials(t *testing.T) {
	r := newTestProxy(t, nil, Config{BaseURL: "http://example.invalid"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tracker/search", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})
	r := newTestProxy(t, upstream, Config{
		Email: "e", APIToken: "t",
		RateLimit: rate.Limit(0.001), RateBurst: 1,
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/tracker/search", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request: status = %d", first.Code)
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/tracker/search", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request: status = %d, want 429", second.Code)
	}
}

func TestClientIP_Headers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	c.Request.Header.Set("X-Forwarded-For", "10.0.0.1, 192.168.0.1")
	if got := clientIP(c); got != "10.0.0.1" {
		t.Errorf("clientIP with XFF = %q, want 10.0.0.1", got)
	}

	c.Request.Header.Del("X-Forwarded-For")
	c.Request.Header.Set("X-Real-IP", "10.0.0.2")
	if got := clientIP(c); got != "10.0.0.2" {
		t.Errorf("clientIP with X-Real-IP = %q, want 10.0.0.2", got)
	}
}
