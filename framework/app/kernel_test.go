package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/km-arc/go-board/framework/app"
	"github.com/km-arc/go-board/framework/config"
	"github.com/km-arc/go-board/framework/container"
	gohttp "github.com/km-arc/go-board/framework/http"
	"github.com/km-arc/go-board/framework/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// ── fixtures ──────────────────────────────────────────────────────────────────

type pingController struct {
	responses *gohttp.ResponseBuilder
}

func newPingController(responses *gohttp.ResponseBuilder) *pingController {
	return &pingController{responses: responses}
}

func (c *pingController) Ping() (*gohttp.Response, error) {
	return c.responses.Success(gohttp.StatusOK, map[string]string{"pong": "true"})
}

type pingProvider struct{ container.BaseProvider }

func (p *pingProvider) Register(catalog *container.Catalog) {
	catalog.Declare(newPingController, container.Controller).Get("/ping", "Ping")
}

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Name: "GoBoard", Env: "testing", Port: "0"},
		HTTP:    config.HTTPConfig{ShutdownTimeout: time.Second, MaxBodyBytes: 1 << 10},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func newApp(t *testing.T, logger *zap.Logger) *app.Application {
	t.Helper()
	a := app.NewWith(testConfig(), logger)
	require.NoError(t, a.Register(&pingProvider{}))
	require.NoError(t, a.Boot())
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", path, nil))
	return rr
}

// ── Application ───────────────────────────────────────────────────────────────

func TestApplication_ServesControllerRoutes(t *testing.T) {
	a := newApp(t, nil)

	rr := get(t, a.Handler(), "/ping")
	assert.Equal(t, 200, rr.Code)
	assert.JSONEq(t, `{"pong":"true"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(routing.RequestIDHeader))
}

func TestApplication_Health(t *testing.T) {
	a := newApp(t, nil)

	rr := get(t, a.Handler(), "/health")
	assert.Equal(t, 200, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"UP"`)
}

func TestApplication_NotFoundIsJSON(t *testing.T) {
	a := newApp(t, nil)

	rr := get(t, a.Handler(), "/nowhere")
	assert.Equal(t, 404, rr.Code)
	assert.JSONEq(t, `{"errorCode":404,"message":"Not Found"}`, rr.Body.String())
}

func TestApplication_Metrics(t *testing.T) {
	a := newApp(t, nil)
	get(t, a.Handler(), "/ping")

	rr := get(t, a.Handler(), "/metrics")
	assert.Equal(t, 200, rr.Code)
	assert.Contains(t, rr.Body.String(), `goboard_http_requests_total{code="200",method="GET"}`)
	assert.Contains(t, rr.Body.String(), "goboard_container_singletons")
}

func TestApplication_ExtraRoutes(t *testing.T) {
	a := app.NewWith(testConfig(), nil)
	a.Routes().Get("/version", routing.NoArgHandler(func() (*gohttp.Response, error) {
		return gohttp.NewResponseBuilder(nil).Success(gohttp.StatusOK, a.Version())
	}))
	require.NoError(t, a.Boot())
	t.Cleanup(func() { _ = a.Close() })

	rr := get(t, a.Handler(), "/version")
	assert.JSONEq(t, `"0.1.0"`, rr.Body.String())
}

func TestApplication_RebootKeepsRoutes(t *testing.T) {
	a := newApp(t, nil)
	first := len(a.Router().Routes())

	require.NoError(t, a.Boot())
	assert.Len(t, a.Router().Routes(), first)
}

func TestApplication_LogsRequests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	a := newApp(t, zap.New(core))

	get(t, a.Handler(), "/ping")

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/ping", fields["path"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestApplication_RunShutsDownOnCancel(t *testing.T) {
	a := app.NewWith(testConfig(), nil)
	require.NoError(t, a.Boot())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.False(t, a.Context.Initialized())
}

func TestApplication_Environment(t *testing.T) {
	a := app.NewWith(testConfig(), nil)

	assert.Equal(t, "testing", a.Environment())
	assert.False(t, a.IsDebug())
	assert.Nil(t, a.Handler())
}

func TestApplication_DebugMountsProfiler(t *testing.T) {
	a := newApp(t, nil)
	assert.Equal(t, 404, get(t, a.Handler(), "/debug/pprof/").Code)

	cfg := testConfig()
	cfg.App.Debug = true
	debug := app.NewWith(cfg, nil)
	require.NoError(t, debug.Boot())
	t.Cleanup(func() { _ = debug.Close() })

	rr := get(t, debug.Handler(), "/debug/pprof/")
	assert.Equal(t, 200, rr.Code)
}
