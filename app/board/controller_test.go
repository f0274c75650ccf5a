package board_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/km-arc/go-board/app"
	"github.com/km-arc/go-board/framework/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func boardsHandler(t *testing.T, env string) http.Handler {
	t.Helper()
	cfg := &config.Config{
		App:     config.AppConfig{Name: "GoBoard", Env: env},
		HTTP:    config.HTTPConfig{MaxBodyBytes: 1 << 16},
		Metrics: config.MetricsConfig{Enabled: false},
	}
	application, err := app.NewWith(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, application.Boot())
	t.Cleanup(func() { _ = application.Close() })
	return application.Handler()
}

func send(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// ── CRUD ─────────────────────────────────────────────────────────────────────

func TestController_CRUD(t *testing.T) {
	h := boardsHandler(t, "testing")

	rr := send(t, h, "GET", "/boards", "")
	require.Equal(t, 200, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = send(t, h, "POST", "/boards", `{"title":"Hello","content":"World","author":"jane"}`)
	require.Equal(t, 201, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":1`)
	assert.Contains(t, rr.Body.String(), `"author":"jane"`)

	rr = send(t, h, "GET", "/boards/1", "")
	require.Equal(t, 200, rr.Code)
	assert.Contains(t, rr.Body.String(), `"title":"Hello"`)

	rr = send(t, h, "PUT", "/boards", `{"id":1,"title":"Edited","content":"Again"}`)
	require.Equal(t, 200, rr.Code)
	assert.JSONEq(t, `{"id":1,"title":"Edited","content":"Again"}`, rr.Body.String())

	rr = send(t, h, "DELETE", "/boards/1", "")
	assert.Equal(t, 204, rr.Code)

	rr = send(t, h, "GET", "/boards/1", "")
	assert.Equal(t, 404, rr.Code)
	assert.JSONEq(t, `{"errorCode":404,"message":"board not found"}`, rr.Body.String())
}

func TestController_Errors(t *testing.T) {
	h := boardsHandler(t, "testing")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		want   string
	}{
		{"empty body", "POST", "/boards", "", 400, `"errorCode":400`},
		{"malformed json", "POST", "/boards", `{"title":`, 400, `"errorCode":400`},
		{"validation", "POST", "/boards", `{"title":"","content":"c","author":"a"}`, 422, `"title":["The title field is required."]`},
		{"bad id", "GET", "/boards/abc", "", 400, `invalid board id`},
		{"update missing", "PUT", "/boards", `{"id":42,"title":"t","content":"c"}`, 404, `"errorCode":404`},
		{"update invalid id", "PUT", "/boards", `{"id":0,"title":"t","content":"c"}`, 422, `"id":[`},
		{"delete missing", "DELETE", "/boards/42", "", 404, `"errorCode":404`},
		{"unknown verb", "PATCH", "/boards", "", 404, `"errorCode":404`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := send(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.want)
		})
	}
}

func TestController_RejectsNonJSONBody(t *testing.T) {
	h := boardsHandler(t, "testing")

	for _, method := range []string{"POST", "PUT"} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/boards", strings.NewReader("title=Hello"))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, 415, rr.Code)
			assert.Contains(t, rr.Body.String(), `"errorCode":415`)
		})
	}

	rr := send(t, h, "GET", "/boards", "")
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestController_SeedsLocalEnvironment(t *testing.T) {
	rr := send(t, boardsHandler(t, "local"), "GET", "/boards", "")
	require.Equal(t, 200, rr.Code)
	assert.Contains(t, rr.Body.String(), `"author":"cinnamein"`)

	rr = send(t, boardsHandler(t, "testing"), "GET", "/boards", "")
	assert.JSONEq(t, `[]`, rr.Body.String())
}
