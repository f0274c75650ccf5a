package routing_test

import (
	"encoding/json"
	"testing"

	gohttp "github.com/km-arc/go-board/framework/http"
	"github.com/km-arc/go-board/framework/routing"
	"github.com/stretchr/testify/require"
)

// ── helpers ──────────────────────────────────────────────────────────────────

var builder = gohttp.NewResponseBuilder(gohttp.NewJSONCodec())

// named returns a handler answering 200 {"route": name, "vars": {...}}.
func named(name string) routing.RequestHandler {
	return func(req *gohttp.Request) (*gohttp.Response, error) {
		return builder.Success(gohttp.StatusOK, map[string]any{
			"route": name,
			"vars":  req.PathVariables(),
		})
	}
}

func request(method, path string) *gohttp.Request {
	return gohttp.NewRequest(method, path, gohttp.NewHeader(), nil, nil)
}

type routeBody struct {
	Route string            `json:"route"`
	Vars  map[string]string `json:"vars"`
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func mustRoute(t *testing.T, method, pattern string, h routing.Handler) *routing.Route {
	t.Helper()
	r, err := routing.NewRoute(method, pattern, h, "")
	require.NoError(t, err)
	return r
}
