package routing

import (
	"fmt"
	"strings"
)

// Methods the router dispatches.
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

// IsSupportedMethod reports whether method is one of GET, POST, PUT, DELETE.
func IsSupportedMethod(method string) bool {
	switch method {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	}
	return false
}

// Route binds an HTTP method and pattern to a handler. Routes are immutable
// once handed to a Router.
type Route struct {
	Method  string
	Pattern Pattern
	Handler Handler
	// Name identifies the handler in logs, e.g. "*board.Controller.ReadBoard".
	Name string
}

// NewRoute builds a Route. The method is upper-cased and must be supported.
func NewRoute(method, pattern string, h Handler, name string) (*Route, error) {
	method = strings.ToUpper(method)
	if !IsSupportedMethod(method) {
		return nil, fmt.Errorf("routing: unsupported method %q for %s", method, pattern)
	}
	if h == nil {
		return nil, fmt.Errorf("routing: nil handler for %s %s", method, pattern)
	}
	return &Route{Method: method, Pattern: ParsePattern(pattern), Handler: h, Name: name}, nil
}

func (r *Route) String() string {
	if r.Name == "" {
		return r.Method + " " + r.Pattern.String()
	}
	return r.Method + " " + r.Pattern.String() + " -> " + r.Name
}

// ── Table ────────────────────────────────────────────────────────────────────

// Table collects routes in registration order before a Router is built.
//
//	t := routing.NewTable()
//	t.Get("/health", routing.NoArgHandler(health))
//	t.Prefix("/api", func(api *routing.Table) {
//	    api.Get("/boards/{id}", routing.RequestHandler(show))
//	})
//	router := routing.NewRouter(t.Routes(), builder)
type Table struct {
	prefix string
	routes *[]*Route
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{routes: new([]*Route)}
}

// Get registers a GET route. Laravel: Route::get('/health', fn)
func (t *Table) Get(pattern string, h Handler) { t.add(MethodGet, pattern, h) }

// Post registers a POST route. Laravel: Route::post(...)
func (t *Table) Post(pattern string, h Handler) { t.add(MethodPost, pattern, h) }

// Put registers a PUT route. Laravel: Route::put(...)
func (t *Table) Put(pattern string, h Handler) { t.add(MethodPut, pattern, h) }

// Delete registers a DELETE route. Laravel: Route::delete(...)
func (t *Table) Delete(pattern string, h Handler) { t.add(MethodDelete, pattern, h) }

// Add appends already-built routes, e.g. those from CollectRoutes.
func (t *Table) Add(routes ...*Route) {
	*t.routes = append(*t.routes, routes...)
}

// Prefix registers the routes added by fn under a path prefix.
// Laravel: Route::prefix('/api')->group(fn)
func (t *Table) Prefix(prefix string, fn func(t *Table)) {
	fn(&Table{prefix: joinPath(t.prefix, prefix), routes: t.routes})
}

// Routes returns the routes in registration order.
func (t *Table) Routes() []*Route {
	out := make([]*Route, len(*t.routes))
	copy(out, *t.routes)
	return out
}

// add panics on a nil handler, which is a programming error at setup time.
func (t *Table) add(method, pattern string, h Handler) {
	r, err := NewRoute(method, joinPath(t.prefix, pattern), h, "")
	if err != nil {
		panic(err)
	}
	*t.routes = append(*t.routes, r)
}

func joinPath(prefix, pattern string) string {
	if prefix == "" {
		return pattern
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(pattern, "/")
}
