package routing

import (
	"errors"

	gohttp "github.com/km-arc/go-board/framework/http"
	"go.uber.org/zap"
)

// Router dispatches normalized requests over a fixed route table. It holds no
// mutable state after construction and is safe for concurrent use.
type Router struct {
	routes  []*Route
	builder *gohttp.ResponseBuilder
	invoker *Invoker
	logger  *zap.Logger
	maxBody int64
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithLogger sets the router's logger.
func WithLogger(logger *zap.Logger) RouterOption {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMaxBodyBytes caps request bodies read by ServeHTTP.
func WithMaxBodyBytes(n int64) RouterOption {
	return func(r *Router) { r.maxBody = n }
}

// NewRouter builds a Router over a copy of routes, keeping their order.
// Duplicate method+pattern pairs are kept and logged; the first registered
// one wins at dispatch.
func NewRouter(routes []*Route, builder *gohttp.ResponseBuilder, opts ...RouterOption) *Router {
	if builder == nil {
		builder = gohttp.NewResponseBuilder(nil)
	}
	r := &Router{
		routes:  append([]*Route(nil), routes...),
		builder: builder,
		logger:  zap.NewNop(),
		maxBody: gohttp.DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.Named("router")
	r.invoker = NewInvoker(r.logger)

	seen := make(map[string]*Route, len(r.routes))
	for _, route := range r.routes {
		key := route.Method + " " + route.Pattern.String()
		if first, dup := seen[key]; dup {
			r.logger.Warn("duplicate route, first registered wins on ties",
				zap.Stringer("route", route),
				zap.Stringer("first", first),
			)
			continue
		}
		seen[key] = route
	}
	return r
}

// Routes returns the route table in registration order.
func (r *Router) Routes() []*Route {
	return append([]*Route(nil), r.routes...)
}

// Match returns the most specific route for method and path with its
// extracted variables. On equal specificity the first registered route wins.
func (r *Router) Match(method, path string) (*Route, Params, bool) {
	var (
		best       *Route
		bestParams Params
		bestScore  = -1
	)
	for _, route := range r.routes {
		if route.Method != method {
			continue
		}
		params, ok := route.Pattern.Match(path)
		if !ok {
			continue
		}
		if score := route.Pattern.Specificity(); score > bestScore {
			best, bestParams, bestScore = route, params, score
		}
	}
	return best, bestParams, best != nil
}

// Dispatch runs one request to completion. It always returns a response:
// 404 when nothing matches, 500 when the handler fails.
func (r *Router) Dispatch(req *gohttp.Request) *gohttp.Response {
	route, params, ok := r.Match(req.Method(), req.Path())
	if !ok {
		r.logger.Debug("no route", zap.Error(RouteNotFoundError{Method: req.Method(), Path: req.Path()}))
		return r.builder.Error(gohttp.StatusNotFound)
	}

	res, err := r.invoker.Invoke(route, req.WithPathVariables(params))
	if err != nil {
		return r.builder.Error(gohttp.StatusInternalServerError, failureMessage(err))
	}
	return res
}

// failureMessage extracts the message reported in a 500 body.
func failureMessage(err error) string {
	var inv HandlerInvocationError
	if errors.As(err, &inv) {
		return inv.Message
	}
	return err.Error()
}
