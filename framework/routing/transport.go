package routing

import (
	"net/http"

	"github.com/google/uuid"
	gohttp "github.com/km-arc/go-board/framework/http"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

// ServeHTTP adapts the Router to net/http: it normalizes the request, stamps
// a request id when the client sent none, dispatches, and writes the result.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	id := req.Header.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
		req.Header.Set(RequestIDHeader, id)
	}

	var res *gohttp.Response
	nreq, err := gohttp.FromHTTP(req, r.maxBody, r.builder.Codec())
	if err != nil {
		r.logger.Warn("rejecting request", zap.String("request_id", id), zap.Error(err))
		res = r.builder.Error(gohttp.StatusBadRequest, err.Error())
	} else {
		res = r.Dispatch(nreq)
	}

	// Handlers may share one Response between requests; stamp a copy.
	out := *res
	out.Header = res.Header.Clone()
	out.Header.Set(RequestIDHeader, id)
	if err := out.WriteTo(w); err != nil {
		r.logger.Warn("writing response failed", zap.String("request_id", id), zap.Error(err))
	}
}

// Handler returns the router as an http.Handler.
func (r *Router) Handler() http.Handler { return r }
