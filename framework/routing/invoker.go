package routing

import (
	"fmt"

	gohttp "github.com/km-arc/go-board/framework/http"
	"go.uber.org/zap"
)

// Invoker calls route handlers and normalizes their failures.
type Invoker struct {
	logger *zap.Logger
}

// NewInvoker creates an Invoker. A nil logger discards output.
func NewInvoker(logger *zap.Logger) *Invoker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invoker{logger: logger.Named("invoker")}
}

// Invoke calls the route's handler with req when it takes one argument, or
// with nothing when it takes none.
//
// An UnsupportedHandler yields UnsupportedArityError. Any error or panic from
// the handler, and a nil response, yield HandlerInvocationError carrying the
// original message.
func (i *Invoker) Invoke(route *Route, req *gohttp.Request) (res *gohttp.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			i.logger.Error("handler panicked", zap.Stringer("route", route), zap.Any("panic", r))
			res, err = nil, HandlerInvocationError{Route: route.String(), Message: fmt.Sprint(r)}
		}
	}()

	switch h := route.Handler.(type) {
	case NoArgHandler:
		res, err = h()
	case RequestHandler:
		res, err = h(req)
	case UnsupportedHandler:
		return nil, UnsupportedArityError{Route: route.String(), Arity: h.NumIn, Reason: h.Reason}
	default:
		return nil, UnsupportedArityError{Route: route.String(), Arity: route.Handler.Arity()}
	}

	if err != nil {
		i.logger.Error("handler failed", zap.Stringer("route", route), zap.Error(err))
		return nil, HandlerInvocationError{Route: route.String(), Message: err.Error()}
	}
	if res == nil {
		return nil, HandlerInvocationError{Route: route.String(), Message: "handler returned no response"}
	}
	return res, nil
}
