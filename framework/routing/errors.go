package routing

import (
	"errors"
	"fmt"
)

var (
	ErrRouteNotFound           = errors.New("route not found")
	ErrHandlerNotFound         = errors.New("handler method not found")
	ErrUnsupportedArity        = errors.New("unsupported handler arity")
	ErrHandlerInvocationFailed = errors.New("handler invocation failed")
)

// RouteNotFoundError reports a request no route matches. The router turns
// it into a 404 and never returns it to the transport.
type RouteNotFoundError struct {
	Method string
	Path   string
}

func (e RouteNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrRouteNotFound, e.Method, e.Path)
}

func (e RouteNotFoundError) Is(target error) bool { return target == ErrRouteNotFound }

// UnsupportedArityError reports a handler that takes neither zero arguments
// nor a single *http.Request.
type UnsupportedArityError struct {
	Route  string
	Arity  int
	Reason string
}

func (e UnsupportedArityError) Error() string {
	msg := fmt.Sprintf("%v: %s takes %d parameters", ErrUnsupportedArity, e.Route, e.Arity)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e UnsupportedArityError) Is(target error) bool { return target == ErrUnsupportedArity }

// HandlerInvocationError reports a handler that failed or panicked. Only the
// original message is kept; the original error is not wrapped.
type HandlerInvocationError struct {
	Route   string
	Message string
}

func (e HandlerInvocationError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrHandlerInvocationFailed, e.Route, e.Message)
}

func (e HandlerInvocationError) Is(target error) bool {
	return target == ErrHandlerInvocationFailed
}
