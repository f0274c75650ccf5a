package routing

import (
	"fmt"
	"reflect"

	gohttp "github.com/km-arc/go-board/framework/http"
)

// Handler is the bound callable of a route. It is a closed set: NoArgHandler,
// RequestHandler or UnsupportedHandler. The variant is fixed when the route
// is built and never re-inspected per request.
type Handler interface {
	// Arity is the number of parameters the handler declares.
	Arity() int

	handler()
}

// NoArgHandler ignores the request.
type NoArgHandler func() (*gohttp.Response, error)

// RequestHandler consumes the normalized request.
type RequestHandler func(*gohttp.Request) (*gohttp.Response, error)

// UnsupportedHandler stands in for a method whose signature cannot be
// dispatched. Invoking it fails with UnsupportedArityError.
type UnsupportedHandler struct {
	NumIn  int
	Reason string
}

func (NoArgHandler) Arity() int         { return 0 }
func (RequestHandler) Arity() int       { return 1 }
func (h UnsupportedHandler) Arity() int { return h.NumIn }

func (NoArgHandler) handler()       {}
func (RequestHandler) handler()     {}
func (UnsupportedHandler) handler() {}

var requestType = reflect.TypeOf((*gohttp.Request)(nil))

// BindMethod binds the exported method name of owner to a Handler variant.
//
// Methods taking nothing become NoArgHandler, methods taking exactly one
// *http.Request become RequestHandler, anything else UnsupportedHandler.
// The method may return *http.Response or (*http.Response, error).
func BindMethod(owner any, name string) (Handler, error) {
	m := reflect.ValueOf(owner).MethodByName(name)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %T.%s", ErrHandlerNotFound, owner, name)
	}
	mt := m.Type()

	switch {
	case mt.IsVariadic():
		return UnsupportedHandler{NumIn: mt.NumIn(), Reason: "variadic"}, nil
	case mt.NumIn() == 0:
		return NoArgHandler(func() (*gohttp.Response, error) {
			return callMethod(m, nil)
		}), nil
	case mt.NumIn() == 1 && mt.In(0) == requestType:
		return RequestHandler(func(req *gohttp.Request) (*gohttp.Response, error) {
			return callMethod(m, []reflect.Value{reflect.ValueOf(req)})
		}), nil
	case mt.NumIn() == 1:
		return UnsupportedHandler{NumIn: 1, Reason: "parameter must be " + requestType.String()}, nil
	default:
		return UnsupportedHandler{NumIn: mt.NumIn()}, nil
	}
}

func callMethod(m reflect.Value, args []reflect.Value) (*gohttp.Response, error) {
	out := m.Call(args)
	if len(out) == 0 {
		return nil, fmt.Errorf("handler returned nothing")
	}
	if len(out) == 2 {
		if err, ok := out[1].Interface().(error); ok && err != nil {
			return nil, err
		}
	}
	res, ok := out[0].Interface().(*gohttp.Response)
	if !ok {
		return nil, fmt.Errorf("handler returned %s, want %s", out[0].Type(), reflect.TypeOf(res))
	}
	return res, nil
}
