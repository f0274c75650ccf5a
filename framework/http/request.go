package http

import (
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
)

// DefaultMaxBodyBytes caps request bodies read by FromHTTP.
const DefaultMaxBodyBytes = 1 << 20 // 1 MB

// ErrEmptyBody is returned by Bind when there is nothing to decode.
var ErrEmptyBody = errors.New("empty request body")

// Request is the transport-independent request a handler receives.
type Request struct {
	method        string
	path          string
	header        Header
	body          []byte
	pathVariables map[string]string
	codec         Codec
}

// NewRequest builds a Request. A nil codec defaults to JSON.
func NewRequest(method, path string, header Header, body []byte, codec Codec) *Request {
	if codec == nil {
		codec = JSONCodec{}
	}
	return &Request{
		method: method,
		path:   path,
		header: header,
		body:   body,
		codec:  codec,
	}
}

// FromHTTP reads r into a Request, taking the first value of each header and
// at most maxBody bytes of body (DefaultMaxBodyBytes when maxBody <= 0).
func FromHTTP(r *nethttp.Request, maxBody int64, codec Codec) (*Request, error) {
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	var body []byte
	if r.Body != nil {
		defer r.Body.Close()
		b, err := io.ReadAll(io.LimitReader(r.Body, maxBody+1))
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		if int64(len(b)) > maxBody {
			return nil, fmt.Errorf("request body exceeds %d bytes", maxBody)
		}
		body = b
	}
	return NewRequest(r.Method, r.URL.Path, HeaderFromHTTP(r.Header), body, codec), nil
}

// WithPathVariables returns a shallow copy of req carrying vars.
func (req *Request) WithPathVariables(vars map[string]string) *Request {
	cp := *req
	cp.pathVariables = vars
	return &cp
}

// Method returns the HTTP method.
func (req *Request) Method() string { return req.method }

// Path returns the URL path.
func (req *Request) Path() string { return req.path }

// Header returns the request headers.
func (req *Request) Header() Header { return req.header }

// HeaderValue returns a single header value.
func (req *Request) HeaderValue(key string) string { return req.header.Get(key) }

// Body returns the raw body bytes.
func (req *Request) Body() []byte { return req.body }

// BodyString returns the body decoded as UTF-8.
func (req *Request) BodyString() string { return string(req.body) }

// PathVariable returns a variable extracted from the route pattern.
func (req *Request) PathVariable(name string) (string, bool) {
	v, ok := req.pathVariables[name]
	return v, ok
}

// PathVariables returns a copy of all extracted variables.
func (req *Request) PathVariables() map[string]string {
	out := make(map[string]string, len(req.pathVariables))
	for k, v := range req.pathVariables {
		out[k] = v
	}
	return out
}

// Bind decodes the body into v with the request's codec.
func (req *Request) Bind(v any) error {
	if len(req.body) == 0 {
		return ErrEmptyBody
	}
	return req.codec.Unmarshal(req.body, v)
}

// ContentType returns the Content-Type header value.
func (req *Request) ContentType() string { return req.header.Get("Content-Type") }

// IsJSON returns true when the request expects or carries JSON.
func (req *Request) IsJSON() bool {
	return strings.Contains(req.header.Get("Accept"), "application/json") ||
		strings.Contains(req.ContentType(), "application/json")
}
