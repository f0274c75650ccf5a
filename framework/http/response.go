package http

import (
	nethttp "net/http"

	"github.com/km-arc/go-board/framework/http/validation"
)

// ── Response ─────────────────────────────────────────────────────────────────

// Response is the transport-independent response a handler returns.
type Response struct {
	Status int
	Header Header
	Body   []byte
}

// WriteTo copies the response onto w.
func (res *Response) WriteTo(w nethttp.ResponseWriter) error {
	for _, k := range res.Header.Keys() {
		w.Header().Set(k, res.Header.Get(k))
	}
	w.WriteHeader(res.Status)
	if len(res.Body) == 0 {
		return nil
	}
	_, err := w.Write(res.Body)
	return err
}

// ErrorBody is the JSON payload of every error response.
type ErrorBody struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
}

// ── ResponseBuilder ──────────────────────────────────────────────────────────

// ResponseBuilder produces encoded success and error responses. Every
// response it builds carries the codec's Content-Type.
type ResponseBuilder struct {
	codec Codec
}

// NewResponseBuilder creates a builder. A nil codec defaults to JSON.
func NewResponseBuilder(codec Codec) *ResponseBuilder {
	if codec == nil {
		codec = JSONCodec{}
	}
	return &ResponseBuilder{codec: codec}
}

// Codec returns the builder's codec.
func (b *ResponseBuilder) Codec() Codec { return b.codec }

// Success encodes data with the given status.
//
//	return builder.Success(gohttp.StatusCreated, created)
func (b *ResponseBuilder) Success(status Status, data any) (*Response, error) {
	body, err := b.codec.Marshal(data)
	if err != nil {
		return nil, err
	}
	return b.build(status.Code, body), nil
}

// NoContent returns a 204 with an empty body.
func (b *ResponseBuilder) NoContent() *Response {
	return b.build(StatusNoContent.Code, nil)
}

// Error builds {"errorCode": code, "message": msg}. An empty message falls
// back to the status' default message.
//
//	builder.Error(gohttp.StatusNotFound)                 // "Not Found"
//	builder.Error(gohttp.StatusBadRequest, "bad input")  // "bad input"
func (b *ResponseBuilder) Error(status Status, message ...string) *Response {
	msg := first(message, status.Message)
	body, err := b.codec.Marshal(ErrorBody{ErrorCode: status.Code, Message: msg})
	if err != nil {
		body = []byte(`{"errorCode":500,"message":"Internal Server Error"}`)
		return b.build(StatusInternalServerError.Code, body)
	}
	return b.build(status.Code, body)
}

// ValidationError sends 422 with Laravel's validation error bag:
// {"errors": {"field": ["message"]}}.
func (b *ResponseBuilder) ValidationError(errs *validation.Errors) *Response {
	body, err := b.codec.Marshal(errs)
	if err != nil {
		return b.Error(StatusInternalServerError, err.Error())
	}
	return b.build(StatusUnprocessableEntity.Code, body)
}

func (b *ResponseBuilder) build(code int, body []byte) *Response {
	return &Response{
		Status: code,
		Header: NewHeader("Content-Type", b.codec.ContentType()),
		Body:   body,
	}
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
