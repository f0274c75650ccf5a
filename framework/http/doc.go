// Package http defines the normalized request and response that cross the
// transport boundary, plus the builders handlers use to produce responses.
//
// # Request
//
// A Request carries the method, path, ordered headers, raw body and the
// variables extracted from the matched route pattern.
//
//	id, ok := req.PathVariable("id")
//	trace  := req.HeaderValue("X-Request-Id")
//
//	var payload board.CreateRequest
//	if err := req.Bind(&payload); err != nil { ... }
//
// # Response
//
// Handlers return a *Response. ResponseBuilder encodes payloads with its
// Codec and always sets Content-Type.
//
//	builder := gohttp.NewResponseBuilder(gohttp.NewJSONCodec())
//
//	builder.Success(gohttp.StatusOK, boards)       // 200, encoded boards
//	builder.Success(gohttp.StatusCreated, created) // 201
//	builder.NoContent()                            // 204
//	builder.Error(gohttp.StatusNotFound)           // 404 {"errorCode":404,"message":"Not Found"}
//	builder.Error(gohttp.StatusInternalServerError, err.Error())
//	builder.ValidationError(v.Errors())            // 422 {"errors":{"field":["msg"]}}
package http
