package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/exception"
)

// DecodeRequestFunc extracts a typed request from the incoming HTTP request.
type DecodeRequestFunc func(ctx context.Context, r *http.Request) (interface{}, error)

// EncodeResponseFunc writes the endpoint response to the client.
type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// QueryBinder is implemented by request types populated from URL query
// parameters instead of a JSON body.
type QueryBinder interface {
	BindQuery(r *http.Request) error
}

// MakeHandlerFunc adapts a go-kit endpoint into an http.HandlerFunc. Any
// error from decoding, the endpoint, or encoding goes through the single
// ErrorResponse boundary.
func MakeHandlerFunc(
	ep endpoint.Endpoint,
	decoder DecodeRequestFunc,
	encoder EncodeResponseFunc,
) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := decoder(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := ep(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := encoder(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}

// DecodeRequest decodes a JSON body into T and runs its Bind method.
// Malformed bodies surface as bad requests rather than internal errors.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	req := new(T)

	binder, ok := any(req).(render.Binder)
	if !ok {
		return nil, fmt.Errorf("request type %T does not implement render.Binder", req)
	}

	if err := render.Bind(r, binder); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "invalid request body",
			Cause:      err,
		}
	}

	return req, nil
}

// DecodeQueryRequest populates T from URL query parameters via its
// BindQuery method.
func DecodeQueryRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	req := new(T)

	binder, ok := any(req).(QueryBinder)
	if !ok {
		return nil, fmt.Errorf("request type %T does not implement QueryBinder", req)
	}

	if err := binder.BindQuery(r); err != nil {
		return nil, fmt.Errorf("decode query: %w", err)
	}

	return req, nil
}

// DecodeEmptyRequest is for endpoints that take no input.
func DecodeEmptyRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}
