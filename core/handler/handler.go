package handler

import "net/http"

// Response is a function that renders HTTP responses.
// It sets headers, status code, and writes the response body.
// Rendering errors are handled by the framework's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe HTTP request handler with custom context support.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler handles errors during request processing.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// ContextFactory creates the request context for a handler invocation.
type ContextFactory[C Context] func(w http.ResponseWriter, r *http.Request) C

// Chain applies middlewares to h. The first middleware is the outermost.
func Chain[C Context](h HandlerFunc[C], middlewares ...Middleware[C]) HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Adapt converts h into an http.HandlerFunc for use with standard routers.
// A nil Response is treated as 204 No Content; errors returned while
// rendering go to onError.
func Adapt[C Context](h HandlerFunc[C], newContext ContextFactory[C], onError ErrorHandler[C]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := newContext(w, r)
		resp := h(ctx)
		if resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err := resp(w, r); err != nil && onError != nil {
			onError(ctx, err)
		}
	}
}
