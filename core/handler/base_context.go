package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/patchbind/core/binder"
)

// BaseContext is the default Context implementation. It delegates
// context.Context methods to the request's context and reads route
// parameters through a binder.RouteExtractor.
type BaseContext struct {
	w      http.ResponseWriter
	r      *http.Request
	route  binder.RouteExtractor
	bind   binder.Binder
	params binder.RouteValues
}

// NewContext creates a BaseContext for one request.
// A nil route extractor means the request has no route parameters.
func NewContext(w http.ResponseWriter, r *http.Request, route binder.RouteExtractor, opts ...binder.Option) *BaseContext {
	return &BaseContext{
		w:     w,
		r:     r,
		route: route,
		bind:  binder.Request(route, opts...),
	}
}

// NewContextWithBinder creates a BaseContext whose Bind delegates to bind.
func NewContextWithBinder(w http.ResponseWriter, r *http.Request, route binder.RouteExtractor, bind binder.Binder) *BaseContext {
	return &BaseContext{w: w, r: r, route: route, bind: bind}
}

// ContextFactoryFor returns a factory producing BaseContext values with the given extractor.
func ContextFactoryFor(route binder.RouteExtractor, opts ...binder.Option) ContextFactory[*BaseContext] {
	return func(w http.ResponseWriter, r *http.Request) *BaseContext {
		return NewContext(w, r, route, opts...)
	}
}

// ContextFactoryWithBinder returns a factory whose contexts share bind.
func ContextFactoryWithBinder(route binder.RouteExtractor, bind binder.Binder) ContextFactory[*BaseContext] {
	return func(w http.ResponseWriter, r *http.Request) *BaseContext {
		return NewContextWithBinder(w, r, route, bind)
	}
}

func (c *BaseContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *BaseContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *BaseContext) Err() error {
	return c.r.Context().Err()
}

func (c *BaseContext) Value(key any) any {
	return c.r.Context().Value(key)
}

// SetValue stores a value in the request's context.
func (c *BaseContext) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}

// Request returns the HTTP request associated with this context.
func (c *BaseContext) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer associated with this context.
func (c *BaseContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the route parameter key as text, or "" when absent.
func (c *BaseContext) Param(key string) string {
	if c.params == nil {
		if c.route == nil {
			return ""
		}
		c.params = c.route(c.r)
	}
	v, ok := c.params[key].(string)
	if !ok {
		return ""
	}
	return v
}

// Bind populates v from the request body, route and query.
func (c *BaseContext) Bind(v any) error {
	return c.bind(c.r, v)
}
