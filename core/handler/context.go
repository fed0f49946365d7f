package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts in the framework.
// Use NewContext for the default implementation.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
	// Bind populates v from the request. Types implementing binder.Partial
	// receive partial binding; all others use ordinary binding.
	Bind(v any) error
}
