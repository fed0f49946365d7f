package binder

import (
	"net/http"
)

// Query creates a query parameter binder function.
//
// Struct tags:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//   - `query:"name,omitempty"` - same as query:"name" for parsing
//
// Slices receive every value of a repeated key (?tags=go&tags=web) as well as
// comma separated values (?tags=go,web).
func Query() Binder {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
