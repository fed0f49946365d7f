package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path creates a path parameter binder function using the provided extractor.
// The extractor is called for each struct field with its parameter name;
// empty results leave the field untouched.
//
// Struct tags:
//   - `path:"name"` - binds to path parameter "name"
//   - `path:"-"` - skips the field
//
// Example with chi:
//
//	type GetBookRequest struct {
//		ID uuid.UUID `path:"id"`
//	}
//
//	if err := binder.Path(chi.URLParam)(r, &req); err != nil { ... }
func Path(extractor func(r *http.Request, fieldName string) string) Binder {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}

		values := make(map[string][]string)
		err := eachBindableField(v, "path", ErrFailedToParsePath, func(name string, _ reflect.Value, _ reflect.StructField) error {
			if value := extractor(r, name); value != "" {
				values[name] = []string{value}
			}
			return nil
		})
		if err != nil {
			return err
		}

		return bindToStruct(v, "path", values, ErrFailedToParsePath)
	}
}

// routeParam adapts collected route values to the Path extractor signature.
func routeParam(values RouteValues) func(r *http.Request, name string) string {
	return func(_ *http.Request, name string) string {
		switch v := values[name].(type) {
		case nil:
			return ""
		case string:
			return v
		case fmt.Stringer:
			return v.String()
		default:
			return fmt.Sprint(v)
		}
	}
}
