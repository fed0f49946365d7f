package binder

import (
	"bytes"
	"io"
	"net/http"
)

// Request returns the framework binder. Targets implementing Partial are
// bound with their descriptor: only supplied fields are set and the touched
// set is stored in their Presence. A failed partial bind leaves the target
// unchanged. Every other target is bound with JSON (when a body is present),
// then Path and Query.
//
// Example with chi:
//
//	bind := binder.Request(binder.ChiRoute)
//
//	r.Patch("/books/{id}", func(w http.ResponseWriter, r *http.Request) {
//		var patch BookPatch
//		if err := bind(r, &patch); err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		if patch.IsSet("title") { ... }
//	})
func Request(route RouteExtractor, opts ...Option) Binder {
	return func(r *http.Request, v any) error {
		if p, ok := v.(Partial); ok {
			return bindPartial(r, p, route, opts)
		}
		return bindOrdinary(r, v, route, opts)
	}
}

func bindPartial(r *http.Request, p Partial, route RouteExtractor, opts []Option) error {
	src, err := ReadSources(r, route, opts...)
	if err != nil {
		return err
	}

	touched, err := p.PartialDescriptor().bindTarget(p, src)
	if err != nil {
		return err
	}
	p.setTouched(touched)
	return nil
}

func bindOrdinary(r *http.Request, v any, route RouteExtractor, opts []Option) error {
	src, err := ReadSources(r, route, opts...)
	if err != nil {
		return err
	}

	if len(src.Body) > 0 {
		// ReadSources consumed the body; hand JSON a fresh reader over the same bytes.
		r.Body = io.NopCloser(bytes.NewReader(src.Body))
		if r.Header.Get("Content-Type") == "" {
			r.Header.Set("Content-Type", "application/json")
		}
		if err := JSON()(r, v); err != nil {
			return err
		}
	}

	if err := Path(routeParam(src.Route))(r, v); err != nil {
		return err
	}
	return Query()(r, v)
}
