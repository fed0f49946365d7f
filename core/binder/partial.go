package binder

import (
	"bytes"
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"slices"

	"github.com/tidwall/gjson"
)

// RouteValues maps route parameter names to their values.
// Values are usually strings produced by the router, but may already hold
// the declared field type.
type RouteValues map[string]any

// Sources holds the three inputs of a partial bind.
type Sources struct {
	Body  []byte
	Route RouteValues
	Query url.Values
}

// Schema is the type-erased view of a Descriptor used by Request to bind
// Partial targets without knowing their concrete type.
type Schema interface {
	bindTarget(target any, src Sources) (Touched, error)
}

// Partial is implemented by request types that opt into partial binding.
// Such types embed Presence and return their package-level descriptor.
type Partial interface {
	PartialDescriptor() Schema
	setTouched(Touched)
}

// Bind creates a new T and populates it from src in three passes:
// body fields, then route values, then query values. A later pass
// overwrites fields set by an earlier one. Keys without a matching settable
// field are ignored.
//
// It returns the instance and the set of populated field names. On error the
// instance is discarded and the error wraps ErrBodyFormat or ErrTypeConversion.
func Bind[T any](d *Descriptor[T], src Sources) (*T, Touched, error) {
	d.sealed.Store(true)

	dst := new(T)
	touched := make(Touched)

	if err := d.bindBody(dst, src.Body, touched); err != nil {
		return nil, nil, err
	}
	if err := d.bindRoute(dst, src.Route, touched); err != nil {
		return nil, nil, err
	}
	if err := d.bindQuery(dst, src.Query, touched); err != nil {
		return nil, nil, err
	}

	return dst, touched, nil
}

func (d *Descriptor[T]) bindBody(dst *T, body []byte, touched Touched) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}
	if !gjson.ValidBytes(body) {
		return bodyError("", "invalid JSON")
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return bodyError("", "expected JSON object, got %s", doc.Type)
	}

	var err error
	doc.ForEach(func(key, value gjson.Result) bool {
		f, ok := d.lookup(key.String())
		if !ok || !f.settable() {
			return true
		}
		if decErr := f.setJSON(dst, []byte(value.Raw)); decErr != nil {
			err = bodyError(f.name, "%v", decErr)
			return false
		}
		touched.Add(f.name)
		return true
	})
	return err
}

func (d *Descriptor[T]) bindRoute(dst *T, route RouteValues, touched Touched) error {
	if len(route) == 0 {
		return nil
	}

	values := route
	if d.foldCase {
		// Keys that fold together resolve like query keys: the last in sorted order wins.
		values = make(RouteValues, len(route))
		for _, k := range slices.Sorted(maps.Keys(route)) {
			values[d.key(k)] = route[k]
		}
	}

	for _, f := range d.fields {
		if !f.settable() {
			continue
		}
		v, ok := values[d.key(f.name)]
		if !ok {
			continue
		}
		if err := f.setRoute(dst, v, d.conv); err != nil {
			return &FieldError{Source: SourceRoute, Field: f.name, Err: err}
		}
		touched.Add(f.name)
	}
	return nil
}

func (d *Descriptor[T]) bindQuery(dst *T, query url.Values, touched Touched) error {
	if len(query) == 0 {
		return nil
	}

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		f, ok := d.lookup(k)
		if !ok || !f.settable() {
			continue
		}
		if err := f.setText(dst, query[k], d.conv); err != nil {
			return &FieldError{Source: SourceQuery, Field: f.name, Err: err}
		}
		touched.Add(f.name)
	}
	return nil
}

func (d *Descriptor[T]) bindTarget(target any, src Sources) (Touched, error) {
	dst, ok := target.(*T)
	if !ok || dst == nil {
		return nil, fmt.Errorf("%w: descriptor for %s cannot bind %T", ErrBinderNotApplicable, reflect.TypeFor[T](), target)
	}

	bound, touched, err := Bind(d, src)
	if err != nil {
		return nil, err
	}
	*dst = *bound
	return touched, nil
}
