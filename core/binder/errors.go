package binder

import (
	"errors"
	"fmt"
)

// Error variables define common binding failures that can occur during request processing.
var (
	// ErrBodyFormat indicates the request body is not a JSON object, or one of its
	// values cannot be decoded into the declared field type.
	ErrBodyFormat = errors.New("malformed request body")

	// ErrBodyTooLarge indicates the request body exceeds the configured size limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrTypeConversion indicates a route or query value cannot be converted
	// to the declared field type.
	ErrTypeConversion = errors.New("type conversion failed")

	// ErrUnsupportedMediaType indicates the Content-Type header specifies a media type
	// that the binder doesn't support (e.g., text/plain for JSON binder).
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFailedToParseJSON indicates the request body contains invalid JSON
	// or doesn't match the target struct schema.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrFailedToParseQuery indicates query parameter parsing failed,
	// typically due to type conversion errors.
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")

	// ErrFailedToParsePath indicates path parameter extraction or conversion failed.
	ErrFailedToParsePath = errors.New("failed to parse path parameters")

	// ErrMissingContentType indicates the request lacks a Content-Type header
	// when one is required for parsing.
	ErrMissingContentType = errors.New("missing content type")

	// ErrBinderNotApplicable indicates the binder cannot process the target
	// (e.g., a descriptor built for another type).
	ErrBinderNotApplicable = errors.New("binder not applicable for this request")
)

// Source names the part of the request a value was taken from.
type Source string

const (
	SourceBody  Source = "body"
	SourceRoute Source = "route"
	SourceQuery Source = "query"
)

// FieldError reports a partial binding failure together with the source and
// field that caused it. Err always wraps ErrBodyFormat or ErrTypeConversion.
type FieldError struct {
	Source Source
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s field %q: %v", e.Source, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func bodyError(field string, format string, args ...any) error {
	return &FieldError{
		Source: SourceBody,
		Field:  field,
		Err:    fmt.Errorf("%w: %s", ErrBodyFormat, fmt.Sprintf(format, args...)),
	}
}
