package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/patchbind/core/binder"
	"github.com/dmitrymomot/patchbind/core/handler"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// bindingErrors maps binder failures to client errors, checked in order.
var bindingErrors = []struct {
	target error
	base   HTTPError
}{
	{binder.ErrBodyTooLarge, ErrRequestEntityTooLarge},
	{binder.ErrUnsupportedMediaType, ErrUnsupportedMediaType},
	{binder.ErrMissingContentType, ErrUnsupportedMediaType},
	{binder.ErrBodyFormat, ErrBadRequest},
	{binder.ErrTypeConversion, ErrBadRequest},
	{binder.ErrFailedToParseJSON, ErrBadRequest},
	{binder.ErrFailedToParsePath, ErrBadRequest},
	{binder.ErrFailedToParseQuery, ErrBadRequest},
}

// convertToHTTPError converts any error to an HTTPError
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	for _, m := range bindingErrors {
		if errors.Is(err, m.target) {
			return bindingHTTPError(m.base, err)
		}
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}
	return baseErr.WithError(err)
}

// bindingHTTPError attaches the failing source and field of a partial bind.
func bindingHTTPError(base HTTPError, err error) HTTPError {
	httpErr := base.WithError(err)

	var fieldErr *binder.FieldError
	if errors.As(err, &fieldErr) {
		details := map[string]any{"source": string(fieldErr.Source)}
		if fieldErr.Field != "" {
			details["field"] = fieldErr.Field
		}
		httpErr = httpErr.WithDetails(details)
	}
	return httpErr
}

// ErrorHandler is the default error handler that returns plain text errors.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	http.Error(ctx.ResponseWriter(), httpErr.Error(), httpErr.Status)
}

// JSONErrorHandler returns errors as JSON responses.
// Binding failures become 400 (415 for media type problems) with the
// failing source and field in the details.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}

// StatusCodeOf reports the HTTP status an error handler would write for err.
func StatusCodeOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return convertToHTTPError(err).Status
}
