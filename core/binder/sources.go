package binder

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// RouteExtractor collects the route values of a request.
type RouteExtractor func(r *http.Request) RouteValues

// Option configures request reading.
type Option func(*options)

type options struct {
	maxBodySize int64
}

func newOptions(opts []Option) options {
	o := options{maxBodySize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxBodySize limits the request body size. Non-positive values keep the default.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodySize = n
		}
	}
}

// ChiRoute extracts route values from chi's routing context.
func ChiRoute(r *http.Request) RouteValues {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}

	keys := rctx.URLParams.Keys
	values := make(RouteValues, len(keys))
	for i, key := range keys {
		if key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		values[key] = rctx.URLParams.Values[i]
	}
	return values
}

// PathValues extracts the named wildcards matched by http.ServeMux.
// Names with no match are left out.
func PathValues(names ...string) RouteExtractor {
	return func(r *http.Request) RouteValues {
		values := make(RouteValues, len(names))
		for _, name := range names {
			if v := r.PathValue(name); v != "" {
				values[name] = v
			}
		}
		return values
	}
}

// ReadSources collects body, route and query values from r.
// The body is consumed once; an absent or empty body yields nil Body.
// A body over the size limit fails with ErrBodyTooLarge.
func ReadSources(r *http.Request, route RouteExtractor, opts ...Option) (Sources, error) {
	o := newOptions(opts)

	body, err := readBody(r, o.maxBodySize)
	if err != nil {
		return Sources{}, err
	}

	src := Sources{
		Body:  body,
		Query: r.URL.Query(),
	}
	if route != nil {
		src.Route = route(r)
	}
	return src, nil
}

// BindRequest reads r and binds it onto a new T with d.
func BindRequest[T any](r *http.Request, d *Descriptor[T], route RouteExtractor, opts ...Option) (*T, Touched, error) {
	src, err := ReadSources(r, route, opts...)
	if err != nil {
		return nil, nil, err
	}
	return Bind(d, src)
}

func readBody(r *http.Request, limit int64) ([]byte, error) {
	// Fail fast if request context is already cancelled to avoid processing doomed requests
	if err := r.Context().Err(); err != nil {
		return nil, &FieldError{Source: SourceBody, Err: fmt.Errorf("%w: %w", ErrBodyFormat, err)}
	}

	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	// Read with +1 byte to detect oversized requests
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		if ctxErr := r.Context().Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, &FieldError{Source: SourceBody, Err: fmt.Errorf("%w: read failed: %w", ErrBodyFormat, err)}
	}
	if int64(len(body)) > limit {
		return nil, &FieldError{Source: SourceBody, Err: fmt.Errorf("%w (max %d bytes)", ErrBodyTooLarge, limit)}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	if err := checkJSONContentType(r.Header.Get("Content-Type")); err != nil {
		return nil, err
	}
	return body, nil
}

// checkJSONContentType accepts a missing Content-Type, application/json and +json suffixes.
func checkJSONContentType(contentType string) error {
	if contentType == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, contentType)
	}
	if mediaType == "application/json" || strings.HasSuffix(mediaType, "+json") {
		return nil
	}
	return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
}
