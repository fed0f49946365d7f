package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patchbind/core/binder"
	"github.com/dmitrymomot/patchbind/core/handler"
	"github.com/dmitrymomot/patchbind/middleware"
)

// serve runs h wrapped in mw against req and returns the recorded response.
func serve(h handler.HandlerFunc[*handler.BaseContext], req *http.Request, mw ...handler.Middleware[*handler.BaseContext]) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.Adapt(
		handler.Chain(h, mw...),
		handler.ContextFactoryFor(binder.ChiRoute),
		nil,
	).ServeHTTP(w, req)
	return w
}

func ok(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(http.StatusOK)
	return nil
}

func TestRequestIDDefaultConfiguration(t *testing.T) {
	t.Parallel()

	var capturedID string
	w := serve(func(ctx *handler.BaseContext) handler.Response {
		id, found := middleware.GetRequestID(ctx)
		assert.True(t, found, "Request ID should be present in context")
		capturedID = id
		return ok
	}, httptest.NewRequest(http.MethodGet, "/test", nil), middleware.RequestID[*handler.BaseContext]())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, capturedID, w.Header().Get("X-Request-ID"))
	_, err := uuid.Parse(capturedID)
	require.NoError(t, err)
}

func TestRequestIDCustomGenerator(t *testing.T) {
	t.Parallel()

	mw := middleware.RequestIDWithConfig[*handler.BaseContext](middleware.RequestIDConfig{
		Generator:  func() string { return "custom-123" },
		HeaderName: "X-Trace-ID",
	})
	w := serve(func(ctx *handler.BaseContext) handler.Response { return ok }, httptest.NewRequest(http.MethodGet, "/", nil), mw)

	assert.Equal(t, "custom-123", w.Header().Get("X-Trace-ID"))
	assert.Empty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDUseExisting(t *testing.T) {
	t.Parallel()

	mw := middleware.RequestIDWithConfig[*handler.BaseContext](middleware.RequestIDConfig{UseExisting: true})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "from-client")
	w := serve(func(ctx *handler.BaseContext) handler.Response { return ok }, req, mw)
	assert.Equal(t, "from-client", w.Header().Get("X-Request-ID"))
}

func TestRequestIDSkipAndNilResponse(t *testing.T) {
	t.Parallel()

	skip := middleware.RequestIDWithConfig[*handler.BaseContext](middleware.RequestIDConfig{
		Skip: func(handler.Context) bool { return true },
	})
	w := serve(func(ctx *handler.BaseContext) handler.Response { return ok }, httptest.NewRequest(http.MethodGet, "/", nil), skip)
	assert.Empty(t, w.Header().Get("X-Request-ID"))

	w = serve(func(ctx *handler.BaseContext) handler.Response { return nil }, httptest.NewRequest(http.MethodGet, "/", nil), middleware.RequestID[*handler.BaseContext]())
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
