package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patchbind/core/binder"
)

// serve routes req through a chi router and binds v with binder.Request.
func serve(t *testing.T, pattern string, req *http.Request, v any) error {
	t.Helper()

	var bindErr error
	bind := binder.Request(binder.ChiRoute)

	r := chi.NewRouter()
	r.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		bindErr = bind(req, v)
	}))
	r.ServeHTTP(httptest.NewRecorder(), req)

	return bindErr
}

func TestRequest_PartialTarget(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPatch, "/books/42?available=yes", strings.NewReader(`{"title":"Dune","unknown":1}`))
	req.Header.Set("Content-Type", "application/json")

	var patch bookPatch
	require.NoError(t, serve(t, "/books/{bookId}", req, &patch))

	assert.Equal(t, 42, patch.BookID)
	assert.Equal(t, "Dune", patch.Title)
	assert.True(t, patch.Available)
	assert.Zero(t, patch.Year)

	assert.True(t, patch.IsSet("bookId"))
	assert.True(t, patch.IsSet("title"))
	assert.True(t, patch.IsSet("available"))
	assert.False(t, patch.IsSet("year"))
	assert.Equal(t, []string{"available", "bookId", "title"}, patch.Touched().Names())
}

func TestRequest_FailedPartialBindLeavesTargetUnchanged(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPatch, "/books/abc", strings.NewReader(`{"title":"Dune"}`))
	req.Header.Set("Content-Type", "application/json")

	patch := bookPatch{Title: "unchanged"}
	err := serve(t, "/books/{bookId}", req, &patch)
	require.ErrorIs(t, err, binder.ErrTypeConversion)

	assert.Equal(t, "unchanged", patch.Title)
	assert.Nil(t, patch.Touched())
}

func TestRequest_MalformedPartialBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPatch, "/books/42", strings.NewReader(`not-json`))
	req.Header.Set("Content-Type", "application/json")

	var patch bookPatch
	err := serve(t, "/books/{bookId}", req, &patch)
	require.ErrorIs(t, err, binder.ErrBodyFormat)
	assert.Zero(t, patch.BookID)
}

func TestRequest_OrdinaryTarget(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/books/7?draft=on", strings.NewReader(`{"title":"Dune","year":1965}`))
	req.Header.Set("Content-Type", "application/json")

	var got createBook
	require.NoError(t, serve(t, "/books/{id}", req, &got))

	assert.Equal(t, createBook{ID: 7, Title: "Dune", Year: 1965, Draft: true}, got)
}

func TestRequest_OrdinaryTargetRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/books/7", strings.NewReader(`{"title":"Dune","publisher":"Chilton"}`))
	req.Header.Set("Content-Type", "application/json")

	var got createBook
	err := serve(t, "/books/{id}", req, &got)
	assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
}

func TestRequest_OrdinaryTargetWithoutBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/books/7?draft=1", nil)

	var got createBook
	require.NoError(t, serve(t, "/books/{id}", req, &got))
	assert.Equal(t, createBook{ID: 7, Draft: true}, got)
}

func TestRequest_OrdinaryTargetBadPath(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/books/seven", nil)

	var got createBook
	err := serve(t, "/books/{id}", req, &got)
	assert.ErrorIs(t, err, binder.ErrFailedToParsePath)
}

func TestQuery(t *testing.T) {
	t.Parallel()

	type search struct {
		Query    string   `query:"q"`
		Page     int      `query:"page"`
		Tags     []string `query:"tags"`
		Active   *bool    `query:"active"`
		Internal string   `query:"-"`
	}

	req := httptest.NewRequest(http.MethodGet, "/?q=dune&page=2&tags=a,b&tags=c&active=true&internal=x", nil)

	var got search
	require.NoError(t, binder.Query()(req, &got))
	assert.Equal(t, "dune", got.Query)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, []string{"a", "b", "c"}, got.Tags)
	require.NotNil(t, got.Active)
	assert.True(t, *got.Active)
	assert.Empty(t, got.Internal)

	req = httptest.NewRequest(http.MethodGet, "/?page=two", nil)
	assert.ErrorIs(t, binder.Query()(req, &got), binder.ErrFailedToParseQuery)

	assert.ErrorIs(t, binder.Query()(req, got), binder.ErrFailedToParseQuery)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Title string `json:"title"`
	}

	tests := []struct {
		name        string
		contentType string
		body        string
		wantErr     error
		want        string
	}{
		{name: "valid", contentType: "application/json", body: `{"title":"Dune\r\n"}`, want: "Dune"},
		{name: "missing content type", body: `{"title":"Dune"}`, wantErr: binder.ErrMissingContentType},
		{name: "wrong content type", contentType: "text/plain", body: `{"title":"Dune"}`, wantErr: binder.ErrUnsupportedMediaType},
		{name: "empty body", contentType: "application/json", body: ``, wantErr: binder.ErrFailedToParseJSON},
		{name: "trailing data", contentType: "application/json", body: `{"title":"Dune"}{}`, wantErr: binder.ErrFailedToParseJSON},
		{name: "invalid", contentType: "application/json", body: `{`, wantErr: binder.ErrFailedToParseJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			var got payload
			err := binder.JSON()(req, &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Title)
		})
	}
}
