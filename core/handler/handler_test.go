package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patchbind/core/binder"
	"github.com/dmitrymomot/patchbind/core/handler"
)

type titlePatch struct {
	binder.Presence
	ID    int
	Title string
}

var titlePatchFields = func() *binder.Descriptor[titlePatch] {
	d := binder.NewDescriptor[titlePatch]()
	binder.Field(d, "id", func(p *titlePatch, v int) { p.ID = v })
	binder.Field(d, "title", func(p *titlePatch, v string) { p.Title = v })
	return d
}()

func (*titlePatch) PartialDescriptor() binder.Schema { return titlePatchFields }

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var calls []string
	mw := func(name string) handler.Middleware[*handler.BaseContext] {
		return func(next handler.HandlerFunc[*handler.BaseContext]) handler.HandlerFunc[*handler.BaseContext] {
			return func(ctx *handler.BaseContext) handler.Response {
				calls = append(calls, name)
				return next(ctx)
			}
		}
	}

	h := handler.Chain(func(ctx *handler.BaseContext) handler.Response {
		calls = append(calls, "handler")
		return nil
	}, mw("outer"), mw("inner"))

	rec := httptest.NewRecorder()
	handler.Adapt(h, handler.ContextFactoryFor(nil), nil)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdapt_ErrorHandler(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var got error

	h := func(ctx *handler.BaseContext) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error { return boom }
	}
	onError := func(ctx *handler.BaseContext, err error) {
		got = err
		ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
	}

	rec := httptest.NewRecorder()
	handler.Adapt(h, handler.ContextFactoryFor(nil), onError)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.ErrorIs(t, got, boom)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestBaseContext_ParamAndBind(t *testing.T) {
	t.Parallel()

	var (
		param string
		patch titlePatch
		err   error
	)

	h := func(ctx *handler.BaseContext) handler.Response {
		param = ctx.Param("id")
		err = ctx.Bind(&patch)
		return nil
	}

	r := chi.NewRouter()
	r.Patch("/items/{id}", handler.Adapt(h, handler.ContextFactoryFor(binder.ChiRoute), nil))

	req := httptest.NewRequest(http.MethodPatch, "/items/9", strings.NewReader(`{"title":"Dune"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.NoError(t, err)
	assert.Equal(t, "9", param)
	assert.Equal(t, 9, patch.ID)
	assert.Equal(t, "Dune", patch.Title)
	assert.Equal(t, []string{"id", "title"}, patch.Touched().Names())
}

func TestBaseContext_Values(t *testing.T) {
	t.Parallel()

	type key struct{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := handler.NewContext(httptest.NewRecorder(), req, nil)

	ctx.SetValue(key{}, "v")
	assert.Equal(t, "v", ctx.Value(key{}))
	assert.Equal(t, "v", ctx.Request().Context().Value(key{}))
	assert.Empty(t, ctx.Param("id"))
	assert.NoError(t, ctx.Err())
}

func TestContextFactoryWithBinder(t *testing.T) {
	t.Parallel()

	var calls int
	bind := func(r *http.Request, v any) error {
		calls++
		return binder.Request(nil)(r, v)
	}

	newContext := handler.ContextFactoryWithBinder(nil, bind)
	ctx := newContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/?title=Dune", nil))

	var patch titlePatch
	require.NoError(t, ctx.Bind(&patch))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Dune", patch.Title)
	assert.Empty(t, ctx.Param("id"))
}
