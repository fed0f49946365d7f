package books

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/patchbind/core/handler"
	"github.com/dmitrymomot/patchbind/core/response"
)

// PatchResult is the PATCH /books/{id} response body.
type PatchResult struct {
	Book    Book     `json:"book"`
	Touched []string `json:"touched"`
}

// Handler exposes a Service over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler creates a Handler for svc.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the book endpoints on r. Contexts come from newContext,
// which decides how requests are bound.
func (h *Handler) Routes(r chi.Router, newContext handler.ContextFactory[*handler.BaseContext], mw ...handler.Middleware[*handler.BaseContext]) {
	adapt := func(fn handler.HandlerFunc[*handler.BaseContext]) http.HandlerFunc {
		return handler.Adapt(handler.Chain(fn, mw...), newContext, response.JSONErrorHandler[*handler.BaseContext])
	}

	r.Route("/books", func(r chi.Router) {
		r.Get("/", adapt(h.list))
		r.Post("/", adapt(h.create))
		r.Get("/{id}", adapt(h.get))
		r.Patch("/{id}", adapt(h.patch))
		r.Delete("/{id}", adapt(h.delete))
	})
}

func (h *Handler) list(ctx *handler.BaseContext) handler.Response {
	books, err := h.svc.List(ctx)
	if err != nil {
		return response.Error(err)
	}
	return response.JSON(books)
}

func (h *Handler) create(ctx *handler.BaseContext) handler.Response {
	var req CreateRequest
	if err := ctx.Bind(&req); err != nil {
		return response.Error(err)
	}

	b, err := h.svc.Create(ctx, req)
	if err != nil {
		return response.Error(httpError(err))
	}
	return response.JSONWithStatus(b, http.StatusCreated)
}

func (h *Handler) get(ctx *handler.BaseContext) handler.Response {
	id, err := bookID(ctx)
	if err != nil {
		return response.Error(err)
	}

	b, err := h.svc.Get(ctx, id)
	if err != nil {
		return response.Error(httpError(err))
	}
	return response.JSON(b)
}

func (h *Handler) patch(ctx *handler.BaseContext) handler.Response {
	var p BookPatch
	if err := ctx.Bind(&p); err != nil {
		return response.Error(err)
	}

	b, err := h.svc.Patch(ctx, &p)
	if err != nil {
		return response.Error(httpError(err))
	}
	return response.JSON(PatchResult{Book: b, Touched: p.Touched().Names()})
}

func (h *Handler) delete(ctx *handler.BaseContext) handler.Response {
	id, err := bookID(ctx)
	if err != nil {
		return response.Error(err)
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		return response.Error(httpError(err))
	}
	return response.NoContent()
}

func bookID(ctx handler.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, response.ErrBadRequest.
			WithMessage("invalid book id").
			WithDetails(map[string]any{"source": "route", "field": "id"})
	}
	return id, nil
}

func httpError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return response.ErrNotFound.WithMessage("book not found")
	case errors.Is(err, ErrInvalidBook):
		return response.ErrUnprocessableEntity.WithMessage(err.Error())
	default:
		return err
	}
}
