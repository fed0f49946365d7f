// Package handler provides types and interfaces for HTTP request processing
// with type-safe context handling and middleware support.
//
// # Core Types
//
//	type Response func(w http.ResponseWriter, r *http.Request) error
//	type HandlerFunc[C Context] func(ctx C) Response
//	type ErrorHandler[C Context] func(ctx C, err error)
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// # Binding
//
// Context.Bind is the binding selection point of the framework. The default
// BaseContext delegates to binder.Request, so request types that opt into
// partial binding (embedding binder.Presence and implementing
// PartialDescriptor) get PATCH semantics while every other type is bound
// ordinarily:
//
//	func patchBook(ctx *handler.BaseContext) handler.Response {
//		var patch BookPatch
//		if err := ctx.Bind(&patch); err != nil {
//			return response.Error(err)
//		}
//		if patch.IsSet("title") {
//			// title was supplied, possibly as null
//		}
//		return response.JSON(patch)
//	}
//
// # Router Integration
//
// Adapt turns a HandlerFunc into an http.HandlerFunc for any standard router:
//
//	newContext := handler.ContextFactoryFor(binder.ChiRoute)
//
//	r := chi.NewRouter()
//	r.Patch("/books/{id}", handler.Adapt(
//		handler.Chain(patchBook, middleware.Logging[*handler.BaseContext]()),
//		newContext,
//		response.JSONErrorHandler[*handler.BaseContext],
//	))
package handler
