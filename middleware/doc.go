// Package middleware provides handler.Middleware implementations shared by
// services built on core/handler.
//
// RequestID assigns every request an identifier, stores it in the request
// context and echoes it in the X-Request-ID response header:
//
//	h := handler.Chain(patchBook,
//		middleware.RequestID[*handler.BaseContext](),
//		middleware.LoggingWithLogger[*handler.BaseContext](log),
//	)
//
// Logging writes one structured record per request with method, path, status,
// size and latency. Client errors are logged at warn level; when the error
// came from the binder the record also names the failing request part
// ("body", "route" or "query") and field. Place RequestID before Logging so
// the record includes the request ID.
package middleware
