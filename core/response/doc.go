// Package response provides HTTP response helpers for JSON APIs built on
// handler.Response, and error handlers that turn errors into structured JSON
// error bodies.
//
// # Basic Usage
//
//	func getBook(ctx handler.Context) handler.Response {
//		book, err := store.Get(ctx, id)
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.JSON(book)
//	}
//
// # Error Handling
//
// JSONErrorHandler renders any error as
//
//	{"code":"bad_request","message":"Bad Request","details":{"cause":"...","source":"route","field":"id"}}
//
// HTTPError values are rendered as is. Binding errors from the binder package
// map to 400 Bad Request, or 415 Unsupported Media Type for Content-Type
// problems. Errors implementing StatusCode() int use that status; anything
// else becomes 500.
package response
