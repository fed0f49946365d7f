// Package books is a small book catalogue served over HTTP. It shows both
// binding modes: POST /books decodes a complete body, while PATCH
// /books/{id} binds a BookPatch so that only the fields present in the
// request body, route or query string are changed.
//
// Books live in a Store: MemoryStore for a single process, RedisStore for
// shared state.
package books
