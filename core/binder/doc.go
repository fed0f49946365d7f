// Package binder binds HTTP request data to Go values. Besides the ordinary
// reflection based binders (JSON, Query, Path) it provides partial binding for
// PATCH-style endpoints: only the fields a request actually supplies are set,
// and the binder reports which fields those were, so handlers can tell an
// omitted field from one explicitly set to its zero value.
//
// # Partial Binding
//
// A partially bindable type declares its fields once in an explicit
// Descriptor. Each field has a name, a value type and a typed setter; fields
// declared with ReadOnly are never bound.
//
//	type BookPatch struct {
//		binder.Presence
//		ID    uuid.UUID
//		Title string
//		Year  int
//		Tags  []string
//	}
//
//	var bookPatchFields = func() *binder.Descriptor[BookPatch] {
//		d := binder.NewDescriptor[BookPatch]()
//		binder.Field(d, "id", func(p *BookPatch, v uuid.UUID) { p.ID = v })
//		binder.Field(d, "title", func(p *BookPatch, v string) { p.Title = v })
//		binder.Field(d, "year", func(p *BookPatch, v int) { p.Year = v })
//		binder.SliceField(d, "tags", func(p *BookPatch, v []string) { p.Tags = v })
//		binder.ReadOnly[BookPatch, time.Time](d, "createdAt")
//		return d
//	}()
//
//	func (*BookPatch) PartialDescriptor() binder.Schema { return bookPatchFields }
//
// Bind applies three sources in a fixed order, each overwriting the previous:
//
//  1. the JSON body, decoded per field with encoding/json
//  2. route values, converted with the descriptor's Converters
//  3. query values, converted the same way
//
// Keys without a matching settable field are ignored. A body that is not a
// JSON object fails with ErrBodyFormat before any other source is applied; a
// route or query value that cannot be converted fails with ErrTypeConversion.
// Both are reported as *FieldError. JSON null and empty route or query values
// set the field to its zero value and mark it as touched.
//
//	patch, touched, err := binder.Bind(bookPatchFields, binder.Sources{
//		Body:  []byte(`{"title":"Dune"}`),
//		Route: binder.RouteValues{"id": "6f1c..."},
//		Query: r.URL.Query(),
//	})
//
// # Conversion Registry
//
// Route and query text is converted by an explicit registry keyed by the
// target type. DefaultConverters covers strings, booleans, numbers,
// time.Time, time.Duration and uuid.UUID. Register adds more:
//
//	conv := binder.DefaultConverters()
//	binder.Register(conv, func(s string) (Status, error) { return ParseStatus(s) })
//	d := binder.NewDescriptor[TaskPatch](binder.WithConverters(conv))
//
// Fields of types without a converter, such as nested structs, maps or *int,
// are still declarable. They bind from the JSON body, and a route or query
// value for them fails with ErrTypeConversion.
//
// Strings from every source are cleaned the same way: NUL, CR, LF and invalid
// UTF-8 are removed.
//
// # Framework Integration
//
// Request returns a Binder that dispatches on the Partial capability: types
// that embed Presence and implement PartialDescriptor are bound partially,
// everything else goes through JSON, Path and Query.
//
//	bind := binder.Request(binder.ChiRoute)
//
//	var patch BookPatch
//	if err := bind(r, &patch); err != nil { ... }
//	if patch.IsSet("year") { ... }
//
// # Ordinary Binders
//
// JSON parses request bodies strictly (Content-Type check, size limit,
// unknown fields rejected). Query and Path bind by struct tag, defaulting to
// the lowercase field name:
//
//	type SearchRequest struct {
//		Query string   `query:"q"`
//		Page  int      `query:"page"`
//		Tags  []string `query:"tags"` // ?tags=go&tags=web or ?tags=go,web
//	}
//
// All string values taken from query and route sources are stripped of NUL
// bytes, CR/LF and non-printable control characters.
package binder
