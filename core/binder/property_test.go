package binder_test

import (
	"fmt"
	"net/url"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dmitrymomot/patchbind/core/binder"
)

func TestBind_OverlayProperties(t *testing.T) {
	t.Parallel()

	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	// sources builds a bind input where each flag decides whether that source carries "year".
	sources := func(body, route, query int, inBody, inRoute, inQuery bool) binder.Sources {
		src := binder.Sources{Body: []byte(`{"title":"Dune"}`)}
		if inBody {
			src.Body = []byte(fmt.Sprintf(`{"title":"Dune","year":%d}`, body))
		}
		if inRoute {
			src.Route = binder.RouteValues{"year": strconv.Itoa(route)}
		}
		if inQuery {
			src.Query = url.Values{"year": {strconv.Itoa(query)}}
		}
		return src
	}

	properties.Property("the last source carrying a field wins", prop.ForAll(
		func(body, route, query int, inBody, inRoute, inQuery bool) bool {
			patch, touched, err := binder.Bind(bookPatchFields, sources(body, route, query, inBody, inRoute, inQuery))
			if err != nil {
				return false
			}

			want := 0
			switch {
			case inQuery:
				want = query
			case inRoute:
				want = route
			case inBody:
				want = body
			}
			return patch.Year == want && touched.Has("year") == (inBody || inRoute || inQuery)
		},
		gen.Int32().Map(func(v int32) int { return int(v) }),
		gen.Int32().Map(func(v int32) int { return int(v) }),
		gen.Int32().Map(func(v int32) int { return int(v) }),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("fields from other sources are never dropped", prop.ForAll(
		func(route, query int, inRoute, inQuery bool) bool {
			patch, touched, err := binder.Bind(bookPatchFields, sources(0, route, query, false, inRoute, inQuery))
			return err == nil && patch.Title == "Dune" && touched.Has("title")
		},
		gen.Int32().Map(func(v int32) int { return int(v) }),
		gen.Int32().Map(func(v int32) int { return int(v) }),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("non-numeric route values always fail", prop.ForAll(
		func(s string) bool {
			_, _, err := binder.Bind(bookPatchFields, binder.Sources{
				Route: binder.RouteValues{"year": "x" + s},
			})
			return err != nil
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
