package binder

import (
	"maps"
	"slices"
)

// Touched is the set of field names populated by a single partial bind.
// Names use the descriptor spelling, also for case-insensitive matches.
type Touched map[string]struct{}

// Add records name as populated.
func (t Touched) Add(name string) {
	t[name] = struct{}{}
}

// Has reports whether name was populated. It is safe on a nil set.
func (t Touched) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// Len returns the number of populated fields.
func (t Touched) Len() int {
	return len(t)
}

// Names returns the populated field names in sorted order.
func (t Touched) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// Presence records the touched fields of a Partial request type.
// Embed it in a struct to opt into partial binding:
//
//	type BookPatch struct {
//		binder.Presence
//		Title string
//		Year  int
//	}
//
//	func (*BookPatch) PartialDescriptor() binder.Schema { return bookPatchFields }
type Presence struct {
	touched Touched
}

// Touched returns the fields populated by the last bind.
func (p *Presence) Touched() Touched {
	return p.touched
}

// IsSet reports whether name was supplied by the request.
func (p *Presence) IsSet(name string) bool {
	return p.touched.Has(name)
}

func (p *Presence) setTouched(t Touched) {
	p.touched = t
}
