package binder_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/patchbind/core/binder"
)

type bookPatch struct {
	binder.Presence

	BookID    int
	Title     string
	Year      int
	Rating    float64
	Available bool
	Tags      []string
	OwnerID   uuid.UUID
	CreatedAt time.Time
}

func (*bookPatch) PartialDescriptor() binder.Schema {
	return bookPatchFields
}

var bookPatchFields = newBookPatchDescriptor()

func newBookPatchDescriptor(opts ...binder.DescriptorOption) *binder.Descriptor[bookPatch] {
	d := binder.NewDescriptor[bookPatch](opts...)
	binder.Field(d, "bookId", func(p *bookPatch, v int) { p.BookID = v })
	binder.Field(d, "title", func(p *bookPatch, v string) { p.Title = v })
	binder.Field(d, "year", func(p *bookPatch, v int) { p.Year = v })
	binder.Field(d, "rating", func(p *bookPatch, v float64) { p.Rating = v })
	binder.Field(d, "available", func(p *bookPatch, v bool) { p.Available = v })
	binder.SliceField(d, "tags", func(p *bookPatch, v []string) { p.Tags = v })
	binder.Field(d, "ownerId", func(p *bookPatch, v uuid.UUID) { p.OwnerID = v })
	binder.ReadOnly[bookPatch, time.Time](d, "createdAt")
	return d
}

// createBook does not implement binder.Partial and goes through ordinary binding.
type createBook struct {
	ID    int    `json:"-" path:"id" query:"-"`
	Title string `json:"title" path:"-" query:"-"`
	Year  int    `json:"year" path:"-" query:"-"`
	Draft bool   `json:"-" path:"-" query:"draft"`
}
