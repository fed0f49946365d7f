package books

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/patchbind/core/binder"
)

// Book is a catalogue entry.
type Book struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Year      int       `json:"year"`
	Tags      []string  `json:"tags"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Field names accepted by BookPatch.
const (
	FieldID        = "id"
	FieldTitle     = "title"
	FieldAuthor    = "author"
	FieldYear      = "year"
	FieldTags      = "tags"
	FieldAvailable = "available"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// BookPatch is a partial update of a Book. Only fields present in the
// request are applied; id comes from the route.
type BookPatch struct {
	binder.Presence

	ID        uuid.UUID
	Title     string
	Author    string
	Year      int
	Tags      []string
	Available bool
}

var bookPatchFields = func() *binder.Descriptor[BookPatch] {
	d := binder.NewDescriptor[BookPatch]()
	binder.Field(d, FieldID, func(p *BookPatch, v uuid.UUID) { p.ID = v })
	binder.Field(d, FieldTitle, func(p *BookPatch, v string) { p.Title = v })
	binder.Field(d, FieldAuthor, func(p *BookPatch, v string) { p.Author = v })
	binder.Field(d, FieldYear, func(p *BookPatch, v int) { p.Year = v })
	binder.SliceField(d, FieldTags, func(p *BookPatch, v []string) { p.Tags = v })
	binder.Field(d, FieldAvailable, func(p *BookPatch, v bool) { p.Available = v })
	binder.ReadOnly[BookPatch, time.Time](d, FieldCreatedAt)
	binder.ReadOnly[BookPatch, time.Time](d, FieldUpdatedAt)
	return d
}()

// PartialDescriptor implements binder.Partial.
func (*BookPatch) PartialDescriptor() binder.Schema {
	return bookPatchFields
}

// Apply copies the touched fields onto b and reports whether any was applied.
// The id is never copied.
func (p *BookPatch) Apply(b *Book) bool {
	applied := false
	if p.IsSet(FieldTitle) {
		b.Title = p.Title
		applied = true
	}
	if p.IsSet(FieldAuthor) {
		b.Author = p.Author
		applied = true
	}
	if p.IsSet(FieldYear) {
		b.Year = p.Year
		applied = true
	}
	if p.IsSet(FieldTags) {
		b.Tags = slices.Clone(p.Tags)
		applied = true
	}
	if p.IsSet(FieldAvailable) {
		b.Available = p.Available
		applied = true
	}
	return applied
}

// CreateRequest is the body of POST /books.
type CreateRequest struct {
	Title     string   `json:"title" path:"-" query:"-"`
	Author    string   `json:"author" path:"-" query:"-"`
	Year      int      `json:"year" path:"-" query:"-"`
	Tags      []string `json:"tags" path:"-" query:"-"`
	Available bool     `json:"available" path:"-" query:"-"`
}

func validate(b Book) error {
	switch {
	case strings.TrimSpace(b.Title) == "":
		return invalid(FieldTitle, "must not be empty")
	case b.Year < 0:
		return invalid(FieldYear, "must not be negative")
	case slices.Contains(b.Tags, ""):
		return invalid(FieldTags, "must not contain empty tags")
	}
	return nil
}
