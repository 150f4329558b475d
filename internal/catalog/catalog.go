// Package catalog holds the fixed catalogue of canonical financial statement fields.
package catalog

import (
	"github.com/Veraticus/chart-mapper/internal/model"
)

// Version identifies the revision of the built-in catalogue.
const Version = "2024.2"

// Catalog is an immutable set of canonical fields.
type Catalog struct {
	byID     map[string]model.CanonicalField
	version  string
	fields   []model.CanonicalField
	sections []model.Section
}

// New builds a catalogue from an ordered field list. Later duplicates are ignored.
func New(version string, fields []model.CanonicalField) *Catalog {
	c := &Catalog{
		version: version,
		byID:    make(map[string]model.CanonicalField, len(fields)),
		fields:  make([]model.CanonicalField, 0, len(fields)),
	}

	seenSection := make(map[model.Section]bool)
	for _, f := range fields {
		if _, dup := c.byID[f.ID]; dup || f.ID == "" {
			continue
		}
		c.byID[f.ID] = f
		c.fields = append(c.fields, f)
		if !seenSection[f.Section] {
			seenSection[f.Section] = true
			c.sections = append(c.sections, f.Section)
		}
	}

	return c
}

var defaultCatalog = New(Version, defaultFields)

// Default returns the built-in catalogue.
func Default() *Catalog {
	return defaultCatalog
}

// Version returns the catalogue revision.
func (c *Catalog) Version() string {
	return c.version
}

// Lookup finds a field by id.
func (c *Catalog) Lookup(id string) (model.CanonicalField, bool) {
	f, ok := c.byID[id]
	return f, ok
}

// Has reports whether id is a known field.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Fields returns every field in declared order.
func (c *Catalog) Fields() []model.CanonicalField {
	out := make([]model.CanonicalField, len(c.fields))
	copy(out, c.fields)
	return out
}

// Sections returns the sections in the order they first appear.
func (c *Catalog) Sections() []model.Section {
	out := make([]model.Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// BySection returns the fields of one section in declared order.
func (c *Catalog) BySection(section model.Section) []model.CanonicalField {
	var out []model.CanonicalField
	for _, f := range c.fields {
		if f.Section == section {
			out = append(out, f)
		}
	}
	return out
}
