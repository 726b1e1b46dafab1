// Package validate checks QuakeML documents against the QuakeML XSD. It is
// separate from the typing pipeline: typing tolerates schema-less and
// partially-typed documents, validation is the strict gate callers opt into.
package validate

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/jacoelho/xsd"
)

// Validator wraps a compiled schema with convenience methods.
type Validator struct {
	schema *xsd.Schema
}

// New loads and compiles a schema from the given filesystem and location.
func New(fsys fs.FS, location string) (*Validator, error) {
	s, err := xsd.Load(fsys, location)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", location, err)
	}
	return &Validator{schema: s}, nil
}

// NewFromFile loads and compiles a schema from a file path.
func NewFromFile(path string) (*Validator, error) {
	s, err := xsd.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", path, err)
	}
	return &Validator{schema: s}, nil
}

// Validate validates a document against the schema.
func (v *Validator) Validate(r io.Reader) error {
	return v.schema.Validate(r)
}

// ValidateFile validates an XML file against the schema.
func (v *Validator) ValidateFile(path string) error {
	return v.schema.ValidateFile(path)
}
