// Package schema builds a flat path-keyed view of a QuakeML type-definition
// document and resolves declared types down to XML Schema primitives.
//
// The index is scoped to a single conversion: build it, resolve against it,
// throw it away. It is not safe for concurrent mutation.
package schema

import (
	"fmt"

	"qmlutil/tree"
)

// DefaultNamespace is the prefix used by the QuakeML BED schema for
// references to its own named types (e.g. "bed:TimeQuantity").
const DefaultNamespace = "bed"

// Index maps schema path keys to declared type tokens. A token is either an
// XML Schema primitive ("xs:double") or a namespaced reference to another
// named type that must be resolved further.
type Index struct {
	ns    string
	types map[string]string
}

// NewIndex returns an empty index using the default BED namespace.
func NewIndex() *Index {
	return NewIndexWithNamespace(DefaultNamespace)
}

// NewIndexWithNamespace returns an empty index whose type references are
// prefixed by the given namespace.
func NewIndexWithNamespace(ns string) *Index {
	return &Index{
		ns:    ns,
		types: make(map[string]string),
	}
}

// Set records a declared type token for a schema key. Flatten uses it
// internally; tests and callers with pre-flattened schemas may use it
// directly. Last writer wins.
func (ix *Index) Set(key, token string) {
	ix.types[key] = token
}

// Len returns the number of recorded declarations.
func (ix *Index) Len() int {
	return len(ix.types)
}

// Flatten walks a schema-description tree, extending the running path key at
// every named mapping node and recording declared types. The node is expected
// to be the decoded form of an XSD document: element names under "@name",
// declared types under "@type", inheritance bases under "@base".
//
// Attribute children never extend the path; they terminate that branch.
// Sequence nodes fan out element-wise without changing the prefix, and a
// mapping with no name or type passes its prefix through unchanged.
func (ix *Index) Flatten(node any, prefix string) {
	switch tree.Dispatch(node) {
	case tree.KindMapping:
		m := node.(map[string]any)
		name := prefix
		if v, ok := m[tree.AttrPrefix+"name"]; ok {
			name = tree.Join(prefix, scalarText(v))
			if t, ok := m[tree.AttrPrefix+"type"]; ok {
				ix.types[name] = scalarText(t)
			}
		}
		// base is checked after name/type and overwrites when both appear
		if b, ok := m[tree.AttrPrefix+"base"]; ok {
			ix.types[name] = scalarText(b)
		}
		for k, child := range m {
			if !tree.IsAttr(k) {
				ix.Flatten(child, name)
			}
		}
	case tree.KindSequence:
		for _, el := range node.([]any) {
			ix.Flatten(el, prefix)
		}
	}
}

func scalarText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
