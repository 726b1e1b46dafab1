// Package typing assigns primitive types to the leaves of a decoded QuakeML
// tree, either precisely from a flattened schema or heuristically from the
// value text.
package typing

import (
	"qmlutil/diagnostic"
	"qmlutil/primitive"
	"qmlutil/schema"
	"qmlutil/tree"
)

// Extractor derives per-leaf primitive types for one document and coerces
// the leaf values in place. It holds per-conversion state: construct a fresh
// Extractor for every document and do not share one across goroutines.
type Extractor struct {
	index *schema.Index
	kinds map[string]primitive.KindEnum
	diags diagnostic.Diagnostics
}

// NewExtractor returns an extractor resolving against the given schema index.
func NewExtractor(ix *schema.Index) *Extractor {
	return &Extractor{
		index: ix,
		kinds: make(map[string]primitive.KindEnum),
	}
}

// ExtractTyped builds the type map for the tree and coerces it in place.
// Collected issues are available from Diagnostics afterwards.
func (e *Extractor) ExtractTyped(root map[string]any) map[string]any {
	e.GenerateTypes(root)
	e.Coerce(root)
	return root
}

// Diagnostics returns the issues collected so far. Coercion failures and
// unresolvable schema paths are warnings, never fatal: the affected leaves
// simply stay text.
func (e *Extractor) Diagnostics() *diagnostic.Diagnostics {
	return &e.diags
}

// Kind returns the resolved primitive kind recorded for a real path key.
func (e *Extractor) Kind(realPath string) (primitive.KindEnum, bool) {
	k, ok := e.kinds[realPath]
	return k, ok
}

// GenerateTypes walks the data tree and records a primitive kind for every
// leaf whose schema path resolves to a mapped XML Schema token. Two paths are
// maintained in lock-step: the schema path (attribute markers stripped) keys
// the resolver, the real path (markers kept) keys the recorded kind.
// Sequence elements extend neither path; repeated fields share one type.
func (e *Extractor) GenerateTypes(root map[string]any) {
	e.generate(root, "", "")
}

func (e *Extractor) generate(node any, schemaPath, realPath string) {
	switch tree.Dispatch(node) {
	case tree.KindMapping:
		for k, child := range node.(map[string]any) {
			e.generate(child,
				tree.Join(schemaPath, tree.SchemaSegment(k)),
				tree.Join(realPath, k))
		}
	case tree.KindSequence:
		for _, el := range node.([]any) {
			e.generate(el, schemaPath, realPath)
		}
	case tree.KindScalar:
		token, err := e.index.Resolve(schemaPath)
		if err != nil {
			e.diags.AddWarning(diagnostic.CodeCyclicType, err.Error(), schemaPath)
			return
		}
		if kind := primitive.FromXSD(token); kind != 0 {
			e.kinds[realPath] = kind
		}
	}
}

// Coerce converts every leaf with a recorded kind in place and returns the
// same tree. A leaf that fails to parse keeps its original value and the
// failure is recorded as a warning.
func (e *Extractor) Coerce(root map[string]any) map[string]any {
	e.coerce(root, "")
	return root
}

func (e *Extractor) coerce(node map[string]any, realPath string) {
	for k, v := range node {
		rpath := tree.Join(realPath, k)
		switch tree.Dispatch(v) {
		case tree.KindMapping:
			e.coerce(v.(map[string]any), rpath)
		case tree.KindSequence:
			seq := v.([]any)
			for i, el := range seq {
				switch tree.Dispatch(el) {
				case tree.KindMapping:
					e.coerce(el.(map[string]any), rpath)
				case tree.KindScalar:
					seq[i] = e.convertLeaf(el, rpath)
				}
			}
		case tree.KindScalar:
			node[k] = e.convertLeaf(v, rpath)
		}
	}
}

func (e *Extractor) convertLeaf(v any, rpath string) any {
	kind, ok := e.kinds[rpath]
	if !ok {
		return v
	}
	out, err := primitive.Convert(v, kind)
	if err != nil {
		e.diags.AddWarning(diagnostic.CodeCoercionFailed, err.Error(), rpath)
		return v
	}
	return out
}
