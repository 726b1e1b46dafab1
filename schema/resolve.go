package schema

import (
	"errors"
	"fmt"
	"strings"

	"qmlutil/tree"
)

// ErrCyclicReference is returned when following type references revisits a
// key, which only happens on a malformed schema.
var ErrCyclicReference = errors.New("cyclic type reference")

// Resolve follows type declarations from a path key down to a final token,
// chasing namespaced references through the index until a token that is not
// a reference is reached. A key with no resolvable declaration yields the
// empty token and no error: incomplete schemas are expected.
func (ix *Index) Resolve(key string) (string, error) {
	return ix.resolve(key, map[string]struct{}{})
}

func (ix *Index) resolve(key string, seen map[string]struct{}) (string, error) {
	if _, dup := seen[key]; dup {
		return "", fmt.Errorf("resolve %q: %w", key, ErrCyclicReference)
	}
	seen[key] = struct{}{}

	parts := tree.Split(key)
	if len(parts) <= 2 {
		if token, ok := ix.types[key]; ok {
			if ref, isRef := ix.reference(token); isRef {
				return ix.resolve(ref, seen)
			}
			return token, nil
		}
		// the leading segment may itself name a declared type: rewrite
		// and retry on the aliased key
		if token, ok := ix.types[parts[0]]; ok {
			parts[0] = ix.stripNamespace(token)
			return ix.resolve(strings.Join(parts, tree.Delim), seen)
		}
		return "", nil
	}

	// deeper keys: rewrite the first segment, then the two-segment prefix
	if token, ok := ix.types[parts[0]]; ok {
		parts[0] = ix.stripNamespace(token)
		return ix.resolve(strings.Join(parts, tree.Delim), seen)
	}
	prefix := strings.Join(parts[:2], tree.Delim)
	if token, ok := ix.types[prefix]; ok {
		rewritten := append([]string{ix.stripNamespace(token)}, parts[2:]...)
		return ix.resolve(strings.Join(rewritten, tree.Delim), seen)
	}
	return "", nil
}

// reference reports whether a token is a namespaced reference to another
// named type and returns the bare name if so.
func (ix *Index) reference(token string) (string, bool) {
	marker := ix.ns + ":"
	if strings.HasPrefix(token, marker) {
		return strings.TrimPrefix(token, marker), true
	}
	return token, false
}

func (ix *Index) stripNamespace(token string) string {
	name, _ := ix.reference(token)
	return name
}
