// Package diagnostic collects non-fatal issues raised while typing and
// normalizing a document.
//
// Key capabilities:
//   - Coercion failure warnings with the offending path and value
//   - Schema resolution warnings (cyclic type references)
//   - A combined error view for callers that want to fail hard
package diagnostic
