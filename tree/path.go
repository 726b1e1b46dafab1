package tree

import "strings"

// Path key conventions shared by every component. A path key is a Delim-joined
// sequence of segment names; segment names must never contain Delim.
//
// Two flavors exist: schema keys are built from structural names with the
// attribute marker stripped, real keys from the literal keys of a data tree
// with the marker preserved.
const (
	// Delim separates segments in a path key.
	Delim = "|"
	// AttrPrefix marks mapping keys that decode XML attributes.
	AttrPrefix = "@"
	// TextKey is the reserved mapping key for inline element text.
	TextKey = "#text"
)

// Join appends a segment to a path key, trimming stray delimiters so the
// empty prefix does not produce a leading separator.
func Join(prefix, segment string) string {
	return strings.Trim(prefix+Delim+segment, Delim)
}

// IsAttr reports whether a mapping key denotes an XML attribute.
func IsAttr(key string) bool {
	return strings.HasPrefix(key, AttrPrefix)
}

// SchemaSegment strips the attribute marker from a key, yielding the segment
// name used in schema keys.
func SchemaSegment(key string) string {
	return strings.TrimPrefix(key, AttrPrefix)
}

// Split breaks a path key into its segments.
func Split(key string) []string {
	return strings.Split(key, Delim)
}
