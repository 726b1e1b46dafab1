package typing

import (
	"regexp"

	"qmlutil/primitive"
	"qmlutil/tree"
)

// patterns is the ordered table driving heuristic typing: first match wins,
// so the integer pattern must run before the real pattern.
var patterns = []struct {
	re   *regexp.Regexp
	kind primitive.KindEnum
}{
	{regexp.MustCompile(`^[-+]?\d+$`), primitive.KindInteger},
	{regexp.MustCompile(`^[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?$`), primitive.KindReal},
}

// SimpleTyping is a deserialization postprocessor that guesses primitive
// types from value text, wild-west YAML style: if it looks like a number, it
// is one. Attribute values, inline text content, and keys in the skip set
// always stay text; XML quotes attributes, so no type can be inferred there.
type SimpleTyping struct {
	skip map[string]struct{}
}

// NewSimpleTyping returns a heuristic typer that leaves the given keys
// untouched in addition to attributes and text content.
func NewSimpleTyping(skipKeys ...string) *SimpleTyping {
	skip := make(map[string]struct{}, len(skipKeys))
	for _, k := range skipKeys {
		skip[k] = struct{}{}
	}
	return &SimpleTyping{skip: skip}
}

// Process types a single leaf. A pattern whose conversion fails counts as a
// non-match and the next pattern is tried; with no match the text passes
// through unchanged.
func (s *SimpleTyping) Process(path []string, key string, v any) (string, any) {
	if tree.IsAttr(key) || key == tree.TextKey {
		return key, v
	}
	if _, skip := s.skip[key]; skip {
		return key, v
	}
	text, ok := v.(string)
	if !ok {
		return key, v
	}

	for _, p := range patterns {
		if !p.re.MatchString(text) {
			continue
		}
		converted, err := primitive.Convert(text, p.kind)
		if err != nil {
			continue
		}
		return key, converted
	}
	return key, v
}
