// Package codec converts between QuakeML trees and XML text. The XML work
// itself is mxj's; this package wires pre- and postprocessor hooks into the
// walk the way xmltodict does: preprocessors run once per (key, value) pair
// before repeated elements fan out, postprocessors run per leaf as values
// come off the parser.
package codec

import (
	"fmt"

	mxj "github.com/clbanning/mxj/v2"

	"qmlutil/tree"
)

func init() {
	mxj.SetAttrPrefix(tree.AttrPrefix)
}

// Preprocessor transforms one (key, value) pair during serialization.
// Returning keep=false suppresses the node and its subtree entirely.
// Preprocessors may mutate mapping values in place.
type Preprocessor func(key string, value any) (key2 string, value2 any, keep bool)

// Postprocessor transforms one decoded leaf. path holds the ancestor keys of
// the mapping containing the leaf.
type Postprocessor func(path []string, key string, value any) (string, any)

// Serialize emits a tree as XML, running the configured preprocessors over
// every mapping entry first. The tree must have a single root key.
func Serialize(root map[string]any, opts ...Option) ([]byte, error) {
	o := buildOptions(opts)

	prepared := root
	if len(o.pre) > 0 {
		prepared = prepareMapping(root, o.pre)
	}

	m := mxj.Map(prepared)
	if o.indented {
		out, err := m.XmlIndent(o.prefix, o.indent)
		if err != nil {
			return nil, fmt.Errorf("encode xml: %w", err)
		}
		return out, nil
	}
	out, err := m.Xml()
	if err != nil {
		return nil, fmt.Errorf("encode xml: %w", err)
	}
	return out, nil
}

// Deserialize parses XML text into a tree, running the configured
// postprocessors over every leaf. Without postprocessors all leaves are
// strings, as the parser produced them.
func Deserialize(text []byte, opts ...Option) (map[string]any, error) {
	o := buildOptions(opts)

	m, err := mxj.NewMapXml(text)
	if err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}
	root := map[string]any(m)
	if len(o.post) > 0 {
		postprocessMapping(root, nil, o.post)
	}
	return root, nil
}

func prepareMapping(m map[string]any, chain []Preprocessor) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		key, val, keep := k, v, true
		for _, pre := range chain {
			key, val, keep = pre(key, val)
			if !keep {
				break
			}
		}
		if !keep {
			continue
		}
		out[key] = prepareValue(val, chain)
	}
	return out
}

func prepareValue(v any, chain []Preprocessor) any {
	switch tree.Dispatch(v) {
	case tree.KindMapping:
		return prepareMapping(v.(map[string]any), chain)
	case tree.KindSequence:
		seq := v.([]any)
		out := make([]any, 0, len(seq))
		for _, el := range seq {
			// repeated elements recurse without re-running the chain on
			// their shared key
			if m, ok := el.(map[string]any); ok {
				out = append(out, prepareMapping(m, chain))
				continue
			}
			out = append(out, el)
		}
		return out
	default:
		return v
	}
}

func postprocessMapping(m map[string]any, path []string, chain []Postprocessor) {
	// renamed keys are inserted after the walk: adding to a map during
	// range may revisit the new key and run the chain twice
	var renamed map[string]any
	for k, v := range m {
		switch tree.Dispatch(v) {
		case tree.KindMapping:
			postprocessMapping(v.(map[string]any), childPath(path, k), chain)
		case tree.KindSequence:
			seq := v.([]any)
			for i, el := range seq {
				switch tree.Dispatch(el) {
				case tree.KindMapping:
					postprocessMapping(el.(map[string]any), childPath(path, k), chain)
				default:
					_, seq[i] = applyPost(chain, path, k, el)
				}
			}
		default:
			key, val := applyPost(chain, path, k, v)
			if key != k {
				delete(m, k)
				if renamed == nil {
					renamed = make(map[string]any)
				}
				renamed[key] = val
				continue
			}
			m[k] = val
		}
	}
	for k, v := range renamed {
		m[k] = v
	}
}

func applyPost(chain []Postprocessor, path []string, key string, v any) (string, any) {
	for _, post := range chain {
		key, v = post(path, key, v)
	}
	return key, v
}

func childPath(path []string, key string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, key)
}
