package codec

type options struct {
	pre      []Preprocessor
	post     []Postprocessor
	indented bool
	prefix   string
	indent   string
}

// Option configures one Serialize or Deserialize call.
type Option func(*options)

// WithPreprocessor appends a serialization preprocessor; processors run in
// the order they were added.
func WithPreprocessor(p Preprocessor) Option {
	return func(o *options) {
		o.pre = append(o.pre, p)
	}
}

// WithPostprocessor appends a deserialization postprocessor; processors run
// in the order they were added.
func WithPostprocessor(p Postprocessor) Option {
	return func(o *options) {
		o.post = append(o.post, p)
	}
}

// WithIndent emits indented XML.
func WithIndent(prefix, indent string) Option {
	return func(o *options) {
		o.indented = true
		o.prefix = prefix
		o.indent = indent
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
