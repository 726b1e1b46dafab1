package tree

// KindEnum classifies a tree node as produced by the XML codec: a mapping
// (map[string]any), a sequence ([]any), a scalar leaf, or an absent value.
type KindEnum int

const (
	KindAbsent KindEnum = iota
	KindMapping
	KindSequence
	KindScalar

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// String returns a human-readable kind name.
func (k KindEnum) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Dispatch classifies a node so traversal switches can cover every shape a
// decoded document may contain. Anything that is not a mapping, a sequence,
// or nil is a scalar leaf.
func Dispatch(v any) KindEnum {
	switch v.(type) {
	case nil:
		return KindAbsent
	case map[string]any:
		return KindMapping
	case []any:
		return KindSequence
	default:
		return KindScalar
	}
}
