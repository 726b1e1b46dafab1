package primitive

// KindEnum is the closed vocabulary of primitive leaf types a QuakeML
// document can carry after typing: text, integer, real, and boolean.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindText
	KindInteger
	KindReal
	KindBoolean

	// KindTotal is a constant that represents the total number of kinds
	// defined; the skipped zero value does not count
	KindTotal = int(iota) - 1
)

// String returns a human-readable kind name.
func (k KindEnum) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindBoolean:
		return "boolean"
	default:
		return "invalid"
	}
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInteger, KindReal:
		return true
	}
}

// xsdKinds maps XML Schema type tokens used by the QuakeML schema to the
// primitive vocabulary. Date-times and URIs stay textual.
var xsdKinds = map[string]KindEnum{
	"xs:string":   KindText,
	"xs:integer":  KindInteger,
	"xs:double":   KindReal,
	"xs:boolean":  KindBoolean,
	"xs:dateTime": KindText,
	"xs:anyURI":   KindText,
}

// FromXSD returns the primitive kind for an XML Schema type token, or the
// zero KindEnum when the token is not in the mapped subset.
func FromXSD(token string) KindEnum {
	return xsdKinds[token]
}
