package quake

import (
	"fmt"
	"time"
)

// Namespaces of the QuakeML document envelope.
const (
	NamespaceQuakeML = "http://quakeml.org/xmlns/quakeml/1.2"
	NamespaceBED     = "http://quakeml.org/xmlns/bed/1.2"
	NamespaceCatalog = "http://anss.org/xmlns/catalog/0.1"
)

// Root builds the QuakeML document envelope around event parameters.
type Root struct {
	RID      *ResourceURIGenerator
	AgencyID string
}

// NewRoot returns a builder stamping smi:local URIs and the default agency.
func NewRoot() *Root {
	return &Root{
		RID:      NewResourceURIGenerator(),
		AgencyID: "XX",
	}
}

// allowedParameters are the element names eventParameters may carry;
// anything else is dropped.
var allowedParameters = map[string]struct{}{
	"event":            {},
	"origin":           {},
	"magnitude":        {},
	"stationMagnitude": {},
	"focalMechanism":   {},
	"reading":          {},
	"amplitude":        {},
	"pick":             {},
}

// EventParameters assembles the eventParameters mapping from the given
// element lists and stamps it with a catalog publicID and creationInfo.
func (r *Root) EventParameters(elements map[string]any) map[string]any {
	now := time.Now().UTC()
	ep := map[string]any{
		"@publicID": r.RID.URI(fmt.Sprintf("catalog/%d", now.UnixNano())),
		"creationInfo": map[string]any{
			"creationTime": RFC3339(now),
			"version":      fmt.Sprintf("%d", now.Unix()),
			"agencyID":     r.AgencyID,
		},
	}
	for name, v := range elements {
		if _, ok := allowedParameters[name]; ok {
			ep[name] = v
		}
	}
	return ep
}

// QML wraps eventParameters in the namespaced quakeml root element. An
// empty defaultNamespace selects the BED namespace.
func (r *Root) QML(eventParameters any, defaultNamespace string) map[string]any {
	if defaultNamespace == "" {
		defaultNamespace = NamespaceBED
	}
	return map[string]any{
		"q:quakeml": map[string]any{
			"@xmlns":          defaultNamespace,
			"@xmlns:q":        NamespaceQuakeML,
			"@xmlns:catalog":  NamespaceCatalog,
			"eventParameters": eventParameters,
		},
	}
}
