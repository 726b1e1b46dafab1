// Package quake holds QuakeML event helpers that operate on decoded trees:
// resource identifiers, time formatting, preferred-magnitude selection, and
// ANSS catalog attributes.
package quake

import "fmt"

// ResourceURIGenerator builds QuakeML resource identifiers of the form
// schema:authority/resource-id#local-id.
type ResourceURIGenerator struct {
	Schema      string
	AuthorityID string
}

// NewResourceURIGenerator returns a generator producing smi:local/... URIs.
func NewResourceURIGenerator() *ResourceURIGenerator {
	return &ResourceURIGenerator{
		Schema:      "smi",
		AuthorityID: "local",
	}
}

// URI builds a resource identifier; an optional local identifier is appended
// as a fragment.
func (g *ResourceURIGenerator) URI(resourceID string, localID ...string) string {
	uri := fmt.Sprintf("%s:%s/%s", g.Schema, g.AuthorityID, resourceID)
	if len(localID) > 0 && localID[0] != "" {
		uri += "#" + localID[0]
	}
	return uri
}
