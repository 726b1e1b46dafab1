package quake

import (
	"fmt"
	"strings"
)

// ANSSParams builds the ANSS catalog attributes for an event. Event IDs are
// zero-padded to eight digits and agency codes lower-cased, per the ANSS
// catalog conventions.
func ANSSParams(agencyCode string, evid int) map[string]any {
	agency := strings.ToLower(agencyCode)
	eventID := fmt.Sprintf("%08d", evid)
	return map[string]any{
		"@catalog:eventid":     eventID,
		"@catalog:dataid":      agency + eventID,
		"@catalog:datasource":  agency,
		"@catalog:eventsource": agency,
	}
}
