package quake

// FindPreferredMag returns the publicID of the preferred magnitude given
// magnitude mappings and an ordered list of preferred types. The first type
// with any match decides; within a type, the last matching entry wins, so
// later (more recent) magnitudes shadow earlier ones.
func FindPreferredMag(mags []map[string]any, types []string) string {
	for _, typ := range types {
		var pid string
		for _, m := range mags {
			if m["type"] != typ {
				continue
			}
			if id, ok := m["@publicID"].(string); ok {
				pid = id
			}
		}
		if pid != "" {
			return pid
		}
	}
	return ""
}

// GetPreferred returns the item whose @publicID matches id, or nil.
func GetPreferred(id string, items []map[string]any) map[string]any {
	for _, item := range items {
		if item["@publicID"] == id {
			return item
		}
	}
	return nil
}
