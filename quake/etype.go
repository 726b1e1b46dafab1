package quake

import "strings"

// ExtractEType pulls the CSS event type from an origin: it is carried as the
// text of the comment whose @id ends in "#etype".
func ExtractEType(origin map[string]any) string {
	switch c := origin["comment"].(type) {
	case []any:
		for _, el := range c {
			if m, ok := el.(map[string]any); ok {
				if etype := commentEType(m); etype != "" {
					return etype
				}
			}
		}
	case map[string]any:
		return commentEType(c)
	}
	return ""
}

func commentEType(comment map[string]any) string {
	id, _ := comment["@id"].(string)
	if !strings.HasSuffix(id, "#etype") {
		return ""
	}
	text, _ := comment["text"].(string)
	return text
}
