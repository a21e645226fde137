package models

import (
	"strings"
	"time"
)

// DecodeTimestamps walks an open key-value record loaded from storage and
// opportunistically converts string values that look like timestamps (contain
// the 'T' date/time separator) into time.Time. Values that fail to parse are
// kept as their raw string; this leniency is deliberate.
func DecodeTimestamps(doc map[string]interface{}) map[string]interface{} {
	for key, value := range doc {
		s, ok := value.(string)
		if !ok || !strings.Contains(s, "T") {
			continue
		}
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			doc[key] = ts
		}
	}
	return doc
}
