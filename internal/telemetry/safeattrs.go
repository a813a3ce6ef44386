package telemetry

import (
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// maxLabelLen bounds string labels; rule ids and template names fit easily.
const maxLabelLen = 128

// leadKeys never become metric or span labels: they carry lead data.
var leadKeys = []string{"name", "trait", "handle", "message", "preview", "email", "phone", "url"}

func isLeadKey(k string) bool {
	k = strings.ToLower(k)
	for _, bad := range leadKeys {
		if strings.Contains(k, bad) {
			return true
		}
	}
	return false
}

// SafeAttributes turns values into OTEL attributes sorted by key. Keys that
// may carry lead data, strings over maxLabelLen and unsupported types are
// dropped.
func SafeAttributes(values map[string]any) []attribute.KeyValue {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		if !isLeadKey(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	attrs := make([]attribute.KeyValue, 0, len(keys))
	for _, k := range keys {
		switch v := values[k].(type) {
		case string:
			if len(v) <= maxLabelLen {
				attrs = append(attrs, attribute.String(k, v))
			}
		case fmt.Stringer:
			if s := v.String(); len(s) <= maxLabelLen {
				attrs = append(attrs, attribute.String(k, s))
			}
		case bool:
			attrs = append(attrs, attribute.Bool(k, v))
		case int:
			attrs = append(attrs, attribute.Int(k, v))
		case int64:
			attrs = append(attrs, attribute.Int64(k, v))
		case float64:
			attrs = append(attrs, attribute.Float64(k, v))
		}
	}
	return attrs
}
