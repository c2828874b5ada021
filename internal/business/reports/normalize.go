package reports

import (
	"strconv"
	"strings"

	"github.com/estatedesk/crm-reports-api/pkg/model"
)

// statusText extracts the underlying string from a status-like field that is
// stored either as a plain string or as a `{name: ...}` reference map.
func statusText(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case map[string]any:
		if name, ok := s["name"].(string); ok {
			return name
		}
	}
	return ""
}

// resolveName is statusText with the grouping fallback: absent, nil or empty
// values land in the "unknown" bucket.
func resolveName(v any) string {
	if s := strings.TrimSpace(statusText(v)); s != "" {
		return s
	}
	return "unknown"
}

// normalizeStatus lowercases and trims the extracted status for comparisons.
func normalizeStatus(v any) string {
	return strings.ToLower(strings.TrimSpace(statusText(v)))
}

func normalizePropertyStatus(p model.Property) string {
	return strings.ToLower(strings.TrimSpace(p.PropertyStatus))
}

// priceOf coerces the polymorphic price field to a number. Legacy documents
// store prices as strings; anything absent or unparseable counts as zero.
func priceOf(v any) float64 {
	switch p := v.(type) {
	case float64:
		return p
	case int64:
		return float64(p)
	case int:
		return float64(p)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func leadName(l model.Lead) string {
	if l.FullName != "" {
		return l.FullName
	}
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

func userName(u model.User) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func propertyTypeName(p model.Property) string {
	if p.PropertyType != nil && p.PropertyType.TypeName != "" {
		return p.PropertyType.TypeName
	}
	return "unknown"
}
