package domain

import (
	"fmt"
	"strings"
)

// Culture is a supported crop type. It selects the dosage formula.
type Culture string

const (
	CultureSoja  Culture = "soja"
	CultureMilho Culture = "milho"
	CultureCafe  Culture = "cafe"
)

// CultureAll is the filter sentinel meaning "any culture".
const CultureAll = "all"

// Cultures lists the supported cultures in display order.
var Cultures = []Culture{CultureSoja, CultureMilho, CultureCafe}

// ParseCulture maps user or stored input onto a Culture.
// Matching is case-insensitive and accepts the accented "café".
func ParseCulture(s string) (Culture, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "soja":
		return CultureSoja, nil
	case "milho":
		return CultureMilho, nil
	case "cafe", "café":
		return CultureCafe, nil
	}
	return "", fmt.Errorf("domain: unknown culture %q", s)
}

// IsRowCrop reports whether the culture uses the area × dose-per-hectare formula.
func (c Culture) IsRowCrop() bool {
	return c == CultureSoja || c == CultureMilho
}

// Label returns the human-readable name.
func (c Culture) Label() string {
	switch c {
	case CultureSoja:
		return "Soja"
	case CultureMilho:
		return "Milho"
	case CultureCafe:
		return "Café"
	default:
		return string(c)
	}
}
