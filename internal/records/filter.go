package records

import (
	"strings"
	"time"

	"github.com/agroview/backend/internal/domain"
)

// Criteria narrows a loaded set. Zero values disable each predicate.
type Criteria struct {
	Culture string    // exact culture, "" or "all" for any
	Product string    // case-insensitive substring of Produto
	Since   time.Time // keep records created at or after Since
}

// Filter returns the records matching every active predicate.
func Filter(recs []domain.CalculationRecord, c Criteria) []domain.CalculationRecord {
	culture := strings.ToLower(strings.TrimSpace(c.Culture))
	if culture == domain.CultureAll {
		culture = ""
	}
	if parsed, err := domain.ParseCulture(culture); err == nil {
		culture = string(parsed)
	}
	product := strings.ToLower(strings.TrimSpace(c.Product))

	out := make([]domain.CalculationRecord, 0, len(recs))
	for _, r := range recs {
		if culture != "" && strings.ToLower(string(r.Culture)) != culture {
			continue
		}
		if product != "" && !strings.Contains(strings.ToLower(r.Produto), product) {
			continue
		}
		if !c.Since.IsZero() && (r.CreatedAt.IsZero() || r.CreatedAt.Before(c.Since)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// CutoffForDays returns the recency cutoff for a trailing window; days <= 0
// means no cutoff.
func CutoffForDays(now time.Time, days int) time.Time {
	if days <= 0 {
		return time.Time{}
	}
	return now.AddDate(0, 0, -days)
}
