// Package records shapes stored calculation rows for display: normalization
// into the tagged dosage form, filtering, aggregation and page accumulation.
package records

import (
	"strings"
	"time"

	"github.com/agroview/backend/internal/domain"
)

// Normalize maps a stored row into a CalculationRecord. A field group that is
// incomplete or does not match the culture leaves Dosage nil.
func Normalize(raw domain.RawRecord) domain.CalculationRecord {
	rec := domain.CalculationRecord{
		ID:        raw.ID,
		Produto:   raw.Produto,
		Details:   raw.Details,
		CreatedAt: parseTimestamp(raw.CreatedAt),
	}
	if raw.Litros != nil {
		rec.Litros = *raw.Litros
	}

	culture, err := domain.ParseCulture(raw.Culture)
	if err != nil {
		rec.Culture = domain.Culture(strings.ToLower(strings.TrimSpace(raw.Culture)))
		return rec
	}
	rec.Culture = culture

	switch {
	case culture.IsRowCrop() && raw.AreaHa != nil && raw.DoseLPerHa != nil:
		rec.Dosage = domain.RowCropDosage{AreaHa: *raw.AreaHa, DoseLPerHa: *raw.DoseLPerHa}
	case culture == domain.CultureCafe && raw.Ruas != nil && raw.ComprimentoRuaM != nil && raw.DoseMlPerM != nil:
		rec.Dosage = domain.CoffeeDosage{Ruas: *raw.Ruas, ComprimentoRuaM: *raw.ComprimentoRuaM, DoseMlPerM: *raw.DoseMlPerM}
	}
	return rec
}

// NormalizeAll normalizes a page of rows.
func NormalizeAll(raws []domain.RawRecord) []domain.CalculationRecord {
	out := make([]domain.CalculationRecord, 0, len(raws))
	for _, r := range raws {
		out = append(out, Normalize(r))
	}
	return out
}

// parseTimestamp accepts the timestamp shapes stores hand back. Anything else
// yields the zero time, which filters treat as "unknown".
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return ts
		}
	case int64:
		return time.UnixMilli(t).UTC()
	case float64:
		return time.UnixMilli(int64(t)).UTC()
	}
	return time.Time{}
}
