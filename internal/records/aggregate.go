package records

import "github.com/agroview/backend/internal/domain"

// Aggregate sums treated area and liters over the records given. Coffee
// records contribute no area.
func Aggregate(recs []domain.CalculationRecord) domain.Totals {
	var t domain.Totals
	for _, r := range recs {
		t.Count++
		t.TotalAreaHa += r.AreaHa()
		t.TotalLiters += r.Litros
	}
	return t
}
