package records

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agroview/backend/internal/domain"
)

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, domain.Totals{}, Aggregate(nil))
}

func TestAggregate_CoffeeHasNoArea(t *testing.T) {
	recs := []domain.CalculationRecord{
		{Culture: domain.CultureCafe, Dosage: domain.CoffeeDosage{Ruas: 120, ComprimentoRuaM: 80, DoseMlPerM: 500}, Litros: 4800},
		{Culture: domain.CultureSoja, Dosage: domain.RowCropDosage{AreaHa: 12, DoseLPerHa: 2.5}, Litros: 30},
	}

	got := Aggregate(recs)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 12.0, got.TotalAreaHa)
	assert.Equal(t, 4830.0, got.TotalLiters)
}

func TestAggregate_MissingDosage(t *testing.T) {
	got := Aggregate([]domain.CalculationRecord{{Culture: domain.CultureMilho}})
	assert.Equal(t, domain.Totals{Count: 1}, got)
}
