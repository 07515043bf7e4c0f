package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agroview/backend/internal/domain"
)

var now = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

func sampleRecords() []domain.CalculationRecord {
	return []domain.CalculationRecord{
		{ID: "1", Culture: domain.CultureSoja, Produto: "Herbicida Premium", CreatedAt: now.AddDate(0, 0, -1)},
		{ID: "2", Culture: domain.CultureSoja, Produto: "Fungicida", CreatedAt: now.AddDate(0, 0, -40)},
		{ID: "3", Culture: domain.CultureMilho, Produto: "Herbicida", CreatedAt: now.AddDate(0, 0, -3)},
		{ID: "4", Culture: domain.CultureCafe, Produto: "Fosfato", CreatedAt: now.AddDate(0, 0, -100)},
		{ID: "5", Culture: domain.CultureCafe, Produto: "Boro"},
	}
}

func ids(recs []domain.CalculationRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func TestFilter_NoCriteria(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(Filter(sampleRecords(), Criteria{})))
}

func TestFilter_Culture(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, ids(Filter(sampleRecords(), Criteria{Culture: "SOJA"})))
	assert.Equal(t, []string{"4", "5"}, ids(Filter(sampleRecords(), Criteria{Culture: "Café"})))
	assert.Empty(t, Filter(sampleRecords(), Criteria{Culture: "trigo"}))
}

func TestFilter_IsConjunctive(t *testing.T) {
	got := Filter(sampleRecords(), Criteria{Culture: "soja", Product: "herb"})
	assert.Equal(t, []string{"1"}, ids(got), "soja fungicida fails the product test")

	got = Filter(sampleRecords(), Criteria{Culture: domain.CultureAll, Product: "herb"})
	assert.Equal(t, []string{"1", "3"}, ids(got), "all sentinel drops only the culture predicate")
}

func TestFilter_Cutoff(t *testing.T) {
	got := Filter(sampleRecords(), Criteria{Since: CutoffForDays(now, 30)})
	assert.Equal(t, []string{"1", "3"}, ids(got), "record without timestamp is excluded")

	got = Filter(sampleRecords(), Criteria{Since: CutoffForDays(now, 0)})
	assert.Len(t, got, 5)
}

func TestFilter_CutoffIsInclusive(t *testing.T) {
	recs := []domain.CalculationRecord{{ID: "edge", Culture: domain.CultureSoja, CreatedAt: now.AddDate(0, 0, -7)}}
	assert.Len(t, Filter(recs, Criteria{Since: CutoffForDays(now, 7)}), 1)
}

func TestFilter_BlankProductIgnored(t *testing.T) {
	assert.Len(t, Filter(sampleRecords(), Criteria{Product: "   "}), 5)
}
