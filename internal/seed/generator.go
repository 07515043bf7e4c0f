// Package seed generates synthetic calculation records for development
// databases.
package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jonboulle/clockwork"

	"github.com/agroview/backend/internal/domain"
	"github.com/agroview/backend/pkg/utils"
)

// Window is how far back generated timestamps reach.
const Window = 90 * 24 * time.Hour

var (
	produtosSoja  = []string{"Herbicida", "Fungicida", "Inseticida", "Adjuvante"}
	produtosMilho = []string{"Herbicida", "Fungicida", "Inseticida", "Adubo foliar"}
	produtosCafe  = []string{"Fosfato", "Boro", "Quelato de Zn", "Potássio", "Cálcio"}
)

// Generator builds random records. It is not safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
	clock clockwork.Clock
}

// NewGenerator creates a generator. A non-zero seed gives a reproducible
// stream; zero seeds from crypto/rand.
func NewGenerator(seed uint64, clock clockwork.Clock) *Generator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Generator{
		faker: gofakeit.New(seed),
		clock: clock,
	}
}

// Generate returns n records.
func (g *Generator) Generate(n int) []domain.CalculationRecord {
	recs := make([]domain.CalculationRecord, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, g.Record())
	}
	return recs
}

// Record builds one record: about 40% soja, 35% milho and 25% cafe.
func (g *Generator) Record() domain.CalculationRecord {
	r := g.faker.Float64()
	switch {
	case r < 0.40:
		return g.rowCrop(domain.CultureSoja, produtosSoja)
	case r < 0.75:
		return g.rowCrop(domain.CultureMilho, produtosMilho)
	default:
		return g.coffee()
	}
}

func (g *Generator) rowCrop(culture domain.Culture, produtos []string) domain.CalculationRecord {
	d := domain.RowCropDosage{
		AreaHa:     g.between(1, 120, 1),
		DoseLPerHa: g.between(0.5, 5.0, 2),
	}
	return domain.CalculationRecord{
		Culture:   culture,
		Produto:   fmt.Sprintf("%s %s", g.faker.RandomString(produtos), g.faker.AdjectiveDescriptive()),
		Dosage:    d,
		Litros:    utils.RoundTo(d.Liters(), 2),
		Details:   d.Details(),
		CreatedAt: g.createdAt(),
	}
}

func (g *Generator) coffee() domain.CalculationRecord {
	d := domain.CoffeeDosage{
		Ruas:            int(g.between(50, 220, 0)),
		ComprimentoRuaM: g.between(40, 200, 0),
		DoseMlPerM:      g.between(100, 1200, 0),
	}
	return domain.CalculationRecord{
		Culture:   domain.CultureCafe,
		Produto:   fmt.Sprintf("%s %s", g.faker.RandomString(produtosCafe), g.faker.ProductMaterial()),
		Dosage:    d,
		Litros:    utils.RoundTo(d.Liters(), 2),
		Details:   d.Details(),
		CreatedAt: g.createdAt(),
	}
}

// between returns a uniform value in [lo, hi] rounded to decimals.
func (g *Generator) between(lo, hi float64, decimals int) float64 {
	return utils.RoundTo(g.faker.Float64Range(lo, hi), decimals)
}

func (g *Generator) createdAt() time.Time {
	back := time.Duration(g.faker.Float64Range(0, float64(Window)))
	return g.clock.Now().Add(-back).UTC()
}
