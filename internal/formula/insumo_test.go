package formula

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroview/backend/internal/domain"
)

func TestComputeInsumo_RowCrop(t *testing.T) {
	res, ok := ComputeInsumo(domain.RowCropDosage{AreaHa: 12.0, DoseLPerHa: 2.5})
	require.True(t, ok)
	assert.Equal(t, 30.0, res.Litros)
	assert.Equal(t, "12 ha × 2.5 L/ha", res.Details)
}

func TestComputeInsumo_Coffee(t *testing.T) {
	res, ok := ComputeInsumo(domain.CoffeeDosage{Ruas: 120, ComprimentoRuaM: 80, DoseMlPerM: 500})
	require.True(t, ok)
	assert.Equal(t, 4800.0, res.Litros)
	assert.Equal(t, "120 ruas × 80m × 500 mL/m ÷ 1000", res.Details)
}

func TestComputeInsumo_Invalid(t *testing.T) {
	_, ok := ComputeInsumo(nil)
	assert.False(t, ok)
	_, ok = ComputeInsumo(domain.RowCropDosage{AreaHa: 0, DoseLPerHa: 2})
	assert.False(t, ok)
	_, ok = ComputeInsumo(domain.CoffeeDosage{Ruas: 0, ComprimentoRuaM: 80, DoseMlPerM: 500})
	assert.False(t, ok)
}

func TestParseInsumo_UsesActiveGroupOnly(t *testing.T) {
	// coffee fields are garbage but irrelevant for soja
	d, ok := ParseInsumo(domain.CultureSoja, InsumoFields{
		AreaHa: "12", DoseLPerHa: "2.5", Ruas: "x", ComprimentoRuaM: "-1",
	})
	require.True(t, ok)
	assert.Equal(t, domain.RowCropDosage{AreaHa: 12, DoseLPerHa: 2.5}, d)

	d, ok = ParseInsumo(domain.CultureCafe, InsumoFields{
		AreaHa: "nope", Ruas: "120", ComprimentoRuaM: "80", DoseMlPerM: "500",
	})
	require.True(t, ok)
	assert.Equal(t, domain.CoffeeDosage{Ruas: 120, ComprimentoRuaM: 80, DoseMlPerM: 500}, d)
}

func TestParseInsumo_NoResult(t *testing.T) {
	cases := []struct {
		name    string
		culture domain.Culture
		fields  InsumoFields
	}{
		{"missing dose", domain.CultureMilho, InsumoFields{AreaHa: "7.5"}},
		{"non numeric", domain.CultureSoja, InsumoFields{AreaHa: "abc", DoseLPerHa: "2"}},
		{"negative", domain.CultureSoja, InsumoFields{AreaHa: "-1", DoseLPerHa: "2"}},
		{"fractional rows", domain.CultureCafe, InsumoFields{Ruas: "12.5", ComprimentoRuaM: "80", DoseMlPerM: "500"}},
		{"zero length", domain.CultureCafe, InsumoFields{Ruas: "12", ComprimentoRuaM: "0", DoseMlPerM: "500"}},
		{"unknown culture", domain.Culture("trigo"), InsumoFields{AreaHa: "1", DoseLPerHa: "1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ParseInsumo(tc.culture, tc.fields)
			assert.False(t, ok)
		})
	}
}

func TestField_DecodesStringsAndNumbers(t *testing.T) {
	var f InsumoFields
	require.NoError(t, json.Unmarshal([]byte(`{"areaHa": 12.5, "doseLPerHa": "2", "ruas": null}`), &f))
	assert.Equal(t, Field("12.5"), f.AreaHa)
	assert.Equal(t, Field("2"), f.DoseLPerHa)
	assert.True(t, f.Ruas.Blank())
}

func TestMatchesCulture(t *testing.T) {
	assert.True(t, MatchesCulture(domain.CultureSoja, domain.RowCropDosage{}))
	assert.True(t, MatchesCulture(domain.CultureCafe, domain.CoffeeDosage{}))
	assert.False(t, MatchesCulture(domain.CultureCafe, domain.RowCropDosage{}))
	assert.False(t, MatchesCulture(domain.CultureMilho, nil))
}
