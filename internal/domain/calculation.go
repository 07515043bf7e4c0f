package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// AreaResult is the planting area derived from base × altura.
type AreaResult struct {
	AreaM2 float64 `json:"areaM2"`
	AreaHa float64 `json:"areaHa"`
}

// InsumoResult is the liquid volume for one insumo application plus a formula trace.
type InsumoResult struct {
	Litros  float64 `json:"litros"`
	Details string  `json:"details"`
}

// Dosage is the culture-dependent input of an insumo calculation.
// Exactly one implementation applies per culture.
type Dosage interface {
	Liters() float64
	Details() string
	RowCrop() bool
}

// RowCropDosage is the soja/milho variant: area in hectares and dose per hectare.
type RowCropDosage struct {
	AreaHa     float64
	DoseLPerHa float64
}

func (d RowCropDosage) Liters() float64 {
	return d.AreaHa * d.DoseLPerHa
}

func (d RowCropDosage) Details() string {
	return fmt.Sprintf("%s ha × %s L/ha", formatNumber(d.AreaHa), formatNumber(d.DoseLPerHa))
}

func (RowCropDosage) RowCrop() bool { return true }

// CoffeeDosage is the café variant: rows, row length and dose per metre (mL).
type CoffeeDosage struct {
	Ruas            int
	ComprimentoRuaM float64
	DoseMlPerM      float64
}

func (d CoffeeDosage) Liters() float64 {
	return float64(d.Ruas) * d.ComprimentoRuaM * d.DoseMlPerM / 1000
}

func (d CoffeeDosage) Details() string {
	return fmt.Sprintf("%d ruas × %sm × %s mL/m ÷ 1000",
		d.Ruas, formatNumber(d.ComprimentoRuaM), formatNumber(d.DoseMlPerM))
}

func (CoffeeDosage) RowCrop() bool { return false }

// formatNumber prints the shortest representation that round-trips ("12", "2.5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CalculationRecord is one persisted insumo calculation.
// Dosage is nil when the stored field group is missing or does not match the culture.
type CalculationRecord struct {
	ID        string
	Culture   Culture
	Produto   string
	Dosage    Dosage
	Litros    float64
	Details   string
	CreatedAt time.Time
}

// AreaHa returns the treated area, 0 when the record has no row-crop dosage.
func (r CalculationRecord) AreaHa() float64 {
	if d, ok := r.Dosage.(RowCropDosage); ok {
		return d.AreaHa
	}
	return 0
}

type calculationRecordJSON struct {
	ID              string     `json:"id"`
	Culture         Culture    `json:"culture"`
	Produto         string     `json:"produto"`
	AreaHa          *float64   `json:"areaHa"`
	DoseLPerHa      *float64   `json:"doseLPerHa"`
	Ruas            *int       `json:"ruas"`
	ComprimentoRuaM *float64   `json:"comprimentoRuaM"`
	DoseMlPerM      *float64   `json:"doseMlPerM"`
	Litros          float64    `json:"litros"`
	Details         string     `json:"details"`
	CreatedAt       *time.Time `json:"createdAt"`
}

// MarshalJSON emits the flat stored shape with the inactive field group as null.
func (r CalculationRecord) MarshalJSON() ([]byte, error) {
	out := calculationRecordJSON{
		ID:      r.ID,
		Culture: r.Culture,
		Produto: r.Produto,
		Litros:  r.Litros,
		Details: r.Details,
	}
	switch d := r.Dosage.(type) {
	case RowCropDosage:
		out.AreaHa, out.DoseLPerHa = &d.AreaHa, &d.DoseLPerHa
	case CoffeeDosage:
		out.Ruas, out.ComprimentoRuaM, out.DoseMlPerM = &d.Ruas, &d.ComprimentoRuaM, &d.DoseMlPerM
	}
	if !r.CreatedAt.IsZero() {
		out.CreatedAt = &r.CreatedAt
	}
	return json.Marshal(out)
}

// RawRecord is a stored row as read back from the document store, before normalization.
// CreatedAt holds whatever the store returned.
type RawRecord struct {
	ID              string
	Culture         string
	Produto         string
	AreaHa          *float64
	DoseLPerHa      *float64
	Ruas            *int
	ComprimentoRuaM *float64
	DoseMlPerM      *float64
	Litros          *float64
	Details         string
	CreatedAt       any
}

// ToRaw flattens a record into its stored shape.
func (r CalculationRecord) ToRaw() RawRecord {
	raw := RawRecord{
		ID:      r.ID,
		Culture: string(r.Culture),
		Produto: r.Produto,
		Details: r.Details,
	}
	litros := r.Litros
	raw.Litros = &litros
	switch d := r.Dosage.(type) {
	case RowCropDosage:
		raw.AreaHa, raw.DoseLPerHa = &d.AreaHa, &d.DoseLPerHa
	case CoffeeDosage:
		raw.Ruas, raw.ComprimentoRuaM, raw.DoseMlPerM = &d.Ruas, &d.ComprimentoRuaM, &d.DoseMlPerM
	}
	if !r.CreatedAt.IsZero() {
		raw.CreatedAt = r.CreatedAt
	}
	return raw
}

// Totals aggregates a loaded set of records.
type Totals struct {
	Count       int     `json:"count"`
	TotalAreaHa float64 `json:"totalAreaHa"`
	TotalLiters float64 `json:"totalLiters"`
}
