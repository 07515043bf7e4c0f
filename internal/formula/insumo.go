package formula

import (
	"github.com/agroview/backend/internal/domain"
	"github.com/agroview/backend/pkg/utils"
)

// InsumoFields are the raw form values of the insumo calculator. Only the
// group matching the selected culture is read.
type InsumoFields struct {
	AreaHa          Field `json:"areaHa"`
	DoseLPerHa      Field `json:"doseLPerHa"`
	Ruas            Field `json:"ruas"`
	ComprimentoRuaM Field `json:"comprimentoRuaM"`
	DoseMlPerM      Field `json:"doseMlPerM"`
}

// ParseInsumo builds the dosage variant for culture from form values.
func ParseInsumo(culture domain.Culture, f InsumoFields) (domain.Dosage, bool) {
	switch {
	case culture == domain.CultureCafe:
		ruas, ok1 := f.Ruas.int()
		comp, ok2 := f.ComprimentoRuaM.float()
		dose, ok3 := f.DoseMlPerM.float()
		if !ok1 || !ok2 || !ok3 {
			return nil, false
		}
		d := domain.CoffeeDosage{Ruas: ruas, ComprimentoRuaM: comp, DoseMlPerM: dose}
		return d, validDosage(d)
	case culture.IsRowCrop():
		area, ok1 := f.AreaHa.float()
		dose, ok2 := f.DoseLPerHa.float()
		if !ok1 || !ok2 {
			return nil, false
		}
		d := domain.RowCropDosage{AreaHa: area, DoseLPerHa: dose}
		return d, validDosage(d)
	}
	return nil, false
}

// ComputeInsumo applies the dosage formula. No rounding is applied.
func ComputeInsumo(d domain.Dosage) (domain.InsumoResult, bool) {
	if !validDosage(d) {
		return domain.InsumoResult{}, false
	}
	return domain.InsumoResult{Litros: d.Liters(), Details: d.Details()}, true
}

func validDosage(d domain.Dosage) bool {
	switch v := d.(type) {
	case domain.RowCropDosage:
		return utils.IsPositive(v.AreaHa) && utils.IsPositive(v.DoseLPerHa)
	case domain.CoffeeDosage:
		return v.Ruas > 0 && utils.IsPositive(v.ComprimentoRuaM) && utils.IsPositive(v.DoseMlPerM)
	}
	return false
}

// MatchesCulture reports whether the dosage variant belongs to culture.
func MatchesCulture(culture domain.Culture, d domain.Dosage) bool {
	if d == nil {
		return false
	}
	return d.RowCrop() == culture.IsRowCrop()
}
