package formula

import (
	"github.com/agroview/backend/internal/domain"
	"github.com/agroview/backend/pkg/utils"
)

// SquareMetersPerHectare converts m² to ha.
const SquareMetersPerHectare = 10000

// ComputeArea returns the rectangle area in m² and ha.
// Both dimensions must be finite and strictly positive.
func ComputeArea(base, altura float64) (domain.AreaResult, bool) {
	if !utils.IsPositive(base) || !utils.IsPositive(altura) {
		return domain.AreaResult{}, false
	}
	m2 := base * altura
	return domain.AreaResult{AreaM2: m2, AreaHa: m2 / SquareMetersPerHectare}, true
}

// ParseArea computes the area from raw form values.
func ParseArea(base, altura Field) (domain.AreaResult, bool) {
	b, ok := base.float()
	if !ok {
		return domain.AreaResult{}, false
	}
	h, ok := altura.float()
	if !ok {
		return domain.AreaResult{}, false
	}
	return ComputeArea(b, h)
}
