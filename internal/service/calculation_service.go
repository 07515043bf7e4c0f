package service

import (
	"context"
	"strings"

	"github.com/agroview/backend/internal/domain"
	"github.com/agroview/backend/internal/formula"
	"github.com/agroview/backend/internal/observability"
)

// InsumoRequest is the insumo calculator form.
type InsumoRequest struct {
	Culture string `json:"culture"`
	Produto string `json:"produto"`
	formula.InsumoFields
}

// InsumoOutcome reports the calculation and, separately, whether it was saved.
// Result is nil when the form is not yet computable.
type InsumoOutcome struct {
	Culture       domain.Culture       `json:"culture,omitempty"`
	Produto       string               `json:"produto,omitempty"`
	Result        *domain.InsumoResult `json:"result"`
	LitrosDisplay string               `json:"litrosDisplay,omitempty"`
	RecordID      string               `json:"recordId,omitempty"`
	StoredLitros  float64              `json:"storedLitros,omitempty"`
	PersistError  string               `json:"persistError,omitempty"`
}

// AreaOutcome is the area calculator result with display strings.
type AreaOutcome struct {
	Result        *domain.AreaResult `json:"result"`
	AreaM2Display string             `json:"areaM2Display,omitempty"`
	AreaHaDisplay string             `json:"areaHaDisplay,omitempty"`
}

// CalculationService runs the calculators and saves insumo results
type CalculationService struct {
	records *RecordService
	metrics *observability.Metrics
}

// NewCalculationService creates a new calculation service
func NewCalculationService(records *RecordService, metrics *observability.Metrics) *CalculationService {
	return &CalculationService{records: records, metrics: metrics}
}

// CalculateArea computes the planting area. Nothing is persisted.
func (s *CalculationService) CalculateArea(base, altura formula.Field) AreaOutcome {
	res, ok := formula.ParseArea(base, altura)
	if !ok {
		return AreaOutcome{}
	}
	return AreaOutcome{
		Result:        &res,
		AreaM2Display: formula.FormatSquareMeters(res.AreaM2),
		AreaHaDisplay: formula.FormatHectares(res.AreaHa),
	}
}

// CalculateInsumo computes the volume and then tries to save it. The result
// is returned whether or not the save succeeds.
func (s *CalculationService) CalculateInsumo(ctx context.Context, req InsumoRequest) InsumoOutcome {
	culture, err := domain.ParseCulture(req.Culture)
	if err != nil {
		return InsumoOutcome{}
	}
	produto := strings.TrimSpace(req.Produto)
	if produto == "" {
		return InsumoOutcome{Culture: culture}
	}

	dosage, ok := formula.ParseInsumo(culture, req.InsumoFields)
	if !ok {
		return InsumoOutcome{Culture: culture, Produto: produto}
	}
	res, ok := formula.ComputeInsumo(dosage)
	if !ok {
		return InsumoOutcome{Culture: culture, Produto: produto}
	}
	s.metrics.Calculations.WithLabelValues(string(culture)).Inc()

	out := InsumoOutcome{
		Culture:       culture,
		Produto:       produto,
		Result:        &res,
		LitrosDisplay: formula.FormatLiters(res.Litros),
		StoredLitros:  formula.StorageLiters(res.Litros),
	}

	id, err := s.records.AppendRecord(ctx, domain.CalculationRecord{
		Culture: culture,
		Produto: produto,
		Dosage:  dosage,
		Litros:  out.StoredLitros,
		Details: res.Details,
	})
	if err != nil {
		out.PersistError = err.Error()
		return out
	}
	out.RecordID = id
	return out
}
