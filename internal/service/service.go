package service

import (
	"github.com/agroview/backend/internal/domain"
)

// DataRepository is re-exported from domain for convenience
type DataRepository = domain.RecordRepository
