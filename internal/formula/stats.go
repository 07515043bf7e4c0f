package formula

import (
	"errors"
	"math"

	"github.com/agroview/backend/internal/domain"
)

// ErrEmptySample is returned when statistics are requested for no values.
var ErrEmptySample = errors.New("formula: empty sample")

// ComputeStats returns n, mean, population standard deviation, min and max.
func ComputeStats(samples []float64) (domain.StatsResponse, error) {
	n := len(samples)
	if n == 0 {
		return domain.StatsResponse{}, ErrEmptySample
	}

	sum := 0.0
	lo, hi := samples[0], samples[0]
	for _, v := range samples {
		sum += v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	mean := sum / float64(n)

	sq := 0.0
	for _, v := range samples {
		sq += (v - mean) * (v - mean)
	}

	return domain.StatsResponse{
		N:      n,
		Media:  mean,
		Desvio: math.Sqrt(sq / float64(n)),
		Min:    lo,
		Max:    hi,
	}, nil
}
