package formula

import (
	"strconv"

	"github.com/agroview/backend/pkg/utils"
)

// StorageDecimals is the precision of litros written to the store. Display
// uses 2 decimals for the same quantity.
const StorageDecimals = 3

// StorageLiters rounds a computed volume for persistence.
func StorageLiters(litros float64) float64 {
	return utils.RoundTo(litros, StorageDecimals)
}

// FormatLiters renders a volume for display.
func FormatLiters(litros float64) string {
	return strconv.FormatFloat(litros, 'f', 2, 64) + " L"
}

// FormatHectares renders an area in hectares for display.
func FormatHectares(ha float64) string {
	return strconv.FormatFloat(ha, 'f', 4, 64) + " ha"
}

// FormatSquareMeters renders an area in m² for display.
func FormatSquareMeters(m2 float64) string {
	return strconv.FormatFloat(m2, 'f', 2, 64) + " m²"
}
