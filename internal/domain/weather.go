package domain

// WeatherRequest asks for a weather summary over the last Dias days at a location.
type WeatherRequest struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Dias int     `json:"dias"`
}

// WeatherResponse is passed through unchanged from the data source.
type WeatherResponse struct {
	PrecipitacaoTotalMM float64 `json:"precipitacao_total_mm"`
	TemperaturaMediaC   float64 `json:"temperatura_media_c"`
	UmidadeMediaPct     float64 `json:"umidade_media_pct"`
	Dias                int     `json:"dias"`
	IsMock              bool    `json:"is_mock"`
}

// StatsRequest carries the rainfall sample (mm).
type StatsRequest struct {
	Valores []float64 `json:"valores"`
}

// StatsResponse holds descriptive statistics of a sample.
// Desvio is the population standard deviation.
type StatsResponse struct {
	N      int     `json:"n"`
	Media  float64 `json:"media"`
	Desvio float64 `json:"desvio"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	IsMock bool    `json:"is_mock"`
}

// Default dashboard inputs.
var DefaultRainfallSample = []float64{12, 20, 18, 5, 40, 22, 15}

const (
	SaoPauloLat = -23.5505
	SaoPauloLon = -46.6333
	DefaultDias = 7
)
