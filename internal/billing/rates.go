package billing

// Default rates used when none are configured
const (
	DefaultHourlyRate = 10.0
	DefaultLineRate   = 0.05

	// lineRateShare derives a line rate from an explicit hourly rate (0.5%)
	lineRateShare = 0.005
)

// Rates are the prices applied to billed time and lines
type Rates struct {
	Hourly float64 `json:"hourly" yaml:"hourly"`
	Line   float64 `json:"line" yaml:"line"`
}

// ResolveRates applies the defaulting rules to optional rates.
//
// Without an hourly rate the defaults apply. An hourly rate on its own
// implies a line rate of 0.5% of it. An explicit line rate always wins.
func ResolveRates(hourly, line *float64) Rates {
	rates := Rates{
		Hourly: DefaultHourlyRate,
		Line:   DefaultLineRate,
	}

	if hourly != nil {
		rates.Hourly = *hourly
		rates.Line = *hourly * lineRateShare
	}
	if line != nil {
		rates.Line = *line
	}
	return rates
}
