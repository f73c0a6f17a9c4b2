package report

import "fmt"

// Converts a duration in seconds to a string like "1mn05s".
// Zero or negative durations are shown as "N/A".
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "N/A"
	}
	minutes := seconds / 60
	remaining := seconds % 60
	result := ""
	if minutes > 0 {
		result = fmt.Sprintf("%dmn", minutes)
	}
	if remaining > 0 {
		result += fmt.Sprintf("%02ds", remaining)
	}
	return result
}

// Classification of a duration, used to highlight slow deploys.
type SeverityBand int

const (
	SEVERITY_BAND_NONE SeverityBand = iota
	SEVERITY_BAND_LOW
	SEVERITY_BAND_MEDIUM
	SEVERITY_BAND_HIGH
)

func (b SeverityBand) String() string {
	switch b {
	case SEVERITY_BAND_LOW:
		return "low"
	case SEVERITY_BAND_MEDIUM:
		return "medium"
	case SEVERITY_BAND_HIGH:
		return "high"
	}
	return "none"
}

func (b SeverityBand) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Gets the band for the given duration in seconds.
func SeverityBandFor(seconds int) SeverityBand {
	switch {
	case seconds > 120:
		return SEVERITY_BAND_HIGH
	case seconds > 60:
		return SEVERITY_BAND_MEDIUM
	case seconds > 0:
		return SEVERITY_BAND_LOW
	}
	return SEVERITY_BAND_NONE
}
