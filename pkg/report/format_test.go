package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("N/A", FormatDuration(0))
	assert.Equal("N/A", FormatDuration(-3))
	assert.Equal("01s", FormatDuration(1))
	assert.Equal("15s", FormatDuration(15))
	assert.Equal("1mn", FormatDuration(60))
	assert.Equal("1mn01s", FormatDuration(61))
	assert.Equal("1mn15s", FormatDuration(75))
	assert.Equal("2mn02s", FormatDuration(122))
	assert.Equal("61mn", FormatDuration(3660))
}

func TestSeverityBandFor(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SEVERITY_BAND_NONE, SeverityBandFor(0))
	assert.Equal(SEVERITY_BAND_LOW, SeverityBandFor(1))
	assert.Equal(SEVERITY_BAND_LOW, SeverityBandFor(60))
	assert.Equal(SEVERITY_BAND_MEDIUM, SeverityBandFor(61))
	assert.Equal(SEVERITY_BAND_MEDIUM, SeverityBandFor(120))
	assert.Equal(SEVERITY_BAND_HIGH, SeverityBandFor(121))
	assert.Equal("medium", SEVERITY_BAND_MEDIUM.String())
}
