package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/roemer/gominutes/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedLine struct {
	header bool
	first  string
	second string
	band   SeverityBand
}

type recordingSink struct {
	lines   []recordedLine
	flushed bool
}

func (s *recordingSink) SiteHeader(name string, totalLabel string) error {
	s.lines = append(s.lines, recordedLine{header: true, first: name, second: totalLabel})
	return nil
}

func (s *recordingSink) DeployLine(timeLabel string, title string, band SeverityBand) error {
	s.lines = append(s.lines, recordedLine{first: timeLabel, second: title, band: band})
	return nil
}

func (s *recordingSink) Flush() error {
	s.flushed = true
	return nil
}

func testReports() []*common.SiteDeployReport {
	return []*common.SiteDeployReport{
		{Name: "A", Deploys: []*common.Deploy{
			{Id: "1", Title: "feat: y", Time: 122},
			{Id: "2", Title: "fix: x", Time: 42},
			{Id: "3", Title: "chore: z", Time: 0},
		}},
		{Name: "B", Deploys: []*common.Deploy{}},
		{Name: "C", Deploys: []*common.Deploy{{Id: "4", Title: "docs", Time: 75}}},
	}
}

func TestPrinterSkipsEmptySites(t *testing.T) {
	assert := assert.New(t)

	sink := &recordingSink{}
	require.NoError(t, NewPrinter(sink).Print(testReports()))

	assert.True(sink.flushed)
	assert.Equal([]recordedLine{
		{header: true, first: "A", second: "2mn44s"},
		{first: "2mn02s", second: "feat: y", band: SEVERITY_BAND_HIGH},
		{first: "42s", second: "fix: x", band: SEVERITY_BAND_LOW},
		{first: "N/A", second: "chore: z", band: SEVERITY_BAND_NONE},
		{header: true, first: "C", second: "1mn15s"},
		{first: "1mn15s", second: "docs", band: SEVERITY_BAND_MEDIUM},
	}, sink.lines)
}

func TestPrinterWithoutDeploys(t *testing.T) {
	sink := &recordingSink{}
	require.NoError(t, NewPrinter(sink).Print([]*common.SiteDeployReport{{Name: "B"}, nil}))
	assert.Empty(t, sink.lines)
}

func TestTextSink(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, NewPrinter(NewTextSink(out)).Print(testReports()))

	assert.Equal(t, "\nA (2mn44s)\n2mn02s: feat: y\n42s: fix: x\nN/A: chore: z\n\nC (1mn15s)\n1mn15s: docs\n", out.String())
}

func TestJsonSink(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	require.NoError(t, NewPrinter(NewJsonSink(out)).Print(testReports()))

	parsed := []map[string]any{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &parsed))
	require.Len(t, parsed, 2)
	assert.Equal("A", parsed[0]["name"])
	assert.Equal("2mn44s", parsed[0]["total"])
	deploys := parsed[0]["deploys"].([]any)
	assert.Len(deploys, 3)
	assert.Equal(map[string]any{"time": "2mn02s", "title": "feat: y", "severity": "high"}, deploys[0])
}

func TestJsonSinkWithoutSites(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, NewPrinter(NewJsonSink(out)).Print(nil))
	assert.Equal(t, "[]\n", out.String())
}

func TestNewSink(t *testing.T) {
	assert := assert.New(t)

	sink, err := NewSink("", &bytes.Buffer{})
	assert.NoError(err)
	assert.IsType(&TextSink{}, sink)

	sink, err = NewSink(common.OUTPUT_FORMAT_JSON, &bytes.Buffer{})
	assert.NoError(err)
	assert.IsType(&JsonSink{}, sink)

	_, err = NewSink("xml", &bytes.Buffer{})
	assert.ErrorContains(err, "unknown output format")
}

func TestWriteSites(t *testing.T) {
	assert := assert.New(t)

	sites := []*common.Site{{Name: "monsters", SiteId: "m-id"}, {Name: "npcs", SiteId: "n-id"}}
	out := &bytes.Buffer{}
	assert.NoError(WriteSites(out, sites, common.OUTPUT_FORMAT_TEXT))
	assert.Equal("monsters (m-id)\nnpcs (n-id)\n", out.String())

	out.Reset()
	assert.NoError(WriteSites(out, nil, common.OUTPUT_FORMAT_JSON))
	assert.Equal("[]\n", out.String())
}
