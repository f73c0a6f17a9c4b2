package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/roemer/gominutes/pkg/common"
)

// Receives the rendered parts of a report.
type ISink interface {
	// Starts the block of a site.
	SiteHeader(name string, totalLabel string) error
	// Adds a deploy to the current site.
	DeployLine(timeLabel string, title string, band SeverityBand) error
	// Writes everything which is still buffered.
	Flush() error
}

// Gets the sink for the given output format.
func NewSink(format common.OutputFormat, out io.Writer) (ISink, error) {
	switch format {
	case "", common.OUTPUT_FORMAT_TEXT:
		return NewTextSink(out), nil
	case common.OUTPUT_FORMAT_JSON:
		return NewJsonSink(out), nil
	}
	return nil, fmt.Errorf("unknown output format: '%s'", format)
}

////////// Text

// Writes human readable lines, colored by severity when the output supports it.
type TextSink struct {
	out    io.Writer
	styles map[SeverityBand]lipgloss.Style
}

func NewTextSink(out io.Writer) *TextSink {
	renderer := lipgloss.NewRenderer(out)
	return &TextSink{
		out: out,
		styles: map[SeverityBand]lipgloss.Style{
			SEVERITY_BAND_NONE:   renderer.NewStyle().Foreground(lipgloss.Color("8")),
			SEVERITY_BAND_LOW:    renderer.NewStyle().Foreground(lipgloss.Color("2")),
			SEVERITY_BAND_MEDIUM: renderer.NewStyle().Foreground(lipgloss.Color("12")),
			SEVERITY_BAND_HIGH:   renderer.NewStyle().Foreground(lipgloss.Color("1")),
		},
	}
}

func (s *TextSink) SiteHeader(name string, totalLabel string) error {
	_, err := fmt.Fprintf(s.out, "\n%s (%s)\n", name, totalLabel)
	return err
}

func (s *TextSink) DeployLine(timeLabel string, title string, band SeverityBand) error {
	_, err := fmt.Fprintln(s.out, s.styles[band].Render(fmt.Sprintf("%s: %s", timeLabel, title)))
	return err
}

func (s *TextSink) Flush() error {
	return nil
}

////////// Json

type jsonSite struct {
	Name       string        `json:"name"`
	TotalLabel string        `json:"total"`
	Deploys    []*jsonDeploy `json:"deploys"`
}

type jsonDeploy struct {
	TimeLabel string       `json:"time"`
	Title     string       `json:"title"`
	Band      SeverityBand `json:"severity"`
}

// Collects the report and writes it as one json document on flush.
type JsonSink struct {
	out   io.Writer
	sites []*jsonSite
}

func NewJsonSink(out io.Writer) *JsonSink {
	return &JsonSink{
		out:   out,
		sites: []*jsonSite{},
	}
}

func (s *JsonSink) SiteHeader(name string, totalLabel string) error {
	s.sites = append(s.sites, &jsonSite{Name: name, TotalLabel: totalLabel, Deploys: []*jsonDeploy{}})
	return nil
}

func (s *JsonSink) DeployLine(timeLabel string, title string, band SeverityBand) error {
	if len(s.sites) == 0 {
		return fmt.Errorf("deploy '%s' written before any site", title)
	}
	current := s.sites[len(s.sites)-1]
	current.Deploys = append(current.Deploys, &jsonDeploy{TimeLabel: timeLabel, Title: title, Band: band})
	return nil
}

func (s *JsonSink) Flush() error {
	encoder := json.NewEncoder(s.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s.sites)
}
