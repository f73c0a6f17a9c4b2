package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/roemer/gominutes/pkg/common"
)

// Renders site deploy reports into a sink.
type Printer struct {
	sink ISink
}

func NewPrinter(sink ISink) *Printer {
	return &Printer{sink: sink}
}

// Prints all reports in the given order. Sites without deploys are skipped.
func (p *Printer) Print(reports []*common.SiteDeployReport) error {
	for _, siteReport := range reports {
		if err := p.printSite(siteReport); err != nil {
			return err
		}
	}
	return p.sink.Flush()
}

func (p *Printer) printSite(siteReport *common.SiteDeployReport) error {
	if siteReport == nil || len(siteReport.Deploys) == 0 {
		return nil
	}
	if err := p.sink.SiteHeader(siteReport.Name, FormatDuration(siteReport.TotalTime())); err != nil {
		return err
	}
	for _, deploy := range siteReport.Deploys {
		if err := p.sink.DeployLine(FormatDuration(deploy.Time), deploy.Title, SeverityBandFor(deploy.Time)); err != nil {
			return err
		}
	}
	return nil
}

// Writes the list of sites, one per line or as json.
func WriteSites(out io.Writer, sites []*common.Site, format common.OutputFormat) error {
	if format == common.OUTPUT_FORMAT_JSON {
		if sites == nil {
			sites = []*common.Site{}
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(sites)
	}
	for _, site := range sites {
		if _, err := fmt.Fprintf(out, "%s (%s)\n", site.Name, site.SiteId); err != nil {
			return err
		}
	}
	return nil
}
