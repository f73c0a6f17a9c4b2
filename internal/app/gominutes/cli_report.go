package gominutes

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/roemer/gominutes/pkg/common"
	"github.com/roemer/gominutes/pkg/report"
)

func ReportCmd(args []string) error {
	return runReport(context.Background(), args, os.Stdout, os.Stderr)
}

func runReport(ctx context.Context, args []string, out io.Writer, logOutput io.Writer) error {
	// Flags and help for the command
	flags := &providerFlags{}
	flagSet := flag.NewFlagSet("report", flag.ContinueOnError)
	flags.register(flagSet)
	flagSet.Usage = func() { printCmdUsage(flagSet, "report", "[date]") }
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() > 1 {
		return fmt.Errorf("expected at most one date, got %d arguments", flagSet.NArg())
	}

	// The reference date, today if not given
	referenceDate := flagSet.Arg(0)
	if referenceDate == "" {
		referenceDate = time.Now().Format(common.DateFormat)
	}

	format, err := flags.outputFormat()
	if err != nil {
		return err
	}
	runner, err := flags.createRunner(ctx, logOutput)
	if err != nil {
		return err
	}
	reports, err := runner.Report(ctx, referenceDate)
	if err != nil {
		return err
	}

	sink, err := report.NewSink(format, out)
	if err != nil {
		return err
	}
	return report.NewPrinter(sink).Print(reports)
}
