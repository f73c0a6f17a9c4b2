package gominutes

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/roemer/gominutes/pkg/report"
)

func SitesCmd(args []string) error {
	return runSites(context.Background(), args, os.Stdout, os.Stderr)
}

func runSites(ctx context.Context, args []string, out io.Writer, logOutput io.Writer) error {
	flags := &providerFlags{}
	flagSet := flag.NewFlagSet("sites", flag.ContinueOnError)
	flags.register(flagSet)
	flagSet.Usage = func() { printCmdUsage(flagSet, "sites", "") }
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	format, err := flags.outputFormat()
	if err != nil {
		return err
	}
	runner, err := flags.createRunner(ctx, logOutput)
	if err != nil {
		return err
	}
	sites, err := runner.Sites(ctx)
	if err != nil {
		return err
	}
	return report.WriteSites(out, sites, format)
}
