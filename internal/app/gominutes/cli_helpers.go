package gominutes

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/roemer/gominutes"
	"github.com/roemer/gominutes/pkg/common"
	"github.com/roemer/gominutes/pkg/config"
	"github.com/roemer/gominutes/pkg/logging"
	"github.com/samber/lo"
)

type stringSliceFlag []string

func (i *stringSliceFlag) String() string {
	return strings.Join(*i, "; ")
}

func (i *stringSliceFlag) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// The flags shared by the commands that talk to a provider.
type providerFlags struct {
	verbose     bool
	configFile  string
	cachePath   string
	provider    string
	endpoint    string
	concurrency int
	rateLimit   float64
	format      string
	include     stringSliceFlag
	exclude     stringSliceFlag
}

func (f *providerFlags) register(flagSet *flag.FlagSet) {
	flagSet.BoolVar(&f.verbose, "verbose", false, "The flag to set in order to get verbose output")
	flagSet.BoolVar(&f.verbose, "v", false, "Alias for -verbose")
	flagSet.StringVar(&f.configFile, "config", "", "The path to the config file to read, defaults to gominutes.(json|jsonc|yaml|yml) if present")
	flagSet.StringVar(&f.cachePath, "cachePath", "", "The folder to cache remote responses in. Caching is disabled when empty")
	flagSet.StringVar(&f.provider, "provider", "", "The provider to use: netlify, github, gitlab, gitea or local")
	flagSet.StringVar(&f.endpoint, "endpoint", "", "The endpoint of the provider or the dump file for the local provider")
	flagSet.IntVar(&f.concurrency, "concurrency", 0, "The number of sites which are checked at the same time")
	flagSet.Float64Var(&f.rateLimit, "rateLimit", 0, "The maximum number of remote requests per second")
	flagSet.StringVar(&f.format, "format", string(common.OUTPUT_FORMAT_TEXT), "The output format: text or json")
	flagSet.Var(&f.include, "include", "Only report sites matching this pattern, can be repeated")
	flagSet.Var(&f.exclude, "exclude", "Do not report sites matching this pattern, can be repeated")
}

// Applies the flags over the values of the config.
func (f *providerFlags) toConfigOverride() *config.GominutesConfig {
	return &config.GominutesConfig{
		Provider: &config.ProviderConfig{
			Type:     common.ProviderType(f.provider),
			Endpoint: f.endpoint,
		},
		CachePath:   f.cachePath,
		Concurrency: f.concurrency,
		RateLimit:   f.rateLimit,
		Sites: &config.SitesConfig{
			Include: f.include,
			Exclude: f.exclude,
		},
	}
}

func (f *providerFlags) outputFormat() (common.OutputFormat, error) {
	format := common.OutputFormat(strings.ToLower(f.format))
	if format != common.OUTPUT_FORMAT_TEXT && format != common.OUTPUT_FORMAT_JSON {
		return "", fmt.Errorf("unknown output format: '%s'", f.format)
	}
	return format, nil
}

// Creates the logger, loads the config and prepares the runner.
func (f *providerFlags) createRunner(ctx context.Context, logOutput io.Writer) (*gominutes.Runner, error) {
	desiredLogLevel := lo.Ternary(f.verbose, slog.LevelDebug, slog.LevelInfo)
	logger := slog.New(logging.NewReadableTextHandler(logOutput, &logging.ReadableTextHandlerOptions{Level: desiredLogLevel}))
	logger.Debug(fmt.Sprintf("Initialized logger with level: %s", desiredLogLevel))

	loadedConfig, err := gominutes.LoadConfig(ctx, f.configFile)
	if err != nil {
		return nil, err
	}
	mergedConfig := loadedConfig.MergeWithAsCopy(f.toConfigOverride())
	return gominutes.NewRunner(mergedConfig, logger)
}

// Prints the help for a command
func printCmdUsage(flagSet *flag.FlagSet, commandName, nonFlagArgs string) {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintf(os.Stderr, "  gominutes %s [flags]", commandName)
	if nonFlagArgs != "" {
		fmt.Fprint(os.Stderr, " "+nonFlagArgs)
	}
	fmt.Fprintln(os.Stderr, "")

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	flagSet.PrintDefaults()
}
