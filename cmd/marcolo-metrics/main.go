package main

import (
	"flag"
	"fmt"

	"github.com/bdabianco/marcolo-metrics/internal/config"
	"github.com/bdabianco/marcolo-metrics/internal/engine"
	"github.com/bdabianco/marcolo-metrics/pkg/constants"
	"github.com/bdabianco/marcolo-metrics/pkg/output"
	"github.com/bdabianco/marcolo-metrics/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get the profile location
	profileLocation := flag.String("profile", constants.DefaultProfileFile, "path to profile file")
	projectID := flag.String("project", "", "restrict metrics to one project ID (default: all projects)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the profile to get logging configuration
	profile, err := config.LoadProfile(*profileLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load profile at %s\", \"error\": \"%v\"}\n", *profileLocation, err)
		return
	}

	// Initialize logging based on profile settings and CLI override
	logger, err := profile.Logging.BuildLogger(*logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over profile)
	outputFormat := profile.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate the profile and display any warnings
	warnings := profile.Validate()
	for _, warning := range warnings {
		logger.Warn("Profile warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Run the metrics pipeline
	result, err := engine.Compute(logger, profile, *projectID)
	if err != nil {
		logger.Fatal("failed to compute metrics",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(result); err != nil {
			logger.Fatal("failed to render JSON output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
