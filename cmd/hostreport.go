package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"hostreport/internal/conf"
	"hostreport/internal/logger"
	"hostreport/internal/report"
	"hostreport/internal/system"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("hostreport", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "hostreport.toml", "Path to TOML config file")
	intervalFlag := flags.String("sample-interval", "", "CPU sampling window in seconds or as a duration (e.g. 0.5, 500ms)")
	sectionsFlag := flags.String("sections", "", "Comma separated report sections (system,boot,cpu,memory,disk,network)")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := loadConfig(*configFile, *intervalFlag, *sectionsFlag); err != nil {
		fmt.Fprintf(stderr, "hostreport: %v\n", err)
		return 2
	}
	cfg := conf.Read()

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "hostreport: %v\n", err)
		return 2
	}
	defer log.Sync()

	reporter := report.New(
		system.NewCollector(log),
		log,
		report.WithSampleInterval(cfg.SampleInterval.Duration()),
		report.WithSections(cfg.Sections...),
	)
	if err := reporter.Write(stdout); err != nil {
		log.Error("failed to write report", zap.Error(err))
		return 1
	}
	return 0
}

// loadConfig layers flags over the config file and environment
func loadConfig(path, interval, sections string) error {
	if err := conf.LoadConfig(path); err != nil {
		return err
	}
	if interval != "" {
		d, err := conf.ParseInterval(interval)
		if err != nil {
			return fmt.Errorf("invalid -sample-interval: %w", err)
		}
		if err := conf.SetSampleInterval(d); err != nil {
			return err
		}
	}
	if sections != "" {
		if err := conf.SetSections(conf.ParseSections(sections)); err != nil {
			return fmt.Errorf("invalid -sections: %w", err)
		}
	}
	return nil
}
