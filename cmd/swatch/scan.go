package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/swatch/internal/config"
	"github.com/nao1215/swatch/internal/fetch"
	swatchlog "github.com/nao1215/swatch/internal/log"
	"github.com/nao1215/swatch/internal/model"
	"github.com/nao1215/swatch/internal/pipeline"
	"github.com/nao1215/swatch/internal/report"
	"github.com/spf13/cobra"
)

// runScanCmd executes a scan of one page.
//
// Flag and configuration problems are returned as errors. A failed scan is
// not: it is reported as "Error: <message>" on stdout and the command
// succeeds.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runScan(ctx, cmd.OutOrStdout(), cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the config file and the flags,
// in that order of precedence (later wins). Flags only override the file
// when they were set explicitly.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file path, error if not found.
	// Otherwise silently keep the defaults when no file is found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(file)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}

	if flags.Changed("top") {
		if cfg.TopN, err = flags.GetInt("top"); err != nil {
			return nil, err
		}
	}

	if flags.Changed("proxy") {
		if cfg.ProxyAddress, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}

	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}

	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}

	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	if len(args) > 0 {
		cfg.URL = args[0]
	}

	return cfg, nil
}

// setupLogger creates a structured logger on w based on the verbosity setting.
// Credentials in attributes are masked.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	return swatchlog.NewSecureLogger(w, verbose)
}

// runScan fetches cfg.URL, ranks its colors and writes the report.
func runScan(ctx context.Context, stdout io.Writer, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting scan",
		"url", cfg.URL,
		"top", cfg.TopN,
		"timeout", cfg.Timeout,
		"proxy", cfg.ProxyAddress,
	)

	client, err := fetch.NewHTTPClient(cfg.Timeout, cfg.ProxyAddress)
	if err != nil {
		return fmt.Errorf("failed to create HTTP client: %w", err)
	}

	fetcher := fetch.NewFetcher(client,
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithHeaders(cfg.Headers),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
		fetch.WithLogger(logger),
	)

	p := pipeline.DefaultPipeline(fetcher, cfg.TopN, pipeline.WithLogger(logger))
	logger.Debug("pipeline ready", "steps", p.StepNames())
	colorReport := model.NewColorReport(cfg.URL)

	if err := p.Execute(ctx, colorReport); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return nil
	}

	if err := outputReport(stdout, cfg, colorReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// outputReport writes the report in the requested format to stdout or
// to cfg.ReportFile.
func outputReport(stdout io.Writer, cfg *config.Config, colorReport *model.ColorReport) (err error) {
	output := stdout
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if mkErr := os.MkdirAll(dir, 0750); mkErr != nil {
				return fmt.Errorf("failed to create output directory: %w", mkErr)
			}
		}

		f, openErr := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if openErr != nil {
			return fmt.Errorf("failed to create output file: %w", openErr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		output = f
	}

	_, err = newReportWriter(output, cfg).Write(colorReport)
	return err
}

// newReportWriter selects the writer for the configured format.
func newReportWriter(output io.Writer, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output)
	}
}
