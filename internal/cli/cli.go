// Package cli wires the digest pipeline behind a cobra command.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/estatewatch/estate-digest/internal/config"
	"github.com/estatewatch/estate-digest/internal/logger"
	"github.com/estatewatch/estate-digest/internal/notifier"
	"github.com/estatewatch/estate-digest/internal/report"
	"github.com/estatewatch/estate-digest/internal/scraper"
	"github.com/estatewatch/estate-digest/internal/weekend"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagDryRun  bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estate-digest",
		Short: "Email a weekly digest of Austin estate sales",
		Long: `Fetches the EstateSales.NET Austin listings page, extracts upcoming
estate sales, groups them into this-weekend and next-weekend buckets,
and emails a plain-text digest.`,
		RunE: runDigest,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the digest instead of emailing it")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runDigest is the top-level failure handler: any pipeline error is turned
// into an attempted error email, never a process failure.
func runDigest(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier(os.Stdout)
	} else {
		n = notifier.NewMailer(cfg.Email)
	}

	if err := run(cfg, n); err != nil {
		logger.Error("pipeline failed", nil, err)
		if sendErr := n.Notify(notifier.ErrorSubject, notifier.ErrorBody(err)); sendErr != nil {
			logger.Error("failed to send error report", nil, sendErr)
		}
	}
	return nil
}

// run executes one fetch, extract, bucket, format, and send cycle.
func run(cfg config.Config, n notifier.Notifier) error {
	loc, err := time.LoadLocation(cfg.Scrape.Timezone)
	if err != nil {
		return fmt.Errorf("loading time zone %q: %w", cfg.Scrape.Timezone, err)
	}

	sc := scraper.New(cfg.Scrape)

	logger.Info("fetching listings page", logger.Fields{"url": cfg.Scrape.URL})
	html, err := sc.Fetch()
	if err != nil {
		return err
	}
	logger.Info("fetched page", logger.Fields{"bytes": len(html)})

	listings, err := sc.Extract(html)
	if err != nil {
		return err
	}
	logger.Info("extracted listings", logger.Fields{"count": len(listings)})

	now := time.Now().In(loc)
	buckets := weekend.Bucket(now, listings)
	logger.AddCounter("bucket.this_weekend", int64(len(buckets.ThisWeekend)))
	logger.AddCounter("bucket.next_weekend", int64(len(buckets.NextWeekend)))
	logger.AddCounter("bucket.other", int64(len(buckets.Other)))
	logger.Info("bucketed listings", logger.Fields{
		"this_weekend": len(buckets.ThisWeekend),
		"next_weekend": len(buckets.NextWeekend),
		"other":        len(buckets.Other),
	})

	body := report.Render(buckets, now)

	if err := n.Notify(notifier.Subject(now), body); err != nil {
		// Delivery failures are terminal dead-ends, not pipeline errors.
		logger.Error("failed to send digest", nil, err)
		return nil
	}

	logger.Info("digest run complete", logger.Fields{"counters": logger.GetCountersSnapshot()})
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
