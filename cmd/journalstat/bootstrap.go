/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package main

import (
	"flag"
	"os"
	"time"

	"github.com/pdmorrow/journalstat/pkg/appconfig"
	"github.com/pdmorrow/journalstat/pkg/journal"
	"github.com/pdmorrow/journalstat/pkg/logger"
	"github.com/pdmorrow/journalstat/pkg/report"
	"github.com/pdmorrow/journalstat/pkg/stat"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func bootstrap() error {
	// config file and env first, flags override
	if err := appconfig.SetupAppConfig(); err != nil {
		return err
	}

	cfg := &appconfig.StdConfig
	flag.StringVar(&cfg.Input, "input", cfg.Input, "input journal export file or directory")
	flag.IntVar(&cfg.TopTalkers, "top-talkers", cfg.TopTalkers, "number of top talkers to report on")
	flag.IntVar(&cfg.LargeMessages, "large-messages", cfg.LargeMessages, "number of large messages to report on")
	flag.StringVar(&cfg.Unit, "unit", cfg.Unit, "filter on a specific systemd unit")
	flag.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "filter on messages matching a regular expression")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	flag.Parse()

	logger.DebugEnabled = cfg.Debug

	if cfg.Input == "" {
		return errors.New("input journal path is required (-input)")
	}

	engine, err := stat.NewEngine(stat.Config{
		TopTalkers:    cfg.TopTalkers,
		LargeMessages: cfg.LargeMessages,
		Unit:          cfg.Unit,
		Pattern:       cfg.Pattern,
	})
	if err != nil {
		return err
	}

	source, err := journal.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer source.Close()

	logger.Infoz("[bootstrap] start pass",
		zap.String("pass", engine.PassId()),
		zap.String("input", cfg.Input),
		zap.Int("topTalkers", cfg.TopTalkers),
		zap.Int("largeMessages", cfg.LargeMessages),
		zap.String("unit", cfg.Unit),
		zap.String("pattern", cfg.Pattern))

	begin := time.Now()
	runErr := engine.Run(source)
	logger.Infoz("[bootstrap] pass done",
		zap.String("pass", engine.PassId()),
		zap.Uint64("records", engine.Total()),
		zap.Duration("cost", time.Since(begin)))

	// a broken stream still yields a report over what was read
	if err := report.Render(os.Stdout, engine); err != nil {
		return err
	}
	return runErr
}
