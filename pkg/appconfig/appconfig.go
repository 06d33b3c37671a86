/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

// Package appconfig holds application level configuration. It is first in the
// initialization order and must not depend on other business packages.
package appconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type (
	// Config is the full configuration surface of a journalstat run.
	// Tracker capacities default to 0, which disables the corresponding
	// ranking section in the report.
	Config struct {
		// Input is the journal export file or directory to analyze.
		Input string `json:"input" yaml:"input" toml:"input"`
		// TopTalkers is the number of most frequent messages to report on.
		TopTalkers int `json:"topTalkers" yaml:"topTalkers" toml:"topTalkers"`
		// LargeMessages is the number of largest messages to report on.
		LargeMessages int `json:"largeMessages" yaml:"largeMessages" toml:"largeMessages"`
		// Unit restricts the pass to records of one systemd unit.
		Unit string `json:"unit" yaml:"unit" toml:"unit"`
		// Pattern restricts the pass to messages matching a regular expression.
		Pattern string `json:"pattern" yaml:"pattern" toml:"pattern"`
		Debug   bool   `json:"debug" yaml:"debug" toml:"debug"`
	}
)

// StdConfig is the process-wide configuration instance. It is written during
// SetupAppConfig and flag parsing, read-only afterwards.
var StdConfig = Config{}

// SetupAppConfig loads configuration in increasing precedence: defaults,
// journalstat.yaml, journalstat.toml, environment. CLI flags override on top
// of this in the cmd layer.
func SetupAppConfig() error {
	// load from config files
	{
		fileBytes, err := os.ReadFile("journalstat.yaml")
		if err == nil {
			if err = yaml.Unmarshal(fileBytes, &StdConfig); err != nil {
				fmt.Fprintf(os.Stderr, "fail to parse journalstat.yaml\n%s\n", string(fileBytes))
			}
		}
	}
	{
		fileBytes, err := os.ReadFile("journalstat.toml")
		if err == nil {
			if err = toml.Unmarshal(fileBytes, &StdConfig); err != nil {
				fmt.Fprintf(os.Stderr, "fail to parse journalstat.toml\n%s\n", string(fileBytes))
			}
		}
	}

	// load from env
	if s := os.Getenv("JS_INPUT"); s != "" {
		StdConfig.Input = s
	}
	if s := os.Getenv("JS_TOP_TALKERS"); s != "" {
		StdConfig.TopTalkers = cast.ToInt(s)
	}
	if s := os.Getenv("JS_LARGE_MESSAGES"); s != "" {
		StdConfig.LargeMessages = cast.ToInt(s)
	}
	if s := os.Getenv("JS_UNIT"); s != "" {
		StdConfig.Unit = s
	}
	if s := os.Getenv("JS_PATTERN"); s != "" {
		StdConfig.Pattern = s
	}
	if s := os.Getenv("JS_DEBUG"); s != "" {
		StdConfig.Debug = cast.ToBool(s)
	}

	if StdConfig.TopTalkers < 0 {
		StdConfig.TopTalkers = 0
	}
	if StdConfig.LargeMessages < 0 {
		StdConfig.LargeMessages = 0
	}

	return nil
}
