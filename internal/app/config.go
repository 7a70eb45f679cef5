package app

import (
	"errors"
	"fmt"
)

// StdinPath is the InputPath value that makes the app read jobs from stdin.
const StdinPath = "-"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string // file, directory or StdinPath
	InlineJobs string // text-grammar jobs, used when InputPath is empty

	Separator    string
	OutputFormat string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath != "" && cfg.InlineJobs != "" {
		return nil, errors.New("InputPath and InlineJobs are mutually exclusive")
	}

	switch cfg.OutputFormat {
	case "":
		cfg.OutputFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid OutputFormat %q: must be 'text' or 'json'", cfg.OutputFormat)
	}

	return &cfg, nil
}
