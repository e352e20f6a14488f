package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel    = "ISAFLOW_LOG_LEVEL"
	EnvLogFormat   = "ISAFLOW_LOG_FORMAT"
	EnvGraphFormat = "ISAFLOW_GRAPH_FORMAT"
	EnvReplicas    = "ISAFLOW_REPLICAS"
)

// CLIConfig holds configuration for the isaflow command.
type CLIConfig struct {
	LogLevel    string // Log level: debug, info, warn, error
	LogFormat   string // Log format: text, json
	GraphFormat string // Graph output: dot, json
	Replicas    int    // Replica override; 0 keeps the template's count
	SharedRefs  bool   // Keep derives_from/term_source shared with prototypes
}

// DefaultCLIConfig returns sensible defaults.
func DefaultCLIConfig() CLIConfig {
	return CLIConfig{
		LogLevel:    "info",
		LogFormat:   "text",
		GraphFormat: "dot",
	}
}

// ApplyEnv overrides fields from ISAFLOW_* environment variables. Unset or
// empty variables leave the field unchanged.
func (c *CLIConfig) ApplyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv(EnvGraphFormat); v != "" {
		c.GraphFormat = v
	}
	if v := os.Getenv(EnvReplicas); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvReplicas, err)
		}
		c.Replicas = n
	}
	return nil
}

// Validate checks the fields that have a closed set of values.
func (c CLIConfig) Validate() error {
	switch c.GraphFormat {
	case "dot", "json":
	default:
		return fmt.Errorf("unknown graph format %q (want dot or json)", c.GraphFormat)
	}
	if c.Replicas < 0 {
		return fmt.Errorf("replicas must not be negative, got %d", c.Replicas)
	}
	return nil
}
