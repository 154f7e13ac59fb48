// Package config provides configuration for the lookahead engine and its CLI.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=moves and results, 2=search diagnostics

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// OutputFilename is where the game record is written ("" = OutputFile).
	OutputFilename string

	Search *SearchConfig
	Output *OutputConfig
	Play   *PlayConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Search:     NewSearchConfig(),
		Output:     NewOutputConfig(),
		Play:       NewPlayConfig(),
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Play.Validate()
}
