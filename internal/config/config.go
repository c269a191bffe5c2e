// Package config provides configuration for the farce engine.
package config

import (
	"io"
	"log"
	"os"

	"github.com/lgbarn/farce-go/internal/errors"
)

// Verbosity levels for diagnostics written to LogFile.
const (
	Silent     = 0 // nothing
	ErrorsOnly = 1 // rejected commands and failed searches
	Commentary = 2 // running commentary on every command and search
)

// Config holds all program configuration.
type Config struct {
	// Identity reported in answer to "uci"
	EngineName string
	Author     string

	// Diagnostics. LogFile must never be the protocol stream.
	LogFile   io.Writer
	Verbosity int // 0=nothing, 1=errors, 2=running commentary

	// Worker inbound queue capacity
	InboxSize int

	// Start with UCI debug mode on
	Debug bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		EngineName: "farce",
		Author:     "Kef Schecter",
		LogFile:    os.Stderr,
		Verbosity:  ErrorsOnly,
		InboxSize:  64,
	}
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	switch {
	case c.EngineName == "":
		return errors.Wrap(errors.ErrInvalidConfig, "engine name is empty")
	case c.Verbosity < Silent || c.Verbosity > Commentary:
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range 0-2", c.Verbosity)
	case c.InboxSize < 1:
		return errors.Wrapf(errors.ErrInvalidConfig, "inbox size %d must be at least 1", c.InboxSize)
	case c.LogFile == nil:
		return errors.Wrap(errors.ErrInvalidConfig, "no log file")
	}
	return nil
}

// SetLogFile sets the diagnostics writer.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Logger returns a logger over LogFile, or one that discards everything
// when Verbosity is Silent.
func (c *Config) Logger() *log.Logger {
	if c.Verbosity == Silent || c.LogFile == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(c.LogFile, c.EngineName+": ", log.LstdFlags)
}
