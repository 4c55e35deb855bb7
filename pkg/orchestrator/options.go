package orchestrator

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-patterns/pkg/console"
	"github.com/goliatone/go-patterns/pkg/document"
	"github.com/goliatone/go-patterns/pkg/prompt"
)

// Option customises a command loop.
type Option func(*config)

type config struct {
	driver  prompt.Driver
	printer console.Printer
	logger  *slog.Logger
	builder *document.Builder
}

// WithPromptDriver overrides the input driver (survey by default).
func WithPromptDriver(driver prompt.Driver) Option {
	return func(c *config) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithPrinter overrides the console printer (stdout tables by default).
func WithPrinter(printer console.Printer) Option {
	return func(c *config) {
		if printer != nil {
			c.printer = printer
		}
	}
}

// WithLogger attaches a logger for dispatch tracing. Output is discarded
// unless a logger is supplied.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBuilder injects the document builder used by DocumentCLI instead of the
// shared document.Instance().
func WithBuilder(builder *document.Builder) Option {
	return func(c *config) {
		if builder != nil {
			c.builder = builder
		}
	}
}

func newConfig(options []Option) config {
	var c config
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&c)
	}
	if c.driver == nil {
		c.driver = prompt.NewSurveyDriver()
	}
	if c.printer == nil {
		c.printer = console.New()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}
