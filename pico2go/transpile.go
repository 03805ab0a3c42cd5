package pico2go

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"

	"github.com/akrennmair/pico/internal/logging"
	"github.com/akrennmair/pico/parser"
)

const (
	// DefaultRuntime is the import path of the runtime package that
	// generated programs use.
	DefaultRuntime = "github.com/akrennmair/pico/pico2go/system"

	// DefaultHeader marks the output as generated code.
	DefaultHeader = "Code generated by pico2go. DO NOT EDIT."
)

type options struct {
	runtime string
	header  string
	logger  *slog.Logger
}

// Option configures Transpile.
type Option func(*options)

// WithRuntime sets the import path of the runtime package. It must provide
// the same API as the system package.
func WithRuntime(importPath string) Option {
	return func(o *options) {
		if importPath != "" {
			o.runtime = importPath
		}
	}
}

// WithHeader sets the comment at the top of the generated file. An empty
// header omits the comment.
func WithHeader(header string) Option {
	return func(o *options) {
		o.header = header
	}
}

// WithLogger sets the logger that receives debug output about the generated
// code and the source of code that fails to format. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Transpile turns prog into the source code of a Go main package.
func Transpile(prog *parser.Program, opts ...Option) (string, error) {
	o := options{
		runtime: DefaultRuntime,
		header:  DefaultHeader,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	data := struct {
		Header  string
		Runtime string
		Program *parser.Program
	}{
		Header:  o.header,
		Runtime: o.runtime,
		Program: prog,
	}

	var buf bytes.Buffer

	if err := transpilerTemplate.ExecuteTemplate(&buf, "main", data); err != nil {
		return "", fmt.Errorf("failed to generate Go source code: %w", err)
	}

	o.logger.Debug("Generated Go source code", "program", prog.Name, "bytes", buf.Len())

	goSource, err := format.Source(buf.Bytes())
	if err != nil {
		o.logger.Error("Generated Go source code is invalid", "program", prog.Name, "error", err, "source", buf.String())
		return "", fmt.Errorf("failed to format generated Go source code: %w", err)
	}

	return string(goSource), nil
}
