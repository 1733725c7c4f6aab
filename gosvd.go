// Package gosvd parses CMSIS-SVD device descriptions into a validated,
// strongly typed model and encodes such models back to SVD documents.
//
// The model and the per-entity parse/encode engine live in the svd
// package; the generic element tree they operate on lives in xmltree.
// This package ties the two together for whole documents and runs the
// derivedFrom resolution pass.
package gosvd

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/golangsvd/gosvd/svd"
	"github.com/golangsvd/gosvd/xmltree"
)

// LevelTrace is a custom log level more verbose than Debug.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// Option configures Parse.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	noResolve bool
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithoutDeriveResolution leaves derivedFrom references unresolved, for
// callers that want the document exactly as authored.
func WithoutDeriveResolution() Option {
	return func(c *config) { c.noResolve = true }
}

// Parse parses an SVD document and resolves derivedFrom references.
//
// Example:
//
//	dev, err := gosvd.Parse(data, gosvd.WithLogger(slog.Default()))
func Parse(data []byte, opts ...Option) (*svd.Device, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger

	tree, err := xmltree.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	dev, err := svd.ParseDevice(tree)
	if err != nil {
		return nil, err
	}
	if logEnabled(logger, slog.LevelDebug) {
		logger.LogAttrs(context.Background(), slog.LevelDebug, "parsed device",
			slog.String("device", dev.Name),
			slog.Int("peripherals", len(dev.Peripherals)))
	}
	if !cfg.noResolve {
		if err := dev.ResolveDerived(); err != nil {
			return nil, err
		}
		if logEnabled(logger, LevelTrace) {
			for _, p := range dev.Peripherals {
				if p.DerivedFrom == nil {
					continue
				}
				logger.LogAttrs(context.Background(), LevelTrace, "derived peripheral",
					slog.String("peripheral", p.Name),
					slog.String("from", *p.DerivedFrom))
			}
		}
	}
	return dev, nil
}

// Encode serializes a device model to an SVD document. Numeric fields
// take the canonical literal forms regardless of how the source was
// written.
func Encode(dev *svd.Device) ([]byte, error) {
	node, err := dev.Encode()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := node.Encode(&buf); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// logEnabled returns true if logging is enabled at the given level.
func logEnabled(logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(context.Background(), level)
}
