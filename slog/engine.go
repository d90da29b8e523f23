// Package slog provides logging decorators for camelot services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/kiyo-matsu/camelot"
)

// Ensure LoggingEngine implements camelot.Engine.
var _ camelot.Engine = (*LoggingEngine)(nil)

// LoggingEngine wraps an Engine with debug logging.
type LoggingEngine struct {
	next   camelot.Engine
	logger *slog.Logger
}

// NewLoggingEngine creates a new LoggingEngine.
func NewLoggingEngine(next camelot.Engine, logger *slog.Logger) *LoggingEngine {
	return &LoggingEngine{next: next, logger: logger}
}

// Open delegates to the wrapped engine and logs the operation.
func (e *LoggingEngine) Open(ctx context.Context, path, password string) (doc camelot.Document, err error) {
	defer func(begin time.Time) {
		e.logger.Info("open document",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Open(ctx, path, password)
}

// Rotate delegates to the wrapped engine and logs the operation.
func (e *LoggingEngine) Rotate(ctx context.Context, path string, degrees int) (err error) {
	defer func(begin time.Time) {
		e.logger.Info("rotate page",
			"path", path,
			"degrees", degrees,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Rotate(ctx, path, degrees)
}

// Ensure LoggingParser implements camelot.Parser.
var _ camelot.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   camelot.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next camelot.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ExtractTables delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) ExtractTables(ctx context.Context, pagePath string, pageNumber int) (tables camelot.TableList, err error) {
	defer func(begin time.Time) {
		p.logger.Info("extract tables",
			"page", pageNumber,
			"count", len(tables),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ExtractTables(ctx, pagePath, pageNumber)
}
