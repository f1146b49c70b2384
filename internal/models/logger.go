package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// gormLogger forwards GORM's log output to zerolog so that query logs
// end up in the same stream and format as the rest of the backend.
type gormLogger struct {
	log zerolog.Logger
}

// LogMode is a no-op, the level of the underlying zerolog logger
// applies.
func (g *gormLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return g
}

func (g *gormLogger) Info(_ context.Context, msg string, args ...any) {
	g.log.Info().Msgf(msg, args...)
}

func (g *gormLogger) Warn(_ context.Context, msg string, args ...any) {
	g.log.Warn().Msgf(msg, args...)
}

func (g *gormLogger) Error(_ context.Context, msg string, args ...any) {
	g.log.Error().Msgf(msg, args...)
}

// Trace logs every query with its duration and affected row count.
// Queries ending in ErrResourceNotFound are not logged as errors,
// callers handle that case.
func (g *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()

	event := g.log.Debug()
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		event = g.log.Error().Err(err)
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", time.Since(begin)).
		Msg("query")
}
