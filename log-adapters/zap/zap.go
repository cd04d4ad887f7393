// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ezap provides a slog.Handler that writes to a zap.Logger.
//
// Group names qualify keys with dots, so
//
//	slog.New(ezap.NewHandler(z)).WithGroup("noise").Info("m", "dims", 2)
//
// logs the zap field "noise.dims".
package ezap

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/procgen/log-adapters/internal"
)

type handler struct {
	logger *zap.Logger
	attrs  internal.Attrs
}

var _ slog.Handler = (*handler)(nil)

// NewHandler returns a handler that logs through l.
// Enabled defers to l's core.
func NewHandler(l *zap.Logger) slog.Handler {
	return &handler{logger: l}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Core().Enabled(zapLevel(level))
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	ce := h.logger.Check(zapLevel(r.Level), r.Message)
	if ce == nil {
		return nil
	}
	if !r.Time.IsZero() {
		ce.Time = r.Time
	}
	fs := h.attrs.Fields(r)
	zfs := make([]zapcore.Field, len(fs))
	for i, f := range fs {
		zfs[i] = newField(f)
	}
	ce.Write(zfs...)
	return nil
}

func (h *handler) WithAttrs(as []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = h.attrs.WithAttrs(as)
	return &h2
}

func (h *handler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.attrs = h.attrs.WithGroup(name)
	return &h2
}

// zapLevel rounds level down to the nearest zap level.
func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level < slog.LevelInfo:
		return zapcore.DebugLevel
	case level < slog.LevelWarn:
		return zapcore.InfoLevel
	case level < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func newField(f internal.Field) zapcore.Field {
	v := f.Value
	switch v.Kind() {
	case slog.KindBool:
		return zap.Bool(f.Key, v.Bool())
	case slog.KindDuration:
		return zap.Duration(f.Key, v.Duration())
	case slog.KindFloat64:
		return zap.Float64(f.Key, v.Float64())
	case slog.KindInt64:
		return zap.Int64(f.Key, v.Int64())
	case slog.KindString:
		return zap.String(f.Key, v.String())
	case slog.KindTime:
		return zap.Time(f.Key, v.Time())
	case slog.KindUint64:
		return zap.Uint64(f.Key, v.Uint64())
	default:
		return zap.Any(f.Key, v.Any())
	}
}
