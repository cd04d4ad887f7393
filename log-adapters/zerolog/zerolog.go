// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ezerolog provides a slog.Handler that writes to a zerolog.Logger.
//
// The record time is not written; add it with
//
//	l.With().Timestamp().Logger()
//
// as for any other zerolog logger.
package ezerolog

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
	"golang.org/x/exp/procgen/log-adapters/internal"
)

type handler struct {
	logger zerolog.Logger
	attrs  internal.Attrs
}

var _ slog.Handler = (*handler)(nil)

func NewHandler(l zerolog.Logger) slog.Handler {
	return &handler{logger: l}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	zl := zerologLevel(level)
	return zl >= h.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	e := h.logger.WithLevel(zerologLevel(r.Level))
	if e == nil {
		return nil
	}
	for _, f := range h.attrs.Fields(r) {
		addField(e, f)
	}
	e.Msg(r.Message)
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

func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level < slog.LevelDebug:
		return zerolog.TraceLevel
	case level < slog.LevelInfo:
		return zerolog.DebugLevel
	case level < slog.LevelWarn:
		return zerolog.InfoLevel
	case level < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func addField(e *zerolog.Event, f internal.Field) {
	v := f.Value
	switch v.Kind() {
	case slog.KindBool:
		e.Bool(f.Key, v.Bool())
	case slog.KindDuration:
		e.Dur(f.Key, v.Duration())
	case slog.KindFloat64:
		e.Float64(f.Key, v.Float64())
	case slog.KindInt64:
		e.Int64(f.Key, v.Int64())
	case slog.KindString:
		e.Str(f.Key, v.String())
	case slog.KindTime:
		e.Time(f.Key, v.Time())
	case slog.KindUint64:
		e.Uint64(f.Key, v.Uint64())
	default:
		if err, ok := v.Any().(error); ok {
			e.AnErr(f.Key, err)
		} else {
			e.Interface(f.Key, v.Any())
		}
	}
}
