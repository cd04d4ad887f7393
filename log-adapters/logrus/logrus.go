// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elogrus provides a slog.Handler that writes to a logrus.Logger.
// To route the generators' logs through the standard logger:
//
//	l := slog.New(elogrus.NewHandler(logrus.StandardLogger()))
//	r, err := rand.New(seed, rand.WithLogger(l))
package elogrus

import (
	"context"
	"log/slog"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/procgen/log-adapters/internal"
)

type handler struct {
	logger *logrus.Logger
	attrs  internal.Attrs
}

var _ slog.Handler = (*handler)(nil)

func NewHandler(l *logrus.Logger) slog.Handler {
	return &handler{logger: l}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.IsLevelEnabled(logrusLevel(level))
}

// Handle logs r as one entry. Fields live in a map, so a key repeated in
// r replaces the earlier value.
func (h *handler) Handle(_ context.Context, r slog.Record) error {
	fs := h.attrs.Fields(r)
	data := make(logrus.Fields, len(fs))
	for _, f := range fs {
		data[f.Key] = f.Value.Any()
	}
	e := logrus.NewEntry(h.logger).WithFields(data)
	if !r.Time.IsZero() {
		e = e.WithTime(r.Time)
	}
	e.Log(logrusLevel(r.Level), r.Message)
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

func logrusLevel(level slog.Level) logrus.Level {
	switch {
	case level < slog.LevelDebug:
		return logrus.TraceLevel
	case level < slog.LevelInfo:
		return logrus.DebugLevel
	case level < slog.LevelWarn:
		return logrus.InfoLevel
	case level < slog.LevelError:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
