// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package egokit provides a slog.Handler that writes to a go-kit logger.
package egokit

import (
	"context"
	"log/slog"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"golang.org/x/exp/procgen/log-adapters/internal"
)

type handler struct {
	logger log.Logger
	min    slog.Leveler
	attrs  internal.Attrs
}

var _ slog.Handler = (*handler)(nil)

// NewHandler returns a handler that logs records at or above threshold
// through l, with keys "level", "ts" and "msg" ahead of the attributes.
// A nil threshold means slog.LevelInfo.
func NewHandler(l log.Logger, threshold slog.Leveler) slog.Handler {
	if threshold == nil {
		threshold = slog.LevelInfo
	}
	return &handler{logger: l, min: threshold}
}

func (h *handler) Enabled(_ context.Context, lv slog.Level) bool {
	return lv >= h.min.Level()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	kvs := make([]any, 0, 4+2*r.NumAttrs())
	if !r.Time.IsZero() {
		kvs = append(kvs, "ts", r.Time)
	}
	kvs = append(kvs, "msg", r.Message)
	kvs = append(kvs, h.attrs.KeyValues(r)...)
	return leveled(h.logger, r.Level).Log(kvs...)
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

func leveled(l log.Logger, lv slog.Level) log.Logger {
	switch {
	case lv < slog.LevelInfo:
		return level.Debug(l)
	case lv < slog.LevelWarn:
		return level.Info(l)
	case lv < slog.LevelError:
		return level.Warn(l)
	default:
		return level.Error(l)
	}
}
