// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elogr provides a slog.Handler that writes to a logr.Logger.
//
// Records below slog.LevelError become Info calls at verbosity -level,
// so slog.LevelDebug logs at V(4); warnings log at V(0).
// Records at or above slog.LevelError become Error calls with a nil error.
package elogr

import (
	"context"
	"log/slog"

	"github.com/go-logr/logr"
	"golang.org/x/exp/procgen/log-adapters/internal"
)

type handler struct {
	logger logr.Logger
	attrs  internal.Attrs
}

var _ slog.Handler = (*handler)(nil)

func NewHandler(l logr.Logger) slog.Handler {
	return &handler{logger: l}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	if level >= slog.LevelError {
		return h.logger.GetSink() != nil
	}
	return h.logger.V(verbosity(level)).Enabled()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	kvs := h.attrs.KeyValues(r)
	if r.Level >= slog.LevelError {
		h.logger.Error(nil, r.Message, kvs...)
	} else {
		h.logger.V(verbosity(r.Level)).Info(r.Message, kvs...)
	}
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

func verbosity(level slog.Level) int {
	if level >= slog.LevelInfo {
		return 0
	}
	return -int(level)
}
