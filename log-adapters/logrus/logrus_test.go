// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elogrus

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/exp/procgen/log-adapters/internal"
	"golang.org/x/exp/procgen/noise"
	"golang.org/x/exp/procgen/rand"
)

func Test(t *testing.T) {
	log, hook := test.NewNullLogger()
	h := NewHandler(log).
		WithAttrs([]slog.Attr{slog.String("resource", "R")}).
		WithGroup("g")
	r := internal.NewTestRecord(slog.LevelInfo, "mess",
		slog.Int("traceID", 17),
		slog.Group("sub", slog.String("name", "n/m")))
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatal(err)
	}

	e := hook.LastEntry()
	if e == nil {
		t.Fatal("no entry")
	}
	if e.Level != logrus.InfoLevel || e.Message != "mess" || !e.Time.Equal(internal.TestAt) {
		t.Errorf("entry = %v %q %v", e.Level, e.Message, e.Time)
	}
	want := logrus.Fields{
		"resource":   "R",
		"g.traceID":  int64(17),
		"g.sub.name": "n/m",
	}
	if diff := cmp.Diff(want, e.Data); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestEnabled(t *testing.T) {
	log, hook := test.NewNullLogger()
	l := slog.New(NewHandler(log))
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug enabled on an info logger")
	}
	l.Debug("dropped")
	l.Warn("kept")
	if n := len(hook.AllEntries()); n != 1 {
		t.Fatalf("got %d entries, want 1", n)
	}
	if got := hook.LastEntry().Level; got != logrus.WarnLevel {
		t.Errorf("level = %v, want warning", got)
	}
}

func TestNoiseLogs(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	l := slog.New(NewHandler(log))

	r, err := rand.New(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := noise.New(noise.Wavelet, 3, r, noise.WithLogger(l)); err != nil {
		t.Fatal(err)
	}
	e := hook.LastEntry()
	if e == nil || e.Message != "built noise generator" {
		t.Fatalf("last entry = %v", e)
	}
	want := logrus.Fields{"algorithm": "wavelet", "dimensions": int64(3)}
	if diff := cmp.Diff(want, e.Data); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}
