// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package egokit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/procgen/log-adapters/internal"
	"golang.org/x/exp/procgen/rand"
)

func Test(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(log.NewLogfmtLogger(&buf), slog.LevelDebug).
		WithAttrs([]slog.Attr{slog.String("resource", "R")}).
		WithGroup("g")
	r := internal.NewTestRecord(slog.LevelDebug, "mess",
		slog.Int("traceID", 17),
		slog.Group("sub", slog.String("name", "n/m")))
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	want := "level=debug ts=2026-03-14T15:09:26Z msg=mess resource=R g.traceID=17 g.sub.name=n/m\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestEnabled(t *testing.T) {
	var got [][]any
	l := slog.New(NewHandler(log.LoggerFunc(func(kvs ...any) error {
		got = append(got, kvs)
		return nil
	}), nil))
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug enabled with the default minimum")
	}
	l.Debug("dropped")
	l.Error("kept")
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1", len(got))
	}
	if lv := got[0][1].(interface{ String() string }).String(); lv != "error" {
		t.Errorf("level = %q, want error", lv)
	}
}

func TestLogError(t *testing.T) {
	errWrite := errors.New("write failed")
	h := NewHandler(log.LoggerFunc(func(...any) error { return errWrite }), nil)
	err := h.Handle(context.Background(), internal.NewTestRecord(slog.LevelInfo, "m"))
	if !errors.Is(err, errWrite) {
		t.Errorf("got %v, want %v", err, errWrite)
	}
}

func TestSeedLogs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(log.NewLogfmtLogger(&buf), slog.LevelDebug))
	if _, err := rand.NewFromKey([]uint32{1, 2, 3}, rand.WithLogger(l)); err != nil {
		t.Fatal(err)
	}
	line := buf.String()
	for _, want := range []string{"level=debug", "msg=\"seeded generator\"", "algorithm=cmwc", "key_words=3"} {
		if !strings.Contains(line, want) {
			t.Errorf("%q does not contain %q", line, want)
		}
	}
}
