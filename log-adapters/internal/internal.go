// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package internal holds the attribute handling shared by the slog adapters.
package internal

import (
	"log/slog"
	"time"

	"golang.org/x/exp/slices"
)

// A Field is a resolved, non-group attribute whose key is qualified by
// every group enclosing it, joined with dots.
type Field struct {
	Key   string
	Value slog.Value
}

// Attrs is the state added to a handler by WithAttrs and WithGroup.
// The zero value has no attributes and no open group.
type Attrs struct {
	prefix string
	fields []Field
}

// WithAttrs returns a copy of a with as appended under the open group.
func (a Attrs) WithAttrs(as []slog.Attr) Attrs {
	fields := slices.Clip(a.fields)
	for _, at := range as {
		fields = appendAttr(fields, a.prefix, at)
	}
	a.fields = fields
	return a
}

// WithGroup returns a copy of a with the group name opened.
// An empty name leaves a unchanged.
func (a Attrs) WithGroup(name string) Attrs {
	if name == "" {
		return a
	}
	a.prefix += name + "."
	return a
}

// Fields returns the stored fields followed by the flattened attributes of r.
func (a Attrs) Fields(r slog.Record) []Field {
	fields := make([]Field, len(a.fields), len(a.fields)+r.NumAttrs())
	copy(fields, a.fields)
	r.Attrs(func(at slog.Attr) bool {
		fields = appendAttr(fields, a.prefix, at)
		return true
	})
	return fields
}

// KeyValues returns the fields of r as alternating keys and values,
// the form taken by go-kit and logr.
func (a Attrs) KeyValues(r slog.Record) []any {
	fields := a.Fields(r)
	kvs := make([]any, 0, 2*len(fields))
	for _, f := range fields {
		kvs = append(kvs, f.Key, f.Value.Any())
	}
	return kvs
}

func appendAttr(fields []Field, prefix string, a slog.Attr) []Field {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		g := a.Value.Group()
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range g {
			fields = appendAttr(fields, prefix, ga)
		}
		return fields
	}
	if a.Key == "" {
		return fields
	}
	return append(fields, Field{Key: prefix + a.Key, Value: a.Value})
}

// TestAt is the time of every record built by NewTestRecord.
var TestAt = time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)

// NewTestRecord returns a record at TestAt carrying attrs.
func NewTestRecord(level slog.Level, msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(TestAt, level, msg, 0)
	r.AddAttrs(attrs...)
	return r
}
