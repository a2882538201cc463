// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record
// in the form "LEVEL message key=value ...", coloring the level
// when the output supports it.
type Handler struct {
	level  slog.Leveler
	out    *termenv.Output
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string
}

// NewHandler returns a new [Handler] writing to w at the given level.
// Colors are only used when w is a terminal.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	profile := termenv.Ascii
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		profile = termenv.EnvColorProfile()
	}
	return &Handler{
		level: level,
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		mu:    &sync.Mutex{},
	}
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

// levelString returns the fixed-width level label in its color.
func (h *Handler) levelString(l slog.Level) string {
	label := fmt.Sprintf("%-5s", l.String())
	st := h.out.String(label)
	switch {
	case l >= slog.LevelError:
		st = st.Foreground(termenv.ANSIRed).Bold()
	case l >= slog.LevelWarn:
		st = st.Foreground(termenv.ANSIYellow)
	case l >= slog.LevelInfo:
		st = st.Foreground(termenv.ANSICyan)
	default:
		st = st.Foreground(termenv.ANSIBrightBlack)
	}
	return st.String()
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(sb, prefix+a.Key+".", ga)
		}
		return
	}
	val := a.Value.String()
	if strings.ContainsAny(val, " \t\n\"=") {
		val = fmt.Sprintf("%q", val)
	}
	fmt.Fprintf(sb, " %s%s=%s", prefix, a.Key, val)
}
