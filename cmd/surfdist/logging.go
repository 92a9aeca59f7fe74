package main

import (
	"context"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// LogHandler writes one line per record:
//
//	2006/01/02 15:04:05 INFO message key=value key=value
//
// Attributes added with Logger.With come first, in order.
type LogHandler struct {
	level slog.Leveler
	mu    *sync.Mutex
	out   io.Writer
	attrs []slog.Attr
	group string
}

// NewLogHandler returns a handler writing to o. A nil opts logs at Info.
func NewLogHandler(o io.Writer, opts *slog.HandlerOptions) *LogHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &LogHandler{
		out:   o,
		level: level,
		mu:    &sync.Mutex{},
	}
}

// Enabled reports whether level reaches the configured minimum.
func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// WithAttrs returns a copy that prefixes every record with attrs.
func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	c.attrs = append(c.attrs, h.attrs...)
	for _, a := range attrs {
		c.attrs = append(c.attrs, slog.Attr{Key: h.prefix(a.Key), Value: a.Value})
	}
	return &c
}

// WithGroup returns a copy that qualifies later keys with name.
func (h *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.group = h.prefix(name)
	return &c
}

// prefix qualifies key with the open group, if any.
func (h *LogHandler) prefix(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

// Handle formats r as one line and writes it under the handler lock.
func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Time.Format("2006/01/02 15:04:05"))
	sb.WriteByte(' ')
	sb.WriteString(r.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&sb, a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.prefix(a.Key), a.Value)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.out, sb.String())
	return err
}

// writeAttr appends " key=value", quoting values with blanks or quotes.
func writeAttr(sb *strings.Builder, key string, v slog.Value) {
	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	s := v.Resolve().String()
	if strings.ContainsAny(s, " \t\"") {
		s = `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	sb.WriteString(s)
}
