package main

import (
	"context"
	"log/slog"

	"github.com/sirupsen/logrus"
)

// logrusHandler is a slog.Handler that hands records to a logrus logger, so library packages logging through
// slog end up in the host's formatter once.
type logrusHandler struct {
	log    *logrus.Logger
	fields logrus.Fields
	group  string
}

func newLogrusHandler(log *logrus.Logger) *logrusHandler {
	return &logrusHandler{log: log, fields: logrus.Fields{}}
}

// logrusLevel maps a slog level onto the closest logrus level.
func logrusLevel(l slog.Level) logrus.Level {
	switch {
	case l >= slog.LevelError:
		return logrus.ErrorLevel
	case l >= slog.LevelWarn:
		return logrus.WarnLevel
	case l >= slog.LevelInfo:
		return logrus.InfoLevel
	case l >= slog.LevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

func (h *logrusHandler) Enabled(_ context.Context, l slog.Level) bool {
	return h.log.IsLevelEnabled(logrusLevel(l))
}

func (h *logrusHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(logrus.Fields, len(h.fields)+r.NumAttrs())
	for k, v := range h.fields {
		fields[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(fields, h.group, a)
		return true
	})
	entry := h.log.WithFields(fields)
	if !r.Time.IsZero() {
		entry = entry.WithTime(r.Time)
	}
	entry.Log(logrusLevel(r.Level), r.Message)
	return nil
}

func (h *logrusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make(logrus.Fields, len(h.fields)+len(attrs))
	for k, v := range h.fields {
		fields[k] = v
	}
	for _, a := range attrs {
		addAttr(fields, h.group, a)
	}
	return &logrusHandler{log: h.log, fields: fields, group: h.group}
}

func (h *logrusHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &logrusHandler{log: h.log, fields: h.fields, group: join(h.group, name)}
}

// addAttr flattens a into fields, prefixing keys with the dotted group path.
func addAttr(fields logrus.Fields, group string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = join(group, a.Key)
		}
		for _, ga := range v.Group() {
			addAttr(fields, prefix, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	fields[join(group, a.Key)] = v.Any()
}

func join(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
