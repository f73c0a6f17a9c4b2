package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// A slog handler which writes one human readable line per record:
// date|time|LEVEL|message|key=value, group.key=value
type ReadableTextHandler struct {
	options ReadableTextHandlerOptions
	mu      *sync.Mutex
	out     io.Writer
	groups  []handlerGroup
}

type ReadableTextHandlerOptions struct {
	// The minimum level to log. Defaults to Info.
	Level slog.Leveler
	// Omits the date and time columns, mainly for tests.
	OmitTime bool
}

type handlerGroup struct {
	name  string
	attrs []slog.Attr
}

func NewReadableTextHandler(out io.Writer, options *ReadableTextHandlerOptions) *ReadableTextHandler {
	handler := &ReadableTextHandler{out: out, mu: &sync.Mutex{}}
	if options == nil {
		options = &ReadableTextHandlerOptions{}
	}
	handler.options = *options
	if handler.options.Level == nil {
		handler.options.Level = slog.LevelInfo
	}
	// Create the root group
	handler.groups = []handlerGroup{{name: ""}}
	return handler
}

// Creates a logger with the readable handler and the level depending on the verbose flag.
func NewLogger(out io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(NewReadableTextHandler(out, &ReadableTextHandlerOptions{Level: level}))
}

func (h *ReadableTextHandler) Handle(ctx context.Context, record slog.Record) error {
	var sb strings.Builder
	if !h.options.OmitTime {
		sb.WriteString(record.Time.Format("2006-01-02|15:04:05.000|"))
	}
	sb.WriteString(fmt.Sprintf("%-5s|%s", record.Level.String(), record.Message))

	// Attributes added by "With/WithGroup" come first
	attrStrings := []string{}
	groupPrefix := ""
	for _, g := range h.groups {
		if g.name != "" {
			groupPrefix += g.name + "."
		}
		for _, a := range g.attrs {
			attrStrings = append(attrStrings, buildAttributes(a, groupPrefix)...)
		}
	}
	record.Attrs(func(a slog.Attr) bool {
		attrStrings = append(attrStrings, buildAttributes(a, groupPrefix)...)
		return true
	})
	if len(attrStrings) > 0 {
		sb.WriteString("|")
		sb.WriteString(strings.Join(attrStrings, ", "))
	}
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *ReadableTextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.options.Level.Level()
}

func (h *ReadableTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.groups = append(h2.groups, handlerGroup{name: name})
	return h2
}

func (h *ReadableTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := h.clone()
	last := &h2.groups[len(h2.groups)-1]
	last.attrs = append(last.attrs[:len(last.attrs):len(last.attrs)], attrs...)
	return h2
}

func (h *ReadableTextHandler) clone() *ReadableTextHandler {
	h2 := *h
	h2.groups = make([]handlerGroup, len(h.groups))
	copy(h2.groups, h.groups)
	return &h2
}

func buildAttributes(a slog.Attr, groupPrefix string) []string {
	a.Value = a.Value.Resolve()
	// Ignore empty attributes
	if a.Equal(slog.Attr{}) {
		return nil
	}
	if a.Value.Kind() != slog.KindGroup {
		return []string{fmt.Sprintf("%s%s=%s", groupPrefix, a.Key, a.Value.String())}
	}
	attrs := a.Value.Group()
	if len(attrs) == 0 {
		return nil
	}
	if a.Key != "" {
		groupPrefix += a.Key + "."
	}
	attrStrings := []string{}
	for _, groupAttr := range attrs {
		attrStrings = append(attrStrings, buildAttributes(groupAttr, groupPrefix)...)
	}
	return attrStrings
}
