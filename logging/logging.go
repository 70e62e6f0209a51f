// Package logging builds the slog loggers used by the namecase CLI.
package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// PrettyJSONHandler is a custom handler that pretty prints JSON in development
type PrettyJSONHandler struct {
	*slog.JSONHandler
	writer io.Writer
	attrs  []groupedAttr
	groups []string
	mu     *sync.Mutex
}

// groupedAttr is an attribute added by Logger.With, kept with the groups
// that were open when it was added.
type groupedAttr struct {
	groups []string
	attr   slog.Attr
}

// NewPrettyJSONHandler creates a pretty JSON handler writing to w.
func NewPrettyJSONHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyJSONHandler {
	return &PrettyJSONHandler{
		JSONHandler: slog.NewJSONHandler(w, opts),
		writer:      w,
		mu:          &sync.Mutex{},
	}
}

func (h *PrettyJSONHandler) Handle(ctx context.Context, r slog.Record) error {
	out := make(map[string]any, len(h.attrs)+r.NumAttrs()+3)
	for _, ga := range h.attrs {
		addAttr(out, ga.groups, ga.attr)
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(out, h.groups, a)
		return true
	})

	out["time"] = r.Time.Format(time.RFC3339)
	out["level"] = r.Level.String()
	out["msg"] = r.Message

	prettyJSON, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.writer.Write(append(prettyJSON, '\n'))
	return err
}

// addAttr stores a under the nested objects named by groups. Group values
// become objects; a group with an empty key is inlined.
func addAttr(m map[string]any, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	for _, g := range groups {
		child, ok := m[g].(map[string]any)
		if !ok {
			child = make(map[string]any)
			m[g] = child
		}
		m = child
	}

	if a.Value.Kind() != slog.KindGroup {
		m[a.Key] = a.Value.Any()
		return
	}
	members := a.Value.Group()
	if len(members) == 0 {
		return
	}
	var sub []string
	if a.Key != "" {
		sub = []string{a.Key}
	}
	for _, member := range members {
		addAttr(m, sub, member)
	}
}

// WithAttrs keeps the pretty output for loggers created with Logger.With.
func (h *PrettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	next.JSONHandler = h.JSONHandler.WithAttrs(attrs).(*slog.JSONHandler)
	for _, a := range attrs {
		next.attrs = append(next.attrs, groupedAttr{groups: h.groups, attr: a})
	}
	return next
}

// WithGroup keeps the pretty output for loggers created with
// Logger.WithGroup. Later attributes are nested under name.
func (h *PrettyJSONHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.JSONHandler = h.JSONHandler.WithGroup(name).(*slog.JSONHandler)
	next.groups = append(append([]string{}, h.groups...), name)
	return next
}

func (h *PrettyJSONHandler) clone() *PrettyJSONHandler {
	return &PrettyJSONHandler{
		JSONHandler: h.JSONHandler,
		writer:      h.writer,
		attrs:       append([]groupedAttr{}, h.attrs...),
		groups:      h.groups,
		mu:          h.mu,
	}
}

// ParseLevel converts debug, info, warn or error into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New returns a logger writing to w in the given format: "json" for
// production, "pretty" for development, "text" for plain key=value lines.
func New(format, level string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "", "pretty":
		return slog.New(NewPrettyJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Discard is a logger that drops everything; used when no logger is given.
var Discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard
	}
	return l
}
