package logging

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

const consoleTimestampLayout = "2006-01-02 15:04:05"

// consoleHandler renders one human-oriented line per record: a local
// timestamp, level label, optional component prefix, the message, then
// flattened key=value attributes. Attributes bound with WithAttrs are
// formatted once and replayed on every record.
type consoleHandler struct {
	out       io.Writer
	mu        *sync.Mutex
	level     *slog.LevelVar
	addSource bool

	component string
	prefix    string // dotted group path applied to subsequent keys
	bound     string // preformatted WithAttrs output, leading space included
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return &consoleHandler{out: w, mu: new(sync.Mutex), level: lvl, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	var sb strings.Builder
	for _, attr := range attrs {
		// The first component attribute becomes the message prefix
		// instead of a key=value pair.
		if attr.Key == FieldComponent && h.prefix == "" {
			if clone.component == "" {
				clone.component = attr.Value.Resolve().String()
			}
			continue
		}
		appendAttr(&sb, h.prefix, attr)
	}
	clone.bound = h.bound + sb.String()
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level < h.level.Level() {
		return nil
	}

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var sb strings.Builder
	sb.Grow(96)
	sb.WriteString(ts.In(time.Local).Format(consoleTimestampLayout))
	sb.WriteByte(' ')
	sb.WriteString(levelLabel(record.Level))
	sb.WriteByte(' ')
	if h.component != "" {
		sb.WriteString(h.component)
		sb.WriteString(": ")
	}
	if msg := strings.TrimSpace(record.Message); msg != "" {
		sb.WriteString(msg)
	} else {
		sb.WriteString("(no message)")
	}
	if h.addSource {
		if src := recordSource(record); src != nil {
			sb.WriteString(" [")
			sb.WriteString(filepath.Base(src.File))
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(src.Line))
			sb.WriteByte(']')
		}
	}

	sb.WriteString(h.bound)
	record.Attrs(func(attr slog.Attr) bool {
		appendAttr(&sb, h.prefix, attr)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

// recordSource mirrors (slog.Record).Source, which requires Go 1.25+: it
// resolves the record's PC to a Source, or nil when the PC is absent.
func recordSource(record slog.Record) *slog.Source {
	frames := runtime.CallersFrames([]uintptr{record.PC})
	frame, _ := frames.Next()
	if frame.Function == "" && frame.File == "" {
		return nil
	}
	return &slog.Source{Function: frame.Function, File: frame.File, Line: frame.Line}
}

// appendAttr writes " key=value" for attr, expanding group values into
// dotted keys. Empty attrs vanish, per slog handler conventions.
func appendAttr(sb *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		next := prefix
		if attr.Key != "" {
			next = prefix + attr.Key + "."
		}
		for _, nested := range attr.Value.Group() {
			appendAttr(sb, next, nested)
		}
		return
	}
	if attr.Key == "" {
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(attr.Key)
	sb.WriteByte('=')
	sb.WriteString(consoleValue(attr.Value))
}

// consoleValue renders a resolved value for key=value output, quoting
// anything a space-delimited reader could misparse.
func consoleValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().UTC().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return quoteIfNeeded(err.Error())
		}
	}
	return quoteIfNeeded(v.String())
}

func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	clean := strings.IndexFunc(s, func(r rune) bool {
		return r <= ' ' || r == '=' || r == '"'
	}) < 0
	if clean {
		return s
	}
	return strconv.Quote(s)
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
