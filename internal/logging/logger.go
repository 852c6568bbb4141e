package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"lexweave/internal/config"
)

// Options describes logger construction parameters. Output and error paths
// are merged into one deduplicated sink set, so listing the same file in
// both is safe.
type Options struct {
	Level            string
	Format           string
	OutputPaths      []string
	ErrorOutputPaths []string
}

// New constructs a slog logger for the requested format. Console output is
// a single aligned line per record; json emits one object per record with
// ts/level/msg keys. Caller locations appear only at debug level.
func New(opts Options) (*slog.Logger, error) {
	levelVar := new(slog.LevelVar)
	levelVar.Set(levelFor(opts.Level))
	withCaller := levelVar.Level() <= slog.LevelDebug

	sink, err := resolveSinks(opts)
	if err != nil {
		return nil, err
	}

	switch format := strings.ToLower(strings.TrimSpace(opts.Format)); format {
	case "", "console":
		return slog.New(newConsoleHandler(sink, levelVar, withCaller)), nil
	case "json":
		handlerOpts := slog.HandlerOptions{
			Level:       levelVar,
			AddSource:   withCaller,
			ReplaceAttr: normalizeJSONAttr,
		}
		return slog.New(slog.NewJSONHandler(sink, &handlerOpts)), nil
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}
}

// LogFilePath returns the pipeline log file for the config, or "" when file
// logging is disabled.
func LogFilePath(cfg *config.Config) string {
	if cfg == nil || cfg.Paths.LogDir == "" {
		return ""
	}
	return filepath.Join(cfg.Paths.LogDir, "lexweave.log")
}

// NewFromConfig builds the standard pipeline logger: console on stdout plus
// an append-mode file under the configured log directory.
func NewFromConfig(cfg *config.Config) (*slog.Logger, error) {
	opts := Options{
		Level:            "info",
		Format:           "console",
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if cfg == nil {
		return New(opts)
	}

	opts.Level = cfg.Logging.Level
	opts.Format = cfg.Logging.Format
	if logPath := LogFilePath(cfg); logPath != "" {
		if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
		opts.OutputPaths = append(opts.OutputPaths, logPath)
		opts.ErrorOutputPaths = append(opts.ErrorOutputPaths, logPath)
	}
	return New(opts)
}

func levelFor(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// resolveSinks unions output and error paths in order, keeping the first
// occurrence of each. "stdout" and "stderr" name the process streams; any
// other value is a file opened for append, parent directory created.
func resolveSinks(opts Options) (io.Writer, error) {
	paths := append(append([]string{}, opts.OutputPaths...), opts.ErrorOutputPaths...)

	seen := make(map[string]bool, len(paths))
	var sinks []io.Writer
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true

		sink, err := openSink(path)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}

	switch len(sinks) {
	case 0:
		return os.Stdout, nil
	case 1:
		return sinks[0], nil
	default:
		return io.MultiWriter(sinks...), nil
	}
}

func openSink(path string) (io.Writer, error) {
	switch path {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory %s: %w", dir, err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}

// normalizeJSONAttr renames the slog defaults to compact keys and pins
// timestamps to UTC so file records sort and grep predictably.
func normalizeJSONAttr(_ []string, attr slog.Attr) slog.Attr {
	switch attr.Key {
	case slog.TimeKey:
		attr.Key = "ts"
		if attr.Value.Kind() == slog.KindTime {
			attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339))
		}
	case slog.LevelKey:
		attr.Key = "level"
		attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
	case slog.MessageKey:
		attr.Key = "msg"
	case slog.SourceKey:
		if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
			attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
		}
	}
	return attr
}

// pair is a preformatted attribute ready to append to a console line.
type pair struct {
	key      string
	rendered string
}

// consoleHandler writes "<ts> <LEVEL> <component>: <msg> k=v" lines. The
// component attribute is promoted into the message prefix instead of
// trailing as a key=value pair. Attributes attached via With are rendered
// once up front; only per-record attributes are formatted on the hot path.
type consoleHandler struct {
	out        io.Writer
	outMu      *sync.Mutex
	level      *slog.LevelVar
	withCaller bool

	component string
	prefix    string
	fixed     []pair
}

func newConsoleHandler(out io.Writer, level *slog.LevelVar, withCaller bool) *consoleHandler {
	return &consoleHandler{out: out, outMu: new(sync.Mutex), level: level, withCaller: withCaller}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.fixed = append([]pair(nil), h.fixed...)
	for _, attr := range attrs {
		clone.absorb(attr)
	}
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = joinKey(clone.prefix, name)
	return &clone
}

// absorb preformats one With-attached attribute. The first component value
// claims the prefix slot; group values recurse with an extended key path.
func (h *consoleHandler) absorb(attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		saved := h.prefix
		if attr.Key != "" {
			h.prefix = joinKey(h.prefix, attr.Key)
		}
		for _, nested := range attr.Value.Group() {
			h.absorb(nested)
		}
		h.prefix = saved
		return
	}
	key := joinKey(h.prefix, attr.Key)
	if key == FieldComponent {
		if h.component == "" {
			h.component = plainValue(attr.Value)
		}
		return
	}
	if key == "" {
		return
	}
	h.fixed = append(h.fixed, pair{key: key, rendered: renderValue(attr.Value)})
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level < h.level.Level() {
		return nil
	}

	when := record.Time
	if when.IsZero() {
		when = time.Now()
	}

	component := h.component
	var recordPairs []pair
	record.Attrs(func(attr slog.Attr) bool {
		collectRecordAttr(&recordPairs, &component, h.prefix, attr)
		return true
	})

	var line strings.Builder
	line.Grow(96 + 24*(len(h.fixed)+len(recordPairs)))
	line.WriteString(when.UTC().Format(time.RFC3339))
	line.WriteByte(' ')
	line.WriteString(levelLabel(record.Level))
	line.WriteByte(' ')
	if component != "" {
		line.WriteString(component)
		line.WriteString(": ")
	}
	if msg := strings.TrimSpace(record.Message); msg != "" {
		line.WriteString(msg)
	} else {
		line.WriteString("(no message)")
	}
	if h.withCaller {
		if src := recordSource(record); src != nil {
			line.WriteString(" [")
			line.WriteString(filepath.Base(src.File))
			line.WriteByte(':')
			line.WriteString(strconv.Itoa(src.Line))
			line.WriteByte(']')
		}
	}
	for _, p := range h.fixed {
		line.WriteByte(' ')
		line.WriteString(p.key)
		line.WriteByte('=')
		line.WriteString(p.rendered)
	}
	for _, p := range recordPairs {
		line.WriteByte(' ')
		line.WriteString(p.key)
		line.WriteByte('=')
		line.WriteString(p.rendered)
	}
	line.WriteByte('\n')

	h.outMu.Lock()
	defer h.outMu.Unlock()
	_, err := io.WriteString(h.out, line.String())
	return err
}

// recordSource resolves the caller frame for a record; slog.Record.Source
// exists only on Go 1.25+, so older toolchains need this equivalent.
func recordSource(record slog.Record) *slog.Source {
	fs := runtime.CallersFrames([]uintptr{record.PC})
	f, _ := fs.Next()
	if f.Function == "" && f.File == "" {
		return nil
	}
	return &slog.Source{Function: f.Function, File: f.File, Line: f.Line}
}

// collectRecordAttr flattens one per-record attribute, claiming the
// component slot if it is still open.
func collectRecordAttr(dst *[]pair, component *string, prefix string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		nested := prefix
		if attr.Key != "" {
			nested = joinKey(prefix, attr.Key)
		}
		for _, member := range attr.Value.Group() {
			collectRecordAttr(dst, component, nested, member)
		}
		return
	}
	key := joinKey(prefix, attr.Key)
	if key == FieldComponent {
		if *component == "" {
			*component = plainValue(attr.Value)
		}
		return
	}
	if key == "" {
		return
	}
	*dst = append(*dst, pair{key: key, rendered: renderValue(attr.Value)})
}

func joinKey(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	default:
		return prefix + "." + key
	}
}

// plainValue renders a value without quoting, for the component prefix.
func plainValue(v slog.Value) string {
	v = v.Resolve()
	if v.Kind() == slog.KindString {
		return v.String()
	}
	if v.Kind() == slog.KindAny {
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return fmt.Sprint(v.Any())
	}
	return renderValue(v)
}

// renderValue formats an attribute value for key=value output, quoting
// strings that would break field splitting.
func renderValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().UTC().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return quoteIfNeeded(err.Error())
		}
		return quoteIfNeeded(fmt.Sprint(v.Any()))
	default:
		return quoteIfNeeded(v.String())
	}
}

func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			return strconv.Quote(s)
		}
	}
	return s
}

func levelLabel(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}
