package flow

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/vango-dev/flow/internal/errors"
)

// Warning is a non-fatal diagnostic reported by a helper.
// Rendering always continues after a warning.
type Warning struct {
	Code    string // Registered code, e.g. "W004"
	Helper  string // "For", "If", "Switch" or "Let"
	Message string // Short description
	Detail  string // Longer explanation
}

// String returns "Helper: Code: Message".
func (w Warning) String() string {
	return w.Helper + ": " + w.Code + ": " + w.Message
}

// Sink receives warnings emitted while rendering.
type Sink interface {
	Warn(w Warning)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(w Warning)

// Warn implements Sink.
func (f SinkFunc) Warn(w Warning) {
	f(w)
}

// Discard drops every warning.
var Discard Sink = SinkFunc(func(Warning) {})

type logSink struct {
	logger *slog.Logger
}

// LogSink returns a Sink that logs each warning at warn level.
// A nil logger resolves to slog.Default() at the time of each warning.
func LogSink(logger *slog.Logger) Sink {
	return &logSink{logger: logger}
}

func (s *logSink) Warn(w Warning) {
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn(w.Message,
		slog.String("code", w.Code),
		slog.String("helper", w.Helper),
	)
}

type multiSink []Sink

// Multi returns a Sink that forwards every warning to each non-nil sink in order.
func Multi(sinks ...Sink) Sink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multiSink) Warn(w Warning) {
	for _, s := range m {
		s.Warn(w)
	}
}

// Recorder is a Sink that keeps every warning it receives.
// It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	warnings []Warning
}

// Warn implements Sink.
func (r *Recorder) Warn(w Warning) {
	r.mu.Lock()
	r.warnings = append(r.warnings, w)
	r.mu.Unlock()
}

// Warnings returns a copy of the recorded warnings.
func (r *Recorder) Warnings() []Warning {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.warnings)
}

// Codes returns the codes of the recorded warnings in order.
func (r *Recorder) Codes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	codes := make([]string, len(r.warnings))
	for i, w := range r.warnings {
		codes[i] = w.Code
	}
	return codes
}

// Len returns the number of recorded warnings.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.warnings)
}

// Reset drops all recorded warnings.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.warnings = nil
	r.mu.Unlock()
}

type sinkHolder struct {
	sink Sink
}

var defaultSink atomic.Pointer[sinkHolder]

// DefaultSink returns the sink used by helpers that were not given WithSink.
// Until SetDefaultSink is called it logs through slog.Default().
func DefaultSink() Sink {
	if h := defaultSink.Load(); h != nil {
		return h.sink
	}
	return LogSink(nil)
}

// SetDefaultSink replaces the process-wide default sink.
// Passing nil restores logging through slog.Default().
func SetDefaultSink(s Sink) {
	if s == nil {
		defaultSink.Store(nil)
		return
	}
	defaultSink.Store(&sinkHolder{sink: s})
}

// SinkOption routes the warnings of a single helper call.
type SinkOption struct {
	sink Sink
}

// WithSink sends the warnings of one helper call to s instead of the default sink.
func WithSink(s Sink) SinkOption {
	return SinkOption{sink: s}
}

// reporter emits coded warnings on behalf of one helper call.
type reporter struct {
	helper string
	sink   Sink
}

func newReporter(helper string) reporter {
	return reporter{helper: helper, sink: DefaultSink()}
}

// use switches to the sink carried by opt, if any.
func (r *reporter) use(opt SinkOption) {
	if opt.sink != nil {
		r.sink = opt.sink
	}
}

func (r reporter) warn(code string) {
	e := errors.New(code)
	r.sink.Warn(Warning{
		Code:    code,
		Helper:  r.helper,
		Message: e.Message,
		Detail:  e.Detail,
	})
}
