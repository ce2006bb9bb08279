// Package eventlog provides a typed log method set that captures the calling
// tick automatically. It lives under internal/ rather than being part of the
// public API surface any host is required to depend on.
package eventlog

import (
	"log/slog"

	"github.com/fcsim/matchcore/sched"
	"golang.org/x/time/rate"
)

// TickSource supplies the tick to stamp log entries with. *sched.Scheduler
// satisfies this trivially via its CurrentTick method.
type TickSource interface {
	CurrentTick() sched.Tick
}

// Log stamps every entry with the current tick and rate-limits Debug/Info/
// Warning so a pathological AI plug-in logging every tick of a 5.5-million
// tick match cannot flood the host process; Error is never rate-limited.
type Log struct {
	logger *slog.Logger
	ticks  TickSource

	debugLimiter   *rate.Limiter
	infoLimiter    *rate.Limiter
	warningLimiter *rate.Limiter
}

// Config configures a Log. A nil Logger defaults to slog.Default().
type Config struct {
	Logger *slog.Logger
	Ticks  TickSource
	// EventsPerSecond bounds Debug/Info/Warning throughput, simulated-tick
	// relative at normal speed. Zero selects a sensible default.
	EventsPerSecond float64
}

// New builds a Log from cfg.
func New(cfg Config) *Log {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.EventsPerSecond <= 0 {
		cfg.EventsPerSecond = 200
	}
	burst := int(cfg.EventsPerSecond / 10)
	if burst < 1 {
		burst = 1
	}
	return &Log{
		logger:         cfg.Logger,
		ticks:          cfg.Ticks,
		debugLimiter:   rate.NewLimiter(rate.Limit(cfg.EventsPerSecond), burst),
		infoLimiter:    rate.NewLimiter(rate.Limit(cfg.EventsPerSecond), burst),
		warningLimiter: rate.NewLimiter(rate.Limit(cfg.EventsPerSecond), burst),
	}
}

// BindTicks sets the tick source used to stamp log entries. Callers that
// build a Log before the scheduler they want to stamp against exists (e.g.
// to hand the same Log into Match.Config) call this once the scheduler is
// available.
func (l *Log) BindTicks(ts TickSource) {
	l.ticks = ts
}

func (l *Log) tick() sched.Tick {
	if l.ticks == nil {
		return 0
	}
	return l.ticks.CurrentTick()
}

// Debug logs msg at debug level, dropping it silently if the debug rate
// limit has been exceeded.
func (l *Log) Debug(msg string, args ...any) {
	if !l.debugLimiter.Allow() {
		return
	}
	l.logger.Debug(msg, append([]any{"tick", l.tick()}, args...)...)
}

// Info logs msg at info level, dropping it silently if the info rate limit
// has been exceeded.
func (l *Log) Info(msg string, args ...any) {
	if !l.infoLimiter.Allow() {
		return
	}
	l.logger.Info(msg, append([]any{"tick", l.tick()}, args...)...)
}

// Warning logs msg at warn level, dropping it silently if the warning rate
// limit has been exceeded.
func (l *Log) Warning(msg string, args ...any) {
	if !l.warningLimiter.Allow() {
		return
	}
	l.logger.Warn(msg, append([]any{"tick", l.tick()}, args...)...)
}

// Error logs msg at error level. Never rate-limited: every failure must
// reach the log with its tick.
func (l *Log) Error(msg string, args ...any) {
	l.logger.Error(msg, append([]any{"tick", l.tick()}, args...)...)
}
