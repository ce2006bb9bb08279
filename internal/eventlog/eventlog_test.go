package eventlog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/fcsim/matchcore/sched"
)

type fixedTick sched.Tick

func (f fixedTick) CurrentTick() sched.Tick { return sched.Tick(f) }

func TestEntriesAreStampedWithCurrentTick(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	l := New(Config{Logger: logger, Ticks: fixedTick(42), EventsPerSecond: 1000})

	l.Info("kickoff")

	if !strings.Contains(buf.String(), "tick=42") {
		t.Fatalf("expected log entry to contain tick=42, got %q", buf.String())
	}
}

func TestErrorIsNeverRateLimited(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	l := New(Config{Logger: logger, Ticks: fixedTick(1), EventsPerSecond: 1})

	for i := 0; i < 50; i++ {
		l.Error("failure", "i", i)
	}

	count := strings.Count(buf.String(), "failure")
	if count != 50 {
		t.Fatalf("expected all 50 error entries to be logged, got %d", count)
	}
}

func TestDebugIsRateLimited(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := New(Config{Logger: logger, Ticks: fixedTick(1), EventsPerSecond: 1})

	for i := 0; i < 50; i++ {
		l.Debug("spam", "i", i)
	}

	count := strings.Count(buf.String(), "spam")
	if count >= 50 {
		t.Fatalf("expected debug rate limiting to drop entries, got %d of 50", count)
	}
}
