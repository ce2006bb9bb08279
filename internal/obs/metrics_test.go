package obs

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterExposesCountersAndGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := Register(reg, "matchcore_test")

	m.EventsFired.WithLabelValues("BALL_PHYSICS").Inc()
	m.HeapDepth.Set(12)
	m.CurrentTick.Set(4000)

	if got := testutil.ToFloat64(m.EventsFired.WithLabelValues("BALL_PHYSICS")); got != 1 {
		t.Fatalf("EventsFired = %f, want 1", got)
	}
	if got := testutil.ToFloat64(m.HeapDepth); got != 12 {
		t.Fatalf("HeapDepth = %f, want 12", got)
	}
}

func TestRegisterTwiceOnSameRegistryPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg, "matchcore_test_dup")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic registering the same namespace twice")
		}
	}()
	Register(reg, "matchcore_test_dup")
}
