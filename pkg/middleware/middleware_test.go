package middleware

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, name, comp string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	for _, fam := range families {
		if !strings.HasSuffix(fam.GetName(), name) {
			continue
		}
		for _, m := range fam.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "component" && l.GetValue() == comp {
					return metricValue(m)
				}
			}
		}
	}
	return 0
}

func metricValue(m *dto.Metric) float64 {
	if c := m.GetCounter(); c != nil {
		return c.GetValue()
	}
	if h := m.GetHistogram(); h != nil {
		return float64(h.GetSampleCount())
	}
	return 0
}

func TestPrometheusObserverCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewPrometheus(WithRegistry(reg), WithNamespace("test"))

	obs.ObserveRender("counter", 5*time.Millisecond, nil)
	obs.ObserveRender("counter", 3*time.Millisecond, nil)
	obs.ObserveRender("counter", time.Millisecond, errors.New("boom"))

	if got := gatherValue(t, reg, "renders_total", "counter"); got != 3 {
		t.Errorf("expected 3 renders, got %v", got)
	}
	if got := gatherValue(t, reg, "render_errors_total", "counter"); got != 1 {
		t.Errorf("expected 1 error, got %v", got)
	}
	if got := gatherValue(t, reg, "render_duration_seconds", "counter"); got != 3 {
		t.Errorf("expected 3 duration samples, got %v", got)
	}
}

func TestPrometheusObserverSeparatesComponents(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewPrometheus(WithRegistry(reg))

	obs.ObserveRender("a", time.Millisecond, nil)
	obs.ObserveRender("b", time.Millisecond, nil)
	obs.ObserveRender("b", time.Millisecond, nil)

	if got := gatherValue(t, reg, "renders_total", "a"); got != 1 {
		t.Errorf("expected 1 render for a, got %v", got)
	}
	if got := gatherValue(t, reg, "renders_total", "b"); got != 2 {
		t.Errorf("expected 2 renders for b, got %v", got)
	}
}

func TestOTelObserverFilter(t *testing.T) {
	// The global tracer provider defaults to a no-op; this exercises
	// the filter path and span construction without a collector.
	obs := OTel(WithComponentFilter(func(name string) bool { return name == "keep" }))

	obs.ObserveRender("keep", time.Millisecond, nil)
	obs.ObserveRender("drop", time.Millisecond, errors.New("x"))
	obs.ObserveRender("keep", time.Millisecond, errors.New("x"))
}
