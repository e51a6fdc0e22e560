package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestGenerationMetricsResultLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newGenerationMetrics(reg, Config{ServiceName: "voicepost", Environment: "test"})

	m.ObserveImage("raster", "ok")
	m.ObserveImage("ai", "error")
	m.ObserveReview("local")
	m.ObserveRender("tpl-000", 120*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	results := map[string]bool{}
	for _, fam := range families {
		if fam.GetName() != "voicepost_images_generated_total" {
			continue
		}
		for _, metric := range fam.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "result" {
					results[label.GetValue()] = true
				}
			}
		}
	}
	if !results["ok"] || !results["error"] {
		t.Fatalf("expected ok and error result labels, got %v", results)
	}
	if results["failed"] {
		t.Fatalf("unexpected failed result label")
	}
}

func TestGenerationMetricsReregistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	newGenerationMetrics(reg, Config{})
	m := newGenerationMetrics(reg, Config{})
	if m == nil {
		t.Fatalf("expected metrics even when collectors already registered")
	}
	m.ObserveImage("raster", "ok")
}
