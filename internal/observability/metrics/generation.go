package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// GenerationMetrics tracks review-text and poster-image generation outcomes.
type GenerationMetrics struct {
	reviewsGenerated *prometheus.CounterVec
	imagesGenerated  *prometheus.CounterVec
	renderDuration   *prometheus.HistogramVec
}

var (
	generationMetricsOnce sync.Once
	generationMetrics     *GenerationMetrics
)

// Generation returns the process-wide generation metrics.
func Generation() *GenerationMetrics {
	return GenerationWithConfig(Config{})
}

// GenerationWithConfig initialises the metrics on first use.
func GenerationWithConfig(cfg Config) *GenerationMetrics {
	generationMetricsOnce.Do(func() {
		generationMetrics = newGenerationMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return generationMetrics
}

// ResetGenerationMetricsForTest clears the singleton between tests.
func ResetGenerationMetricsForTest() {
	generationMetricsOnce = sync.Once{}
	generationMetrics = nil
}

func newGenerationMetrics(registerer prometheus.Registerer, cfg Config) *GenerationMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "voicepost"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	reviewsGenerated := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "voicepost_reviews_generated_total",
			Help:        "Review copies generated, by source (gemini | local).",
			ConstLabels: constLabels,
		},
		[]string{"source"},
	)

	imagesGenerated := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "voicepost_images_generated_total",
			Help:        "Poster images generated, by path and result.",
			ConstLabels: constLabels,
		},
		[]string{"path", "result"}, // path: raster | ai; result: ok | error
	)

	renderDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "voicepost_render_duration_seconds",
			Help:        "Wall time of one layout render plus rasterization.",
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			ConstLabels: constLabels,
		},
		[]string{"template_id"},
	)

	for _, collector := range []prometheus.Collector{reviewsGenerated, imagesGenerated, renderDuration} {
		if err := registerer.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			zap.L().Warn("generation metric registration failed", zap.Error(err))
		}
	}

	return &GenerationMetrics{
		reviewsGenerated: reviewsGenerated,
		imagesGenerated:  imagesGenerated,
		renderDuration:   renderDuration,
	}
}

// ObserveReview counts one generated review copy.
func (m *GenerationMetrics) ObserveReview(source string) {
	if m == nil {
		return
	}
	m.reviewsGenerated.WithLabelValues(source).Inc()
}

// ObserveImage counts one poster-image generation attempt.
func (m *GenerationMetrics) ObserveImage(path, result string) {
	if m == nil {
		return
	}
	m.imagesGenerated.WithLabelValues(path, result).Inc()
}

// ObserveRender records the wall time of one render.
func (m *GenerationMetrics) ObserveRender(templateID string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.renderDuration.WithLabelValues(templateID).Observe(elapsed.Seconds())
}
