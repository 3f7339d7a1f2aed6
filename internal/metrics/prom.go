package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PasswordsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passgen_passwords_generated_total",
			Help: "Total number of generated passwords by strength level",
		},
		[]string{"level"},
	)

	StrengthChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passgen_strength_checks_total",
			Help: "Total number of strength checks by strength level",
		},
		[]string{"level"},
	)

	Errors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passgen_errors_total",
			Help: "Total number of failed operations by operation and reason",
		},
		[]string{"operation", "reason"},
	)

	PasswordLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "passgen_password_length",
			Help:    "Length of generated passwords",
			Buckets: []float64{4, 8, 12, 16, 24, 32, 50, 64, 128},
		},
	)
)

// RecordGeneration counts a generated password.
func RecordGeneration(level string, length int) {
	PasswordsGenerated.WithLabelValues(level).Inc()
	PasswordLength.Observe(float64(length))
}

// RecordStrengthCheck counts a standalone strength check.
func RecordStrengthCheck(level string) {
	StrengthChecks.WithLabelValues(level).Inc()
}

// RecordError counts a failed operation.
func RecordError(operation, reason string) {
	Errors.WithLabelValues(operation, reason).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
