package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_RoutesByName(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry).(*PrometheusMetrics)

	metrics.IncrementCounter(MetricTransactionCreated, map[string]string{"type": "expenses"})
	metrics.IncrementCounter(MetricTransactionCreated, map[string]string{"type": "expenses"})
	metrics.IncrementCounter(MetricBudgetEvaluated, map[string]string{"outcome": EvaluationSuppressed})
	metrics.IncrementCounter(MetricBudgetEvaluated, nil)
	metrics.IncrementCounter(MetricMailDelivery, map[string]string{"status": "failed"})
	metrics.IncrementCounter("unknown_metric", nil)
	metrics.RecordGauge(MetricCircuitBreakerState, float64(StateOpen), map[string]string{"service": "mail"})
	metrics.RecordProcessingTime(MetricMailPublishDuration, 12*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.transactionsCreated.WithLabelValues("expenses")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.budgetEvaluations.WithLabelValues(EvaluationSuppressed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.mailDeliveries.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.circuitBreakerState.WithLabelValues("mail")))

	count, err := testutil.GatherAndCount(registry, "notification_mail_publish_duration_milliseconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
