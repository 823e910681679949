package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics.
const (
	MetricTransactionCreated     = "transaction_created"
	MetricTransactionDeleted     = "transaction_deleted"
	MetricBudgetEvaluated        = "budget_evaluated"
	MetricNotificationCreated    = "notification_created"
	MetricMailDelivery           = "mail_delivery"
	MetricFeedbackSubmitted      = "feedback_submitted"
	MetricBudgetRolledOver       = "budget_rolled_over"
	MetricCircuitBreakerState    = "circuit_breaker_state"
	MetricMailPublishDuration    = "mail_publish"
	MetricBudgetOverviewDuration = "budget_overview"
)

type PrometheusMetrics struct {
	transactionsCreated *prometheus.CounterVec
	transactionsDeleted prometheus.Counter
	budgetEvaluations   *prometheus.CounterVec
	notifications       *prometheus.CounterVec
	mailDeliveries      *prometheus.CounterVec
	feedbackSubmitted   *prometheus.CounterVec
	budgetRollovers     prometheus.Counter
	circuitBreakerState *prometheus.GaugeVec
	mailPublishDuration prometheus.Histogram
	overviewDuration    prometheus.Histogram
}

// NewPrometheusMetrics registers the service collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		transactionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_transactions_created_total",
				Help: "Total number of ledger entries recorded",
			},
			[]string{"type"},
		),
		transactionsDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "finance_transactions_deleted_total",
				Help: "Total number of ledger entries deleted",
			},
		),
		budgetEvaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_evaluations_total",
				Help: "Budget threshold evaluations by outcome",
			},
			[]string{"outcome"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_notifications_total",
				Help: "Budget notifications created by type",
			},
			[]string{"notification_type"},
		),
		mailDeliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_mail_deliveries_total",
				Help: "Notification mail hand-offs by status",
			},
			[]string{"status"},
		),
		feedbackSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feedback_submitted_total",
				Help: "Feedback submissions by type",
			},
			[]string{"type"},
		),
		budgetRollovers: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_rollovers_total",
				Help: "Auto-reset budgets moved to the current calendar window",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		mailPublishDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "notification_mail_publish_duration_milliseconds",
				Help:    "Time spent handing a notification to the mail broker",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		overviewDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_overview_duration_seconds",
				Help:    "Time spent building the budget overview",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricTransactionCreated:
		m.transactionsCreated.WithLabelValues(tags["type"]).Inc()
	case MetricTransactionDeleted:
		m.transactionsDeleted.Inc()
	case MetricBudgetEvaluated:
		if outcome := tags["outcome"]; outcome != "" {
			m.budgetEvaluations.WithLabelValues(outcome).Inc()
		}
	case MetricNotificationCreated:
		m.notifications.WithLabelValues(tags["notification_type"]).Inc()
	case MetricMailDelivery:
		if status := tags["status"]; status != "" {
			m.mailDeliveries.WithLabelValues(status).Inc()
		}
	case MetricFeedbackSubmitted:
		m.feedbackSubmitted.WithLabelValues(tags["type"]).Inc()
	case MetricBudgetRolledOver:
		m.budgetRollovers.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricMailPublishDuration:
		m.mailPublishDuration.Observe(float64(duration.Milliseconds()))
	case MetricBudgetOverviewDuration:
		m.overviewDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == MetricCircuitBreakerState {
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
