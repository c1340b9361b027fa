package reminder

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the scheduler's prometheus collectors.
type Metrics struct {
	Dispatched       *prometheus.CounterVec
	DeliveryFailures *prometheus.CounterVec
	Skipped          *prometheus.CounterVec
	TickDuration     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg when reg is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lessonbell",
			Name:      "reminders_dispatched_total",
			Help:      "Reminders handed to the notifier successfully.",
		}, []string{"threshold"}),
		DeliveryFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lessonbell",
			Name:      "reminder_delivery_failures_total",
			Help:      "Reminders marked as sent whose delivery failed.",
		}, []string{"threshold"}),
		Skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lessonbell",
			Name:      "reminders_skipped_total",
			Help:      "Due reminders skipped because they were already sent.",
		}, []string{"threshold"}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lessonbell",
			Name:      "scheduler_tick_seconds",
			Help:      "Duration of reminder scheduler ticks.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Dispatched, m.DeliveryFailures, m.Skipped, m.TickDuration)
	}
	return m
}
