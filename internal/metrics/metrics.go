// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tipcalc"

// Form event labels.
const (
	EventChangeBill     = "change_bill"
	EventIncrementSplit = "increment_split"
	EventDecrementSplit = "decrement_split"
	EventMoveSlider     = "move_slider"
	EventSubmit         = "submit"
)

// Submission result labels.
const (
	SubmitAccepted = "accepted"
	SubmitIgnored  = "ignored"
)

var (
	// FormEvents counts input events delivered to forms.
	FormEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "form_events_total",
		Help:      "Input events delivered to tip forms, by event.",
	}, []string{"event"})

	// Submissions counts submit actions by whether the bill was accepted.
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Submit actions, by result.",
	}, []string{"result"})

	// ActiveSessions tracks the number of live sessions.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Number of live tip form sessions.",
	})

	// ExpiredSessions counts sessions removed for inactivity.
	ExpiredSessions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_expired_total",
		Help:      "Sessions removed after being idle too long.",
	})

	// RPCDuration observes unary RPC latency.
	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rpc_duration_seconds",
		Help:      "Unary RPC latency, by procedure and result code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure", "code"})
)
