package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "workout_server"

// Session close reasons.
const (
	CloseReasonManual = "manual"
	CloseReasonStale  = "stale"
)

var (
	sessionsOpened = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sessions",
		Name:      "opened_total",
		Help:      "Sessions created by open-session resolution.",
	})
	sessionsClosed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sessions",
		Name:      "closed_total",
		Help:      "Sessions transitioned from open to closed.",
	}, []string{"reason"})
	openSessionConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sessions",
		Name:      "open_conflicts_total",
		Help:      "Concurrent open-session creations resolved by the single-open index.",
	})
	workoutsLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "workouts",
		Name:      "logged_total",
		Help:      "Workouts persisted.",
	})
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(
		sessionsOpened,
		sessionsClosed,
		openSessionConflicts,
		workoutsLogged,
		httpRequests,
		httpDuration,
	)
}

func RecordSessionOpened() {
	sessionsOpened.Inc()
}

func RecordSessionsClosed(reason string, n int64) {
	if n <= 0 {
		return
	}
	sessionsClosed.WithLabelValues(reason).Add(float64(n))
}

func RecordOpenSessionConflict() {
	openSessionConflicts.Inc()
}

func RecordWorkoutLogged() {
	workoutsLogged.Inc()
}

// RecordHTTPRequest observes one served request. route is the chi route
// pattern, not the raw path, to keep label cardinality bounded.
func RecordHTTPRequest(method, route, status string, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
