package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Call metrics
	CallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "burrow_client_calls_total",
			Help: "Total number of unary calls by method and status code",
		},
		[]string{"method", "code"},
	)

	CallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "burrow_client_call_duration_seconds",
			Help:    "Unary call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Stream metrics
	ActiveStreams = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "burrow_client_active_streams",
			Help: "Number of currently active server streams",
		},
	)

	StreamsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "burrow_client_streams_total",
			Help: "Total number of server streams by method and terminal event",
		},
		[]string{"method", "terminal"},
	)

	StreamEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "burrow_client_stream_events_total",
			Help: "Total number of stream data events received by method",
		},
		[]string{"method"},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(CallsTotal)
	prometheus.MustRegister(CallDuration)
	prometheus.MustRegister(ActiveStreams)
	prometheus.MustRegister(StreamsTotal)
	prometheus.MustRegister(StreamEventsTotal)
}

// Handler returns the Prometheus HTTP handler for embedders that want to
// expose client metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer measures elapsed time for histogram observations
type Timer struct {
	start time.Time
}

// NewTimer creates a timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the elapsed time since the timer started
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ObserveDuration records the elapsed time in the given histogram
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(t.Duration().Seconds())
}
