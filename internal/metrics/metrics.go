// Package metrics exposes command counters and timings on a private registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess     = "success"
	OutcomeFormatError = "format_error"
	OutcomeStateError  = "state_error"
	OutcomeError       = "error"
)

// Recorder tracks command outcomes. A nil *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
	clients  prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clientbook_commands_total",
			Help: "Commands executed, by command word and outcome.",
		}, []string{"command", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clientbook_command_duration_seconds",
			Help:    "Time spent parsing, executing and persisting a command.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"command"}),
		clients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clientbook_clients",
			Help: "Clients currently in the address book.",
		}),
	}
	r.registry.MustRegister(r.commands, r.duration, r.clients)
	return r
}

// ObserveCommand records one command. Unparseable lines use "unknown" as the word.
func (r *Recorder) ObserveCommand(word, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	if word == "" {
		word = "unknown"
	}
	r.commands.WithLabelValues(word, outcome).Inc()
	r.duration.WithLabelValues(word).Observe(elapsed.Seconds())
}

func (r *Recorder) SetClients(n int) {
	if r == nil {
		return
	}
	r.clients.Set(float64(n))
}

func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
