package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotel_admin"

const (
	ResultOK    = "ok"
	ResultError = "error"
)

type Recorder struct {
	registry     *prometheus.Registry
	pageFetch    *prometheus.CounterVec
	pageSkipped  *prometheus.CounterVec
	decision     *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	mountedViews prometheus.Gauge
}

// New builds a recorder on its own registry so tests can create as many as they like.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		pageFetch: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "page_fetch_total",
				Help:      "Count of page fetches by collection and result.",
			},
			[]string{"collection", "result"},
		),
		pageSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "page_fetch_skipped_total",
				Help:      "Count of load-more requests dropped while a fetch was in flight or the list was complete.",
			},
			[]string{"collection"},
		),
		decision: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_decision_total",
				Help:      "Count of operator decisions over bookings.",
			},
			[]string{"decision", "result"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Count of HTTP requests by route and status class.",
			},
			[]string{"method", "route", "status"},
		),
		mountedViews: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dashboard_views_mounted",
				Help:      "Number of dashboard views currently mounted.",
			},
		),
	}

	r.registry.MustRegister(
		r.pageFetch,
		r.pageSkipped,
		r.decision,
		r.httpRequests,
		r.mountedViews,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) PageFetched(collection string, err error) {
	r.pageFetch.WithLabelValues(collection, result(err)).Inc()
}

func (r *Recorder) PageSkipped(collection string) {
	r.pageSkipped.WithLabelValues(collection).Inc()
}

func (r *Recorder) Decision(decision string, err error) {
	r.decision.WithLabelValues(decision, result(err)).Inc()
}

func (r *Recorder) HTTPRequest(method, route, status string) {
	r.httpRequests.WithLabelValues(method, route, status).Inc()
}

func (r *Recorder) ViewMounted()   { r.mountedViews.Inc() }
func (r *Recorder) ViewUnmounted() { r.mountedViews.Dec() }

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
