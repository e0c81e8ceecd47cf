package metrics

import (
	"net/http"
	"time"

	"dental-lab/internal/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dental_lab"

// Metrics agrupa los collectors de la app sobre un registry propio.
type Metrics struct {
	reg *prometheus.Registry

	size      *prometheus.GaugeVec
	emissions *prometheus.CounterVec
	syncs     *prometheus.CounterVec
	syncTook  *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		size: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_size",
			Help:      "Entities currently held by each collection.",
		}, []string{"collection"}),
		emissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collection_emissions_total",
			Help:      "Full-collection emissions delivered by each store.",
		}, []string{"collection"}),
		syncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_total",
			Help:      "Collection loads from the configured source, by result.",
		}, []string{"collection", "result"}),
		syncTook: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Time spent loading a collection from its source.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection"}),
	}

	m.reg.MustRegister(
		m.size, m.emissions, m.syncs, m.syncTook,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe se suscribe a st y refleja tamaño y emisiones.
func Observe[T store.Entity](m *Metrics, st *store.Store[T]) *store.Subscription {
	size := m.size.WithLabelValues(st.Name())
	emissions := m.emissions.WithLabelValues(st.Name())
	return st.Subscribe(func(items []T) {
		size.Set(float64(len(items)))
		emissions.Inc()
	})
}

// SyncResult implementa remotesync.Recorder.
func (m *Metrics) SyncResult(collection string, err error, took time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.syncs.WithLabelValues(collection, result).Inc()
	m.syncTook.WithLabelValues(collection).Observe(took.Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
