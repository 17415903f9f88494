package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records mutation and hydration metadata for the
// persisted state stores (cart, orders, checkout, auth).
type StoreMetrics struct {
	mutations      *prometheus.CounterVec
	persistFailure *prometheus.CounterVec
	hydration      *prometheus.HistogramVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_mutations_total",
		Help: "State store mutations by store and operation.",
	}, []string{"store", "op"})
	persistFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_persist_failures_total",
		Help: "Failed writes to the blob store.",
	}, []string{"store"})
	hydration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_hydration_seconds",
		Help:    "Duration of state store rehydration.",
		Buckets: prometheus.DefBuckets,
	}, []string{"store"})
	reg.MustRegister(mutations, persistFailure, hydration)
	return &StoreMetrics{
		mutations:      mutations,
		persistFailure: persistFailure,
		hydration:      hydration,
	}
}

// IncMutation increments the mutation counter for the named store/op.
func (m *StoreMetrics) IncMutation(store, op string) {
	if m == nil || m.mutations == nil {
		return
	}
	m.mutations.WithLabelValues(normalizeLabel(store), normalizeLabel(op)).Inc()
}

// IncPersistFailure increments the persist failure counter.
func (m *StoreMetrics) IncPersistFailure(store string) {
	if m == nil || m.persistFailure == nil {
		return
	}
	m.persistFailure.WithLabelValues(normalizeLabel(store)).Inc()
}

// ObserveHydration records the duration of a store rehydration.
func (m *StoreMetrics) ObserveHydration(store string, duration time.Duration) {
	if m == nil || m.hydration == nil {
		return
	}
	m.hydration.WithLabelValues(normalizeLabel(store)).Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
