package observable

import "github.com/prometheus/client_golang/prometheus"

var (
	entitiesLive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "observe",
			Subsystem: "entity",
			Name:      "live",
			Help:      "Entities with at least one live handle",
		},
	)

	handlesLive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "observe",
			Subsystem: "entity",
			Name:      "handles",
			Help:      "Live shared handles across all entities",
		},
	)

	lockAcquisitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "observe",
			Subsystem: "entity",
			Name:      "lock_acquisitions_total",
			Help:      "Exclusive lock acquisition attempts by result",
		},
		[]string{"result"},
	)

	lockWaitSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "observe",
			Subsystem: "entity",
			Name:      "lock_wait_seconds",
			Help:      "Time spent blocked waiting for the entity lock",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 7),
		},
	)

	poisoningsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "observe",
			Subsystem: "entity",
			Name:      "lock_poisonings_total",
			Help:      "Locks poisoned by a panicking holder",
		},
	)
)

func init() {
	prometheus.MustRegister(entitiesLive, handlesLive, lockAcquisitionsTotal, lockWaitSeconds, poisoningsTotal)
}

// acquisition result labels
const (
	resultOK       = "ok"
	resultPoisoned = "poisoned"
	resultReleased = "released"
	resultSalvaged = "salvaged"
)
