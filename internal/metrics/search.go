package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search pipeline Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "prodex",
			Name:      "search_requests_total",
			Help:      "Total number of search requests",
		},
		[]string{"status"},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "prodex",
			Name:      "search_duration_seconds",
			Help:      "Full search pipeline duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	SearchMatches = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "prodex",
			Name:      "search_matches",
			Help:      "Ranked matches per search, before pagination",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		},
	)

	SearchEmptyTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "prodex",
			Name:      "search_empty_total",
			Help:      "Searches that returned no results",
		},
	)

	PurchasesRecordedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "prodex",
			Name:      "purchases_recorded_total",
			Help:      "Purchases recorded into history",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchMatches)
	prometheus.MustRegister(SearchEmptyTotal)
	prometheus.MustRegister(PurchasesRecordedTotal)
	searchMetricsRegistered = true
}
