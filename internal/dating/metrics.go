package dating

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	findRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_find_requests_total",
			Help: "Total number of find-matches requests",
		},
		[]string{"outcome"},
	)

	detailsRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_details_requests_total",
			Help: "Total number of match-details requests",
		},
		[]string{"outcome"},
	)

	candidatesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_candidates_skipped_total",
			Help: "Candidates dropped because their profile could not be normalized",
		},
	)

	candidatePoolsTruncated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_candidate_pools_truncated_total",
			Help: "Find requests whose candidate pool reached the configured limit",
		},
	)

	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_compatibility_score",
			Help:    "Distribution of returned compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	findDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_find_duration_seconds",
			Help:    "Time spent ranking a candidate pool",
			Buckets: prometheus.DefBuckets,
		},
	)

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_cache_lookups_total",
			Help: "Match cache lookups by kind and result",
		},
		[]string{"kind", "result"},
	)

	activeProfiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "matching_active_profiles",
			Help: "Active profiles in the user directory",
		},
	)
)

// Request outcomes
const (
	outcomeOK       = "ok"
	outcomeCached   = "cached"
	outcomeNotFound = "not_found"
	outcomeInvalid  = "invalid"
	outcomeError    = "error"
)

func RecordFindRequest(outcome string) {
	findRequestsTotal.WithLabelValues(outcome).Inc()
}

func RecordDetailsRequest(outcome string) {
	detailsRequestsTotal.WithLabelValues(outcome).Inc()
}

func RecordSkippedCandidates(n int) {
	if n > 0 {
		candidatesSkipped.Add(float64(n))
	}
}

func RecordTruncatedPool() {
	candidatePoolsTruncated.Inc()
}

func RecordCompatibilityScore(score int) {
	compatibilityScores.Observe(float64(score))
}

func RecordFindDuration(d time.Duration) {
	findDuration.Observe(d.Seconds())
}

func RecordCacheLookup(kind, result string) {
	cacheLookups.WithLabelValues(kind, result).Inc()
}

func SetActiveProfiles(n int) {
	activeProfiles.Set(float64(n))
}
