package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ResultsRecordedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "matchplay_results_recorded_total",
	Help: "Segment results stored, by outcome (decided or halved)",
}, []string{"outcome"})

var ResultConflictCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "matchplay_result_conflicts_total",
	Help: "Result submissions rejected because the matchup already had a result",
})

var ValidationFailureCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "matchplay_validation_failures_total",
	Help: "Rejected requests by operation",
}, []string{"operation"})

var ResultCorrectionsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "matchplay_result_corrections_total",
	Help: "Results corrected by an admin",
})

var ScorecardUploadsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "matchplay_scorecard_uploads_total",
	Help: "Scorecard photos uploaded to object storage",
})

var LeaderboardDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "matchplay_leaderboard_duration_seconds",
	Help:    "Time spent loading and folding results into standings",
	Buckets: prometheus.DefBuckets,
})

var WebsocketClientsGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "matchplay_websocket_clients",
	Help: "Connected leaderboard websocket clients",
})

const (
	OutcomeDecided = "decided"
	OutcomeHalved  = "halved"
)
