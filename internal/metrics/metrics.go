package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vaultaudit_reports_generated_total",
		Help: "Total number of summary reports produced.",
	})

	RecordsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vaultaudit_records_processed_total",
		Help: "Total number of input records run through the pipeline.",
	})

	DecodeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vaultaudit_decode_failures_total",
		Help: "Total number of rejected payloads, labelled by failure kind.",
	}, []string{"kind"})

	AccountsByRisk = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vaultaudit_accounts_by_risk_total",
		Help: "Total number of scored accounts, labelled by risk level.",
	}, []string{"level"})

	ReportBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vaultaudit_report_build_duration_ms",
		Help:    "End-to-end report build latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})
)
