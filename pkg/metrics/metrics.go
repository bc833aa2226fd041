package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "mpesa_wrap_"

	ResultSuccess        = "success"
	ResultAuthentication = "authentication_error"
	ResultMalformed      = "malformed"
	ResultError          = "error"
)

var (
	registerOnce sync.Once

	analysesTotal      *prometheus.CounterVec
	analysisLatency    *prometheus.HistogramVec
	transactionsParsed prometheus.Histogram
	pagesSkipped       prometheus.Counter
)

// Init registers the statement metrics with the default registry.
// Recording before Init is a no-op.
func Init() {
	registerOnce.Do(func() {
		analysesTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_analyses_total",
				Help: "Total statement analyses by result",
			},
			[]string{"result"},
		)
		analysisLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "statement_analysis_latency_seconds",
				Help:    "Statement analysis latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		transactionsParsed = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "statement_transactions_parsed",
				Help:    "Ledger rows read per statement",
				Buckets: prometheus.ExponentialBuckets(10, 2, 10),
			},
		)
		pagesSkipped = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_pages_skipped_total",
				Help: "Pages skipped because no transaction table was found",
			},
		)

		prometheus.MustRegister(analysesTotal, analysisLatency, transactionsParsed, pagesSkipped)
	})
}

// ObserveAnalysis records one statement analysis.
func ObserveAnalysis(result string, elapsed time.Duration) {
	if analysesTotal == nil {
		return
	}
	analysesTotal.WithLabelValues(result).Inc()
	analysisLatency.WithLabelValues(result).Observe(elapsed.Seconds())
}

// ObserveTransactionsParsed records the ledger size of a parsed statement.
func ObserveTransactionsParsed(count int) {
	if transactionsParsed == nil {
		return
	}
	transactionsParsed.Observe(float64(count))
}

// IncPagesSkipped counts a page dropped by the statement parser.
func IncPagesSkipped() {
	if pagesSkipped == nil {
		return
	}
	pagesSkipped.Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
