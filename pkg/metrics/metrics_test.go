package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordingBeforeInitIsNoop(t *testing.T) {
	if analysesTotal != nil {
		t.Skip("metrics already registered")
	}
	assert.NotPanics(t, func() {
		ObserveAnalysis(ResultSuccess, time.Millisecond)
		ObserveTransactionsParsed(10)
		IncPagesSkipped()
	})
}

func TestObserveAnalysis(t *testing.T) {
	Init()
	Init()

	before := testutil.ToFloat64(analysesTotal.WithLabelValues(ResultMalformed))
	ObserveAnalysis(ResultMalformed, 20*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(analysesTotal.WithLabelValues(ResultMalformed)))

	skipped := testutil.ToFloat64(pagesSkipped)
	IncPagesSkipped()
	assert.Equal(t, skipped+1, testutil.ToFloat64(pagesSkipped))
}
