package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerCounters(t *testing.T) {
	m := NewLedger()

	m.RecordOperation("contribute", "ok")
	m.RecordOperation("contribute", "ok")
	m.RecordOperation("contribute", "DEADLINE_PASSED")
	m.RecordFunds("contribute", 250)
	m.RecordFunds("contribute", -5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("contribute", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("contribute", "DEADLINE_PASSED")))
	assert.Equal(t, 250.0, testutil.ToFloat64(m.funds.WithLabelValues("contribute")))
}

func TestLedgerHandlerExposesMetrics(t *testing.T) {
	m := NewLedger()
	m.RecordOperation("withdraw", "ok")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MetricOperationsTotal)
}
