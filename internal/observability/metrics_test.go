package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordOperationSplitsByResult(t *testing.T) {
	before := testutil.ToFloat64(operationCounter.WithLabelValues("metrics_test", "add", "error"))

	RecordOperation("metrics_test", "add", time.Now(), nil)
	RecordOperation("metrics_test", "add", time.Now(), errors.New("boom"))

	require.Equal(t, before+1, testutil.ToFloat64(operationCounter.WithLabelValues("metrics_test", "add", "error")))
	require.GreaterOrEqual(t, testutil.ToFloat64(operationCounter.WithLabelValues("metrics_test", "add", "ok")), 1.0)
}

func TestRecordTableMutatedIgnoresZeroTime(t *testing.T) {
	ts := time.Date(2025, time.January, 1, 7, 0, 0, 0, time.UTC)
	RecordTableMutated("metrics_test", ts)
	RecordTableMutated("metrics_test", time.Time{})

	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(lastMutationGauge.WithLabelValues("metrics_test")))
}

func TestRecordTableSize(t *testing.T) {
	RecordTableSize("metrics_test", 3)
	require.Equal(t, 3.0, testutil.ToFloat64(tableRecordsGauge.WithLabelValues("metrics_test")))
}
