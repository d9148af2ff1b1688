package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CommandLifecycle(t *testing.T) {
	m := NewMetrics()

	m.CommandStarted("metadata_get_all")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsInFlight))

	m.CommandFinished("metadata_get_all", nil, 0.02)
	m.CommandStarted("metadata_remove")
	m.CommandFinished("metadata_remove", errors.New("boom"), 0.5)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.CommandsInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("metadata_get_all", StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("metadata_remove", StatusError)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.CommandDuration))
}

func TestMetrics_Cache(t *testing.T) {
	m := NewMetrics()

	m.CacheReplaced(12, 3)
	m.ResyncFailed()
	m.ReloadFinished(nil)
	m.ReloadFinished(errors.New("down"))

	assert.Equal(t, 12.0, testutil.ToFloat64(m.LibraryItems))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.LibraryVersion))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResyncFailuresTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReloadsTotal.WithLabelValues(StatusError)))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.ResyncFailed()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ResyncFailuresTotal))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.CacheReplaced(5, 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "library_client_library_items 5")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
