package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"dental-lab/internal/store"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type thing struct{ ID int }

func (t thing) EntityID() int { return t.ID }

func TestObserve_TracksSizeAndEmissions(t *testing.T) {
	m := New()
	st := store.New[thing]("things")
	st.Initialize([]thing{{ID: 1}, {ID: 2}})

	sub := Observe(m, st)
	defer sub.Unsubscribe()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.size.WithLabelValues("things")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.emissions.WithLabelValues("things")))

	st.Add(thing{ID: 3})
	st.ReplaceAll(nil)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.size.WithLabelValues("things")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.emissions.WithLabelValues("things")))
}

func TestSyncResult(t *testing.T) {
	m := New()
	m.SyncResult("doctors", nil, 10*time.Millisecond)
	m.SyncResult("doctors", errors.New("down"), time.Millisecond)
	m.SyncResult("doctors", errors.New("down"), time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.syncs.WithLabelValues("doctors", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.syncs.WithLabelValues("doctors", "error")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.SyncResult("patients", nil, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `dental_lab_sync_total{collection="patients",result="ok"} 1`)
}
