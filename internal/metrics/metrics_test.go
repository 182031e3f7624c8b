package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pak3430/DDF-Dashboard-sample/pkg/cost"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/scenario"
)

// scrape reads the registry back through its HTTP handler.
func scrape(t *testing.T, r *Registry) map[string]*dto.MetricFamily {
	t.Helper()
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(w.Body)
	require.NoError(t, err)
	return mfs
}

func sumFamily(mf *dto.MetricFamily) float64 {
	if mf == nil {
		return 0
	}
	var total float64
	for _, m := range mf.GetMetric() {
		switch {
		case m.Counter != nil:
			total += m.Counter.GetValue()
		case m.Gauge != nil:
			total += m.Gauge.GetValue()
		}
	}
	return total
}

func TestRegistry_Empty(t *testing.T) {
	mfs := scrape(t, NewRegistry())

	assert.Contains(t, mfs, ReloadsTotal)
	assert.Contains(t, mfs, MonthlyCost)
	assert.Zero(t, sumFamily(mfs[ReloadsTotal]))
	assert.NotContains(t, mfs, RequestsTotal)
}

func TestRegistry_Requests(t *testing.T) {
	r := NewRegistry()
	r.ObserveRequest("GET", "/api/budget", 200)
	r.ObserveRequest("GET", "/api/budget", 200)
	r.ObserveRequest("POST", "/api/budget", 400)

	mfs := scrape(t, r)
	mf := mfs[RequestsTotal]
	require.NotNil(t, mf)
	assert.Equal(t, dto.MetricType_COUNTER, mf.GetType())
	assert.Len(t, mf.GetMetric(), 2)
	assert.Equal(t, float64(3), sumFamily(mf))
}

func TestRegistry_Reloads(t *testing.T) {
	r := NewRegistry()
	r.ObserveReload(nil)
	r.ObserveReload(errors.New("bad yaml"))
	r.ObserveReload(nil)

	mfs := scrape(t, r)
	assert.Equal(t, float64(2), sumFamily(mfs[ReloadsTotal]))
	assert.Equal(t, float64(1), sumFamily(mfs[ReloadFailuresTotal]))
}

func TestRegistry_Figures(t *testing.T) {
	r := NewRegistry()
	r.SetBudget(cost.Compute(cost.DefaultParameters(), cost.DefaultConstants()))
	r.SetHybrid(scenario.Blend(scenario.DefaultCatalog(), scenario.DefaultWeights()))

	mfs := scrape(t, r)
	assert.Equal(t, float64(100800), sumFamily(mfs[MonthlyCost]))
	assert.Equal(t, float64(100), sumFamily(mfs[HybridTotalWeight]))
	assert.Greater(t, sumFamily(mfs[ROIPercent]), float64(0))
	assert.Equal(t, dto.MetricType_GAUGE, mfs[ROIPercent].GetType())
}

func TestRegistry_Gatherer(t *testing.T) {
	r := NewRegistry()
	r.ObserveRequest("GET", "/ping", 200)

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, RequestsTotal)
	assert.Contains(t, names, HybridTotalWeight)
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.ObserveRequest("GET", "/ping", 200)
			r.ObserveReload(nil)
		}()
	}
	wg.Wait()

	mfs := scrape(t, r)
	assert.Equal(t, float64(50), sumFamily(mfs[RequestsTotal]))
	assert.Equal(t, float64(50), sumFamily(mfs[ReloadsTotal]))
}
