package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pak3430/DDF-Dashboard-sample/pkg/cost"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/scenario"
)

// Metric names exposed at /metrics.
const (
	RequestsTotal       = "drtplanner_http_requests_total"
	ReloadsTotal        = "drtplanner_project_reloads_total"
	ReloadFailuresTotal = "drtplanner_project_reload_failures_total"
	MonthlyCost         = "drtplanner_budget_monthly_cost"
	ROIPercent          = "drtplanner_budget_roi_percent"
	HybridTotalWeight   = "drtplanner_hybrid_total_weight"
)

// Registry tracks server counters and the most recent computed figures.
// It is safe for concurrent use.
type Registry struct {
	reg *prometheus.Registry

	requests       *prometheus.CounterVec
	reloads        prometheus.Counter
	reloadFailures prometheus.Counter
	monthlyCost    prometheus.Gauge
	roi            prometheus.Gauge
	hybridWeight   prometheus.Gauge
}

// NewRegistry returns a registry with every collector registered and zeroed.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: RequestsTotal,
			Help: "HTTP requests handled, by route and status code.",
		}, []string{"method", "route", "code"}),
		reloads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: ReloadsTotal,
			Help: "Successful project reloads.",
		}),
		reloadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: ReloadFailuresTotal,
			Help: "Project reloads that failed and kept the previous project.",
		}),
		monthlyCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MonthlyCost,
			Help: "Monthly operating cost of the last budget computed.",
		}),
		roi: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: ROIPercent,
			Help: "ROI percent of the last budget computed.",
		}),
		hybridWeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: HybridTotalWeight,
			Help: "Weight total of the last hybrid blend.",
		}),
	}
	r.reg.MustRegister(r.requests, r.reloads, r.reloadFailures, r.monthlyCost, r.roi, r.hybridWeight)
	return r
}

// ObserveRequest counts one handled HTTP request.
func (r *Registry) ObserveRequest(method, route string, code int) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

// ObserveReload counts a project reload attempt; a non-nil err counts as a failure.
func (r *Registry) ObserveReload(err error) {
	if err != nil {
		r.reloadFailures.Inc()
		return
	}
	r.reloads.Inc()
}

// SetBudget records the latest budget result.
func (r *Registry) SetBudget(res cost.Result) {
	r.monthlyCost.Set(res.MonthlyCost)
	r.roi.Set(res.ROIPercent)
}

// SetHybrid records the latest hybrid blend.
func (r *Registry) SetHybrid(h scenario.Hybrid) {
	r.hybridWeight.Set(h.TotalWeight)
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
