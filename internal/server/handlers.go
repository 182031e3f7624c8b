package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pak3430/DDF-Dashboard-sample/pkg/analytics"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/cost"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/scenario"
	"github.com/pak3430/DDF-Dashboard-sample/pkg/validation"
)

type budgetResponse struct {
	Parameters cost.Parameters            `json:"parameters"`
	Result     cost.Result                `json:"result"`
	Operating  analytics.OperatingFigures `json:"operating"`
	Validation *validation.Report         `json:"validation,omitempty"`
}

type projectionResponse struct {
	Monthly     []cost.MonthPoint     `json:"monthly"`
	Yearly      []cost.YearPoint      `json:"yearly"`
	Benefits    cost.Benefits         `json:"social_benefits"`
	Feasibility analytics.Feasibility `json:"feasibility"`
}

type scenariosResponse struct {
	Catalog    []scenario.Definition `json:"catalog"`
	Selected   []scenario.Definition `json:"selected"`
	Highlights scenario.Highlights   `json:"highlights"`
	Validation *validation.Report    `json:"validation,omitempty"`
}

type selectRequest struct {
	IDs []string `json:"ids"`
}

type blendRequest struct {
	Weights   scenario.Weights `json:"weights"`
	Normalize *bool            `json:"normalize"`
}

type blendResponse struct {
	Hybrid     scenario.Hybrid         `json:"hybrid"`
	Fleet      analytics.HybridFigures `json:"fleet"`
	Validation *validation.Report      `json:"validation"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleProject(c *gin.Context) {
	c.JSON(http.StatusOK, s.Project())
}

func (s *Server) handleBudget(c *gin.Context) {
	p := s.Project()
	res := cost.Compute(p.Parameters, p.Constants)
	s.metrics.SetBudget(res)

	c.JSON(http.StatusOK, budgetResponse{
		Parameters: p.Parameters,
		Result:     res,
		Operating:  analytics.Operating(p.Parameters, res),
	})
}

// handleBudgetWhatIf computes a budget for parameters posted by the client.
// Fields left out of the body keep the project's values.
func (s *Server) handleBudgetWhatIf(c *gin.Context) {
	p := s.Project()
	params := p.Parameters
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	res := cost.Compute(params, p.Constants)
	s.metrics.SetBudget(res)

	c.JSON(http.StatusOK, budgetResponse{
		Parameters: params,
		Result:     res,
		Operating:  analytics.Operating(params, res),
		Validation: validation.ValidateParameters(params),
	})
}

func (s *Server) handleProjection(c *gin.Context) {
	p := s.Project()
	res := cost.Compute(p.Parameters, p.Constants)
	yearly := cost.YearlyProjection(res, p.Constants, analytics.ProjectionYears)

	c.JSON(http.StatusOK, projectionResponse{
		Monthly:     cost.MonthlyProjection(res, p.Constants),
		Yearly:      yearly,
		Benefits:    cost.SocialBenefits(p.Parameters, res, p.Constants),
		Feasibility: analytics.Assess(p.Parameters, res, yearly),
	})
}

func (s *Server) handleVariants(c *gin.Context) {
	p := s.Project()
	c.JSON(http.StatusOK, cost.CompareVariants(p.Variants, p.Constants))
}

func (s *Server) handleScenarios(c *gin.Context) {
	p := s.Project()
	selected := scenario.Select(p.Scenarios.Catalog, p.Scenarios.Selected)

	c.JSON(http.StatusOK, scenariosResponse{
		Catalog:    p.Scenarios.Catalog,
		Selected:   selected,
		Highlights: scenario.Highlight(selected),
	})
}

// handleSelect compares an ad-hoc selection. The project's own selection is
// not changed.
func (s *Server) handleSelect(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	p := s.Project()
	selected := scenario.Select(p.Scenarios.Catalog, req.IDs)

	c.JSON(http.StatusOK, scenariosResponse{
		Catalog:    p.Scenarios.Catalog,
		Selected:   selected,
		Highlights: scenario.Highlight(selected),
		Validation: validation.ValidateSelection(p.Scenarios.Catalog, req.IDs, p.Scenarios.Limits),
	})
}

// handleBlend blends posted weights, or the project's weights when none are
// given. An empty body counts as an empty request.
func (s *Server) handleBlend(c *gin.Context) {
	var req blendRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	p := s.Project()
	weights := req.Weights
	if weights == nil {
		weights = p.Scenarios.Weights
	}
	normalize := p.Scenarios.Normalize
	if req.Normalize != nil {
		normalize = *req.Normalize
	}

	var h scenario.Hybrid
	if normalize {
		h = scenario.BlendNormalized(p.Scenarios.Catalog, weights)
	} else {
		h = scenario.Blend(p.Scenarios.Catalog, weights)
	}
	s.metrics.SetHybrid(h)

	c.JSON(http.StatusOK, blendResponse{
		Hybrid:     h,
		Fleet:      analytics.HybridFleet(p.Scenarios.Fleet, h),
		Validation: validation.ValidateWeights(p.Scenarios.Catalog, weights, p.Scenarios.Limits),
	})
}

func (s *Server) handleValidation(c *gin.Context) {
	p := s.Project()
	report := validation.ValidateProject(p)
	_, analyticsReport := analytics.Resolve(p)
	report.Merge(analyticsReport)

	c.JSON(http.StatusOK, report)
}
