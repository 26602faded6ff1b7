package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fieldquote/pricing-service/internal/matching"
	"github.com/fieldquote/pricing-service/internal/telemetry"
	"github.com/fieldquote/pricing-service/internal/types"
)

// ApplyOptionsPayload mirrors matching.ApplyOptions with optional fields so
// absent JSON keys fall back to the engine defaults.
type ApplyOptionsPayload struct {
	OnlyMissingPrice *bool `json:"onlyMissingPrice,omitempty"`
	FillEmptyUnit    *bool `json:"fillEmptyUnit,omitempty"`
}

// ApplyPricesRequest carries the quote rows and the price catalog inline;
// the service holds no catalog state.
type ApplyPricesRequest struct {
	Items     []types.LineItem     `json:"items" binding:"required"`
	PriceList []types.CatalogEntry `json:"priceList"`
	Options   *ApplyOptionsPayload `json:"options,omitempty"`
}

// ApplyPricesResponse is the enriched item list plus the changed-row count.
type ApplyPricesResponse struct {
	Items        []types.LineItem `json:"items"`
	MatchedCount int              `json:"matchedCount"`
}

// ApplySavedPrices fills prices from the submitted price list onto the
// submitted line items.
//
// @Summary Apply saved prices
// @Description Matches each line item against the submitted price list and fills price, unit, and line total
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body ApplyPricesRequest true "Line items and price list"
// @Success 200 {object} ApplyPricesResponse
// @Failure 400 {object} map[string]string "Bad request"
// @Router /internal/pricing/apply [post]
func ApplySavedPrices(c *gin.Context) {
	var req ApplyPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	_, span := telemetry.Tracer().Start(c.Request.Context(), "pricing.apply")
	defer span.End()

	opts := matching.DefaultApplyOptions()
	if req.Options != nil {
		if req.Options.OnlyMissingPrice != nil {
			opts.OnlyMissingPrice = *req.Options.OnlyMissingPrice
		}
		if req.Options.FillEmptyUnit != nil {
			opts.FillEmptyUnit = *req.Options.FillEmptyUnit
		}
	}

	result := matching.ApplyToLineItems(req.Items, req.PriceList, opts)
	span.SetAttributes(
		attribute.Int("pricing.items", len(req.Items)),
		attribute.Int("pricing.matched", result.MatchedCount),
	)
	log.Debug().
		Int("items", len(req.Items)).
		Int("catalog", len(req.PriceList)).
		Int("matched", result.MatchedCount).
		Msg("Applied saved prices")

	c.JSON(http.StatusOK, ApplyPricesResponse{
		Items:        result.Items,
		MatchedCount: result.MatchedCount,
	})
}

// CandidatesRequest asks for ranked match suggestions for one query.
type CandidatesRequest struct {
	Name      string                     `json:"name" binding:"required"`
	Unit      string                     `json:"unit"`
	PriceList []types.CatalogEntry       `json:"priceList"`
	Options   *matching.CandidateOptions `json:"options,omitempty"`
}

// CandidatesResponse lists suggestions in descending score order.
type CandidatesResponse struct {
	Candidates []matching.MatchCandidate `json:"candidates"`
}

// GetMatchCandidates returns ranked catalog suggestions for a line-item name.
//
// @Summary List match candidates
// @Description Returns ranked price-list suggestions for a free-text item name
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body CandidatesRequest true "Query and price list"
// @Success 200 {object} CandidatesResponse
// @Failure 400 {object} map[string]string "Bad request"
// @Router /internal/pricing/candidates [post]
func GetMatchCandidates(c *gin.Context) {
	var req CandidatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	opts := matching.CandidateOptions{}
	if req.Options != nil {
		opts = *req.Options
	}

	candidates := matching.Candidates(req.Name, req.Unit, req.PriceList, opts)
	if candidates == nil {
		candidates = []matching.MatchCandidate{}
	}
	c.JSON(http.StatusOK, CandidatesResponse{Candidates: candidates})
}

// MatchRequest asks for the single best match for one query.
type MatchRequest struct {
	Name      string               `json:"name" binding:"required"`
	Unit      string               `json:"unit"`
	PriceList []types.CatalogEntry `json:"priceList"`
}

// MatchResponse carries the best match, or null when nothing clears the
// auto-apply threshold. "No match" is a result, not an error.
type MatchResponse struct {
	Match *matching.MatchCandidate `json:"match"`
}

// FindBestMatch returns the best catalog match for a line-item name.
//
// @Summary Find best match
// @Description Returns the single best price-list match, or null when nothing clears the auto-apply threshold
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body MatchRequest true "Query and price list"
// @Success 200 {object} MatchResponse
// @Failure 400 {object} map[string]string "Bad request"
// @Router /internal/pricing/match [post]
func FindBestMatch(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, MatchResponse{
		Match: matching.FindBestMatch(req.Name, req.Unit, req.PriceList),
	})
}

// RegisterPricingRoutes registers the pricing routes with the Gin router.
func RegisterPricingRoutes(r *gin.RouterGroup) {
	r.POST("/pricing/apply", ApplySavedPrices)
	r.POST("/pricing/candidates", GetMatchCandidates)
	r.POST("/pricing/match", FindBestMatch)
}
