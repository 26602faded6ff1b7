package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/internal")
	RegisterPricingRoutes(group)
	router.GET("/health", HealthCheck)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestApplySavedPrices(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/internal/pricing/apply", gin.H{
		"items": []gin.H{
			{"name": "Drywall sheets", "quantity": 10, "unit": ""},
			{"name": "mystery widget xq", "quantity": 1, "unit": ""},
		},
		"priceList": []gin.H{
			{"name": "drywall sheet", "price": 8, "unit": "sqm"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ApplyPricesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.MatchedCount)
	require.Len(t, resp.Items, 2)
	require.NotNil(t, resp.Items[0].Price)
	assert.Equal(t, 8.0, *resp.Items[0].Price)
	assert.Equal(t, "sqm", resp.Items[0].Unit)
	require.NotNil(t, resp.Items[0].LineTotal)
	assert.Equal(t, 80.0, *resp.Items[0].LineTotal)
	assert.Nil(t, resp.Items[1].Price)
}

func TestApplySavedPricesOptionsOverride(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/internal/pricing/apply", gin.H{
		"items": []gin.H{
			{"name": "Drywall sheets", "quantity": 2, "unit": "each", "price": 12},
		},
		"priceList": []gin.H{
			{"name": "drywall sheet", "price": 8, "unit": "sqm"},
		},
		"options": gin.H{"onlyMissingPrice": false},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ApplyPricesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.MatchedCount)
	assert.Equal(t, 8.0, *resp.Items[0].Price)
}

func TestApplySavedPricesInvalidBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/internal/pricing/apply", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMatchCandidates(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/internal/pricing/candidates", gin.H{
		"name": "wall paint",
		"unit": "liters",
		"priceList": []gin.H{
			{"name": "Paint - Interior Latex", "price": 45, "unit": "liter", "aliases": []string{"wall paint"}},
			{"name": "Drywall sheet", "price": 8, "unit": "sqm"},
		},
		"options": gin.H{"maxResults": 1},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CandidatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Candidates, 1)
	assert.Equal(t, "Paint - Interior Latex", resp.Candidates[0].Entry.Source.Name)
	assert.GreaterOrEqual(t, resp.Candidates[0].Score, 0.62)
}

func TestGetMatchCandidatesNoOverlap(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/internal/pricing/candidates", gin.H{
		"name": "xyz nonexistent widget",
		"priceList": []gin.H{
			{"name": "Paint - Interior Latex", "price": 45},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CandidatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Candidates)
}

func TestFindBestMatchEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/internal/pricing/match", gin.H{
		"name": "drywall sheet",
		"unit": "sqm",
		"priceList": []gin.H{
			{"name": "drywall sheet", "price": 10, "unit": "sqm"},
			{"name": "drywall sheet", "price": 12, "unit": "each"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Match)
	assert.Equal(t, 10.0, resp.Match.Entry.Source.Price)
}

func TestFindBestMatchEndpointNoMatch(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/internal/pricing/match", gin.H{
		"name":      "xyz nonexistent widget",
		"priceList": []gin.H{{"name": "paint", "price": 1}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Match)
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
