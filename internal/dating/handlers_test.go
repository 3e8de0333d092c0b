package dating

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imadgeboyega/kiekky-matcher/internal/auth"
	"github.com/imadgeboyega/kiekky-matcher/internal/common/utils"
	"github.com/imadgeboyega/kiekky-matcher/internal/matching"
)

type fakeService struct {
	gotUserID    string
	gotParams    *FindMatchesParams
	gotCandidate string
	summary      *matching.MatchSummary
	result       *matching.CompatibilityResult
	err          error
}

func (f *fakeService) FindMatches(_ context.Context, userID string, params *FindMatchesParams) (*matching.MatchSummary, error) {
	f.gotUserID, f.gotParams = userID, params
	return f.summary, f.err
}

func (f *fakeService) MatchDetails(_ context.Context, userID, candidateID string) (*matching.CompatibilityResult, error) {
	f.gotUserID, f.gotCandidate = userID, candidateID
	return f.result, f.err
}

// testRouter authenticates every request that carries a bearer token as the token text itself
func testRouter(svc Service) *mux.Router {
	mw := auth.NewMiddlewareWithValidator(func(token string) (*utils.JWTClaims, error) {
		return &utils.JWTClaims{UserID: token}, nil
	})
	router := mux.NewRouter()
	RegisterRoutes(router, NewHandler(svc), mw)
	return router
}

func doRequest(router http.Handler, path, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+user)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_FindMatches(t *testing.T) {
	best := matching.Match{CandidateID: "bilal", MatchScore: 45, Tier: matching.TierMedium, FirstName: "Bilal"}
	svc := &fakeService{summary: &matching.MatchSummary{
		Matches: []matching.Match{best}, Total: 1, Medium: 1, Average: 45, BestMatch: &best,
	}}
	router := testRouter(svc)

	rec := doRequest(router, "/api/v1/matches/find?min_threshold=30&details=true&limit=5", "amina")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "amina", svc.gotUserID)
	require.NotNil(t, svc.gotParams.MinThreshold)
	assert.Equal(t, 30, *svc.gotParams.MinThreshold)
	assert.True(t, svc.gotParams.IncludeDetails)
	assert.Equal(t, 5, svc.gotParams.Limit)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["total"])
	assert.EqualValues(t, 45, body["average"])
	assert.Equal(t, "Bilal", body["bestMatch"].(map[string]interface{})["firstName"])
}

func TestHandler_FindMatchesLegacyPath(t *testing.T) {
	svc := &fakeService{summary: &matching.MatchSummary{Matches: []matching.Match{}}}
	rec := doRequest(testRouter(svc), "/api/auth/matches/find", "amina")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.gotParams.MinThreshold)
	assert.JSONEq(t, `{"matches":[],"total":0,"high":0,"medium":0,"low":0,"minimal":0,"average":0,"bestMatch":null,"skipped":0}`, rec.Body.String())
}

func TestHandler_FindMatchesBadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"threshold not a number", "min_threshold=high", "min_threshold must be an integer"},
		{"threshold out of range", "min_threshold=150", "MinThreshold must be at most 100"},
		{"negative threshold", "min_threshold=-1", "MinThreshold must be at least 0"},
		{"details not a bool", "details=maybe", "details must be true or false"},
		{"limit too large", "limit=10000", "Limit must be at most 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			rec := doRequest(testRouter(svc), "/api/v1/matches/find?"+tt.query, "amina")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.Nil(t, svc.gotParams, "service must not be called")
		})
	}
}

func TestHandler_RequiresAuthentication(t *testing.T) {
	svc := &fakeService{}
	router := testRouter(svc)

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/api/v1/matches/find", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/api/v1/matches/details/bilal", "").Code)
}

func TestHandler_MatchDetails(t *testing.T) {
	svc := &fakeService{result: &matching.CompatibilityResult{
		OverallScore: 45,
		Tier:         matching.TierMedium,
		Details:      &matching.Details{Interests: matching.InterestsDetail{Score: 33, Common: []string{"Music"}, Total: 1}},
	}}

	rec := doRequest(testRouter(svc), "/api/v1/matches/details/bilal", "amina")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "amina", svc.gotUserID)
	assert.Equal(t, "bilal", svc.gotCandidate)

	var body CompatibilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Compatibility)
	assert.Equal(t, 45, body.Compatibility.OverallScore)
	assert.Equal(t, []string{"Music"}, body.Compatibility.Details.Interests.Common)
}

func TestHandler_ServiceErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{ErrUserNotFound, http.StatusNotFound},
		{ErrCandidateNotFound, http.StatusNotFound},
		{ErrSelfMatch, http.StatusBadRequest},
		{ErrIncompleteProfile, http.StatusUnprocessableEntity},
		{errors.New("database is on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			router := testRouter(&fakeService{err: tt.err})

			rec := doRequest(router, "/api/v1/matches/details/bilal", "amina")
			assert.Equal(t, tt.code, rec.Code)

			rec = doRequest(router, "/api/v1/matches/find", "amina")
			assert.Equal(t, tt.code, rec.Code)
			assert.NotContains(t, rec.Body.String(), "on fire")
		})
	}
}
