package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/uni-match-api/internal/domain"
	jwtinfra "github.com/uni-match-api/internal/infrastructure/jwt"
	"github.com/uni-match-api/internal/transport/http/middleware"
)

// --- mocks ---

type mockMatchSvc struct{ mock.Mock }

func (m *mockMatchSvc) RankCandidates(ctx context.Context, requesterID string, offset, limit int) (*domain.CandidatePage, error) {
	args := m.Called(ctx, requesterID, offset, limit)
	if p, _ := args.Get(0).(*domain.CandidatePage); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProfileSvc struct{ mock.Mock }

func (m *mockProfileSvc) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if p, _ := args.Get(0).(*domain.Profile); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileSvc) Create(ctx context.Context, email string, req domain.CreateProfileRequest) (*domain.Profile, error) {
	args := m.Called(ctx, email, req)
	if p, _ := args.Get(0).(*domain.Profile); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileSvc) Update(ctx context.Context, email string, req domain.UpdateProfileRequest) (*domain.Profile, error) {
	args := m.Called(ctx, email, req)
	if p, _ := args.Get(0).(*domain.Profile); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func getWithClaims(h http.HandlerFunc, target, email string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if email != "" {
		claims := &jwtinfra.Claims{Email: email, Domain: "waseda.jp"}
		req = req.WithContext(context.WithValue(req.Context(), middleware.ClaimsKey, claims))
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

// --- Candidates ---

func TestCandidates_NoClaims(t *testing.T) {
	h := NewMatchHandler(&mockMatchSvc{}, &mockProfileSvc{})
	rec := getWithClaims(h.Candidates, "/v1/matches/candidates", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCandidates_NoProfileForEmail(t *testing.T) {
	ps := &mockProfileSvc{}
	ps.On("GetByEmail", mock.Anything, "ghost@waseda.jp").Return(nil, domain.ErrNotFound)

	h := NewMatchHandler(&mockMatchSvc{}, ps)
	rec := getWithClaims(h.Candidates, "/v1/matches/candidates", "ghost@waseda.jp")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCandidates_HappyPath(t *testing.T) {
	ms := &mockMatchSvc{}
	ps := &mockProfileSvc{}

	ps.On("GetByEmail", mock.Anything, "mika.sato@waseda.jp").
		Return(&domain.Profile{ProfileID: "user_456", Email: "mika.sato@waseda.jp"}, nil)
	next := 10
	ms.On("RankCandidates", mock.Anything, "user_456", 0, 10).Return(&domain.CandidatePage{
		Results: []domain.Candidate{
			{ProfileID: "user_789", Name: "Kenji", MatchScore: 0.68, SharedInterests: []string{"ai"}},
		},
		NextOffset: &next,
	}, nil)

	h := NewMatchHandler(ms, ps)
	rec := getWithClaims(h.Candidates, "/v1/matches/candidates", "mika.sato@waseda.jp")

	require.Equal(t, http.StatusOK, rec.Code)
	var page domain.CandidatePage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Results, 1)
	assert.Equal(t, "user_789", page.Results[0].ProfileID)
	assert.Equal(t, 0.68, page.Results[0].MatchScore)
	require.NotNil(t, page.NextOffset)
	assert.Equal(t, 10, *page.NextOffset)
	ms.AssertExpectations(t)
}

func TestCandidates_PageParamsForwarded(t *testing.T) {
	ms := &mockMatchSvc{}
	ps := &mockProfileSvc{}
	ps.On("GetByEmail", mock.Anything, "mika.sato@waseda.jp").
		Return(&domain.Profile{ProfileID: "user_456"}, nil)
	ms.On("RankCandidates", mock.Anything, "user_456", 15, 5).
		Return(&domain.CandidatePage{Results: []domain.Candidate{}}, nil)

	h := NewMatchHandler(ms, ps)
	rec := getWithClaims(h.Candidates, "/v1/matches/candidates?offset=15&limit=5", "mika.sato@waseda.jp")

	assert.Equal(t, http.StatusOK, rec.Code)
	ms.AssertExpectations(t)
}

func TestCandidates_LimitClampedToMax(t *testing.T) {
	ms := &mockMatchSvc{}
	ps := &mockProfileSvc{}
	ps.On("GetByEmail", mock.Anything, "mika.sato@waseda.jp").
		Return(&domain.Profile{ProfileID: "user_456"}, nil)
	ms.On("RankCandidates", mock.Anything, "user_456", 0, 25).
		Return(&domain.CandidatePage{Results: []domain.Candidate{}}, nil)

	h := NewMatchHandler(ms, ps)
	rec := getWithClaims(h.Candidates, "/v1/matches/candidates?limit=200", "mika.sato@waseda.jp")

	assert.Equal(t, http.StatusOK, rec.Code)
	ms.AssertExpectations(t)
}
