package match

import (
	"context"
	"math"
	"sort"

	"github.com/uni-match-api/internal/domain"
)

// Pagination bounds for candidate pages.
const (
	DefaultLimit = 10
	MaxLimit     = 25
)

// Weights is the scoring weight triple for the three overlap dimensions.
type Weights struct {
	Interests float64
	Majors    float64
	Languages float64
}

// DefaultWeights is the fixed production weighting.
var DefaultWeights = Weights{Interests: 0.5, Majors: 0.3, Languages: 0.2}

// ProfileStore is the read-only profile source the engine ranks over.
type ProfileStore interface {
	Get(ctx context.Context, profileID string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
}

type Service interface {
	RankCandidates(ctx context.Context, requesterID string, offset, limit int) (*domain.CandidatePage, error)
}

type service struct {
	profiles ProfileStore
	weights  Weights
}

func NewService(profiles ProfileStore) Service {
	return &service{profiles: profiles, weights: DefaultWeights}
}

// NewServiceWithWeights exists for alternate presets; production wiring uses
// NewService.
func NewServiceWithWeights(profiles ProfileStore, w Weights) Service {
	return &service{profiles: profiles, weights: w}
}

func (s *service) RankCandidates(ctx context.Context, requesterID string, offset, limit int) (*domain.CandidatePage, error) {
	requester, err := s.profiles.Get(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	pool, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}

	ranked := Rank(requester, pool, s.weights)

	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total := len(ranked)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	page := &domain.CandidatePage{Results: ranked[offset:end]}
	if next := offset + len(page.Results); next < total {
		page.NextOffset = &next
	}
	return page, nil
}

// Rank scores every profile in pool against the requester and returns the
// candidates ordered by score descending, id ascending on ties. The requester
// itself is excluded. Pure — no side effects, identical inputs give identical
// output.
func Rank(requester *domain.Profile, pool []domain.Profile, w Weights) []domain.Candidate {
	candidates := make([]domain.Candidate, 0, len(pool))
	for i := range pool {
		p := &pool[i]
		if p.ProfileID == requester.ProfileID {
			continue
		}
		candidates = append(candidates, score(requester, p, w))
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].MatchScore != candidates[j].MatchScore {
			return candidates[i].MatchScore > candidates[j].MatchScore
		}
		return candidates[i].ProfileID < candidates[j].ProfileID
	})
	return candidates
}

// score computes one candidate entry. Each overlap ratio is relative to the
// candidate's own set size (floor 1, so an empty candidate set scores 0 for
// that dimension).
func score(requester, candidate *domain.Profile, w Weights) domain.Candidate {
	sharedInterests := intersect(candidate.Interests, requester.Interests)
	sharedMajors := intersect(candidate.Majors, requester.Majors)
	sharedLanguages := intersect(candidate.Languages, requester.Languages)

	interestRatio := float64(len(sharedInterests)) / floorOne(len(candidate.Interests))
	majorRatio := float64(len(sharedMajors)) / floorOne(len(candidate.Majors))
	languageRatio := float64(len(sharedLanguages)) / floorOne(len(candidate.Languages))

	composite := w.Interests*interestRatio + w.Majors*majorRatio + w.Languages*languageRatio

	return domain.Candidate{
		ProfileID:       candidate.ProfileID,
		Name:            candidate.Name,
		UniversityID:    candidate.UniversityID,
		MatchScore:      round2(composite),
		SharedInterests: sharedInterests,
		Introduction:    candidate.Bio,
	}
}

// intersect returns the members of a that appear in b, preserving a's order.
func intersect(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	shared := []string{}
	for _, v := range a {
		if set[v] {
			shared = append(shared, v)
		}
	}
	return shared
}

func floorOne(n int) float64 {
	if n < 1 {
		return 1
	}
	return float64(n)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
