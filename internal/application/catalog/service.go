package catalog

import (
	"context"
	"strings"

	"github.com/uni-match-api/internal/domain"
)

// Limit bounds for catalog queries.
const (
	DefaultLimit = 20
	MaxLimit     = 50
)

// ListUniversitiesParams are the free-text and attribute filters for the
// university catalog.
type ListUniversitiesParams struct {
	Search  string
	Program string
	Country string
	Limit   int
}

// UniversityStore supplies the full catalog; filtering happens in-process.
type UniversityStore interface {
	Scan(ctx context.Context) ([]domain.University, error)
}

// ConfigurationStore reads the operator-managed configuration catalog.
type ConfigurationStore interface {
	GetCatalogConfiguration(ctx context.Context) (*domain.CatalogConfiguration, error)
}

type Service interface {
	ListUniversities(ctx context.Context, params ListUniversitiesParams) ([]domain.University, int, error)
	GetConfiguration(ctx context.Context) (*domain.CatalogConfiguration, error)
}

type service struct {
	universities  UniversityStore
	configuration ConfigurationStore
}

func NewService(universities UniversityStore, configuration ConfigurationStore) Service {
	return &service{universities: universities, configuration: configuration}
}

// ListUniversities returns the filtered page and the total number of matches
// before the limit was applied.
func (s *service) ListUniversities(ctx context.Context, params ListUniversitiesParams) ([]domain.University, int, error) {
	all, err := s.universities.Scan(ctx)
	if err != nil {
		return nil, 0, err
	}

	limit := params.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	filtered := make([]domain.University, 0, len(all))
	for _, u := range all {
		if matches(&u, params) {
			filtered = append(filtered, u)
		}
	}

	total := len(filtered)
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, total, nil
}

func (s *service) GetConfiguration(ctx context.Context) (*domain.CatalogConfiguration, error) {
	return s.configuration.GetCatalogConfiguration(ctx)
}

func matches(u *domain.University, params ListUniversitiesParams) bool {
	if params.Country != "" && !strings.EqualFold(u.Country, params.Country) {
		return false
	}
	if params.Program != "" {
		found := false
		needle := strings.ToLower(params.Program)
		for _, p := range u.Programs {
			if strings.Contains(strings.ToLower(p), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if params.Search != "" {
		haystack := strings.ToLower(u.Name + " " + u.City + " " + u.Region)
		if !strings.Contains(haystack, strings.ToLower(params.Search)) {
			return false
		}
	}
	return true
}
