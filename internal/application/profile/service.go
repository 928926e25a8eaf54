package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/uni-match-api/internal/domain"
	"github.com/uni-match-api/internal/pkg/id"
)

// Store is the profile persistence the service requires.
type Store interface {
	Get(ctx context.Context, profileID string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Put(ctx context.Context, p *domain.Profile) error
}

// UniversityStore resolves university references during validation.
type UniversityStore interface {
	Get(ctx context.Context, universityID string) (*domain.University, error)
}

type Service interface {
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Create(ctx context.Context, email string, req domain.CreateProfileRequest) (*domain.Profile, error)
	Update(ctx context.Context, email string, req domain.UpdateProfileRequest) (*domain.Profile, error)
}

type service struct {
	profiles     Store
	universities UniversityStore
}

func NewService(profiles Store, universities UniversityStore) Service {
	return &service{profiles: profiles, universities: universities}
}

func (s *service) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return s.profiles.GetByEmail(ctx, email)
}

func (s *service) Create(ctx context.Context, email string, req domain.CreateProfileRequest) (*domain.Profile, error) {
	if _, err := s.universities.Get(ctx, req.UniversityID); err != nil {
		return nil, fmt.Errorf("unknown university %q: %w", req.UniversityID, domain.ErrValidation)
	}

	p := &domain.Profile{
		ProfileID:          id.New(),
		Name:               req.Name,
		Email:              email,
		UniversityID:       req.UniversityID,
		Majors:             emptyIfNil(req.Majors),
		Interests:          emptyIfNil(req.Interests),
		Languages:          emptyIfNil(req.Languages),
		Bio:                req.Bio,
		PreferredLocations: emptyIfNil(req.PreferredLocations),
	}
	if err := validateProfile(p); err != nil {
		return nil, err
	}
	if err := s.profiles.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, email string, req domain.UpdateProfileRequest) (*domain.Profile, error) {
	existing, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.UniversityID != nil {
		if _, err := s.universities.Get(ctx, *req.UniversityID); err != nil {
			return nil, fmt.Errorf("unknown university %q: %w", *req.UniversityID, domain.ErrValidation)
		}
		updated.UniversityID = *req.UniversityID
	}
	if req.Majors != nil {
		updated.Majors = req.Majors
	}
	if req.Interests != nil {
		updated.Interests = req.Interests
	}
	if req.Languages != nil {
		updated.Languages = req.Languages
	}
	if req.Bio != nil {
		updated.Bio = *req.Bio
	}
	if req.PreferredLocations != nil {
		updated.PreferredLocations = req.PreferredLocations
	}

	if err := validateProfile(&updated); err != nil {
		return nil, err
	}
	if err := s.profiles.Put(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func validateProfile(p *domain.Profile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name is required: %w", domain.ErrValidation)
	}
	if p.UniversityID == "" {
		return fmt.Errorf("university must be specified: %w", domain.ErrValidation)
	}
	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
