package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/uni-match-api/internal/domain"
)

// --- mocks ---

type mockStore struct{ mock.Mock }

func (m *mockStore) Get(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if p, _ := args.Get(0).(*domain.Profile); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if p, _ := args.Get(0).(*domain.Profile); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) Put(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}

type mockUniversityStore struct{ mock.Mock }

func (m *mockUniversityStore) Get(ctx context.Context, universityID string) (*domain.University, error) {
	args := m.Called(ctx, universityID)
	if u, _ := args.Get(0).(*domain.University); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- Create ---

func TestCreate_UnknownUniversity(t *testing.T) {
	us := &mockUniversityStore{}
	us.On("Get", mock.Anything, "univ_999").Return(nil, domain.ErrNotFound)

	svc := NewService(&mockStore{}, us)
	_, err := svc.Create(context.Background(), "a@waseda.jp", domain.CreateProfileRequest{
		Name:         "Mika",
		UniversityID: "univ_999",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestCreate_BlankNameRejected(t *testing.T) {
	us := &mockUniversityStore{}
	us.On("Get", mock.Anything, "univ_001").Return(&domain.University{UniversityID: "univ_001"}, nil)

	svc := NewService(&mockStore{}, us)
	_, err := svc.Create(context.Background(), "a@waseda.jp", domain.CreateProfileRequest{
		Name:         "   ",
		UniversityID: "univ_001",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestCreate_HappyPath(t *testing.T) {
	ps := &mockStore{}
	us := &mockUniversityStore{}
	us.On("Get", mock.Anything, "univ_001").Return(&domain.University{UniversityID: "univ_001"}, nil)

	var stored *domain.Profile
	ps.On("Put", mock.Anything, mock.AnythingOfType("*domain.Profile")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.Profile) }).
		Return(nil)

	svc := NewService(ps, us)
	created, err := svc.Create(context.Background(), "mika@waseda.jp", domain.CreateProfileRequest{
		Name:         "Mika",
		UniversityID: "univ_001",
		Interests:    []string{"ai"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ProfileID)
	assert.Equal(t, "mika@waseda.jp", created.Email)
	assert.Equal(t, []string{"ai"}, created.Interests)
	// Unset list fields are stored as empty, not null.
	assert.NotNil(t, created.Majors)
	assert.NotNil(t, created.Languages)
	assert.NotNil(t, created.PreferredLocations)
	assert.Equal(t, created, stored)
}

// --- Update ---

func TestUpdate_ProfileMissing(t *testing.T) {
	ps := &mockStore{}
	ps.On("GetByEmail", mock.Anything, "ghost@waseda.jp").Return(nil, domain.ErrNotFound)

	svc := NewService(ps, &mockUniversityStore{})
	_, err := svc.Update(context.Background(), "ghost@waseda.jp", domain.UpdateProfileRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdate_OnlyProvidedFieldsChange(t *testing.T) {
	ps := &mockStore{}
	existing := &domain.Profile{
		ProfileID:    "user_456",
		Name:         "Mika",
		Email:        "mika@waseda.jp",
		UniversityID: "univ_001",
		Interests:    []string{"ai"},
		Bio:          "old bio",
	}
	ps.On("GetByEmail", mock.Anything, "mika@waseda.jp").Return(existing, nil)
	ps.On("Put", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	bio := "new bio"
	svc := NewService(ps, &mockUniversityStore{})
	updated, err := svc.Update(context.Background(), "mika@waseda.jp", domain.UpdateProfileRequest{
		Bio: &bio,
	})

	require.NoError(t, err)
	assert.Equal(t, "new bio", updated.Bio)
	assert.Equal(t, "Mika", updated.Name)
	assert.Equal(t, "univ_001", updated.UniversityID)
	assert.Equal(t, []string{"ai"}, updated.Interests)
}

func TestUpdate_UnknownUniversityRejected(t *testing.T) {
	ps := &mockStore{}
	us := &mockUniversityStore{}
	ps.On("GetByEmail", mock.Anything, "mika@waseda.jp").Return(&domain.Profile{
		ProfileID:    "user_456",
		Name:         "Mika",
		UniversityID: "univ_001",
	}, nil)
	us.On("Get", mock.Anything, "univ_999").Return(nil, domain.ErrNotFound)

	badID := "univ_999"
	svc := NewService(ps, us)
	_, err := svc.Update(context.Background(), "mika@waseda.jp", domain.UpdateProfileRequest{
		UniversityID: &badID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	ps.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestUpdate_EmptyNameRejected(t *testing.T) {
	ps := &mockStore{}
	ps.On("GetByEmail", mock.Anything, "mika@waseda.jp").Return(&domain.Profile{
		ProfileID:    "user_456",
		Name:         "Mika",
		UniversityID: "univ_001",
	}, nil)

	empty := ""
	svc := NewService(ps, &mockUniversityStore{})
	_, err := svc.Update(context.Background(), "mika@waseda.jp", domain.UpdateProfileRequest{
		Name: &empty,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
