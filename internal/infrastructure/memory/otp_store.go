package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/uni-match-api/internal/domain"
)

// OTPStore is the in-process fallback OTP store used in tests and when no
// Redis address is configured. A single mutex serializes all mutations, which
// satisfies the per-email atomicity the authenticator requires.
type OTPStore struct {
	mu      sync.Mutex
	records map[string]*domain.OTPRecord
}

func NewOTPStore() *OTPStore {
	return &OTPStore{records: make(map[string]*domain.OTPRecord)}
}

func (s *OTPStore) Put(_ context.Context, email string, rec *domain.OTPRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *rec
	s.records[email] = &clone
	return nil
}

func (s *OTPStore) Get(_ context.Context, email string) (*domain.OTPRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[email]
	if !ok {
		return nil, fmt.Errorf("otp record missing: %w", domain.ErrNotFound)
	}
	clone := *rec
	return &clone, nil
}

func (s *OTPStore) Decrement(_ context.Context, email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[email]
	if !ok {
		return 0, fmt.Errorf("otp record missing: %w", domain.ErrNotFound)
	}
	rec.AttemptsLeft--
	return rec.AttemptsLeft, nil
}

func (s *OTPStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, email)
	return nil
}
