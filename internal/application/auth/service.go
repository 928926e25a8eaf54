package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/uni-match-api/internal/domain"
	"github.com/uni-match-api/internal/infrastructure/smtp"
	pkgotp "github.com/uni-match-api/internal/pkg/otp"
)

// OTPStore is the per-email passcode state the authenticator runs on.
// Implementations must make Decrement and Delete atomic per key.
type OTPStore interface {
	Put(ctx context.Context, email string, rec *domain.OTPRecord) error
	Get(ctx context.Context, email string) (*domain.OTPRecord, error)
	Decrement(ctx context.Context, email string) (int, error)
	Delete(ctx context.Context, email string) error
}

// CredentialSigner mints the verified-email bearer credential.
type CredentialSigner interface {
	Sign(email, domain string) (string, error)
}

type RequestCodeResult struct {
	DeliveryHint     string `json:"deliveryHint"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
	Domain           string `json:"domain"`
}

type VerifyCodeResult struct {
	Token          string    `json:"token"`
	VerifiedEmail  string    `json:"verifiedEmail"`
	VerifiedDomain string    `json:"verifiedDomain"`
	VerifiedAt     time.Time `json:"verifiedAt"`
}

type Service interface {
	RequestCode(ctx context.Context, email string) (*RequestCodeResult, error)
	VerifyCode(ctx context.Context, email, code string) (*VerifyCodeResult, error)
}

type ServiceDeps struct {
	Store          OTPStore
	Mailer         smtp.Mailer // nil = log-only delivery (dev)
	Signer         CredentialSigner
	AllowedDomains []string
	Expiry         time.Duration
	MaxAttempts    int
	Rand           io.Reader // nil = crypto/rand.Reader
}

type service struct {
	store       OTPStore
	mailer      smtp.Mailer
	signer      CredentialSigner
	allowed     map[string]bool
	expiry      time.Duration
	maxAttempts int
	rand        io.Reader
}

func NewService(deps ServiceDeps) Service {
	allowed := make(map[string]bool, len(deps.AllowedDomains))
	for _, d := range deps.AllowedDomains {
		allowed[strings.ToLower(strings.TrimSpace(d))] = true
	}
	s := &service{
		store:       deps.Store,
		mailer:      deps.Mailer,
		signer:      deps.Signer,
		allowed:     allowed,
		expiry:      deps.Expiry,
		maxAttempts: deps.MaxAttempts,
		rand:        deps.Rand,
	}
	if s.expiry <= 0 {
		s.expiry = 10 * time.Minute
	}
	if s.maxAttempts <= 0 {
		s.maxAttempts = 5
	}
	if s.rand == nil {
		s.rand = rand.Reader
	}
	return s
}

func (s *service) RequestCode(ctx context.Context, email string) (*RequestCodeResult, error) {
	domainName := extractDomain(email)
	if !s.allowed[domainName] {
		return nil, fmt.Errorf("domain %q not eligible for OTP issuance: %w", domainName, domain.ErrDomainNotAllowed)
	}

	code, err := pkgotp.NewCode(s.rand)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := &domain.OTPRecord{
		Code:         code,
		AttemptsLeft: s.maxAttempts,
		ExpiresAt:    now.Add(s.expiry),
		IssuedAt:     now,
	}
	// Overwrites any live record — the previous code stops working here.
	if err := s.store.Put(ctx, email, rec); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		body := fmt.Sprintf("Your verification code: %s\nIt expires in %d minutes.", code, int(s.expiry.Minutes()))
		if err := s.mailer.SendEmail(email, "University email verification", body); err != nil {
			return nil, fmt.Errorf("send otp email: %w", err)
		}
	} else {
		slog.Info("otp issued without mailer", "hint", maskEmail(email))
	}

	return &RequestCodeResult{
		DeliveryHint:     maskEmail(email),
		ExpiresInSeconds: int(s.expiry.Seconds()),
		Domain:           domainName,
	}, nil
}

func (s *service) VerifyCode(ctx context.Context, email, code string) (*VerifyCodeResult, error) {
	rec, err := s.store.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	if time.Now().After(rec.ExpiresAt) {
		if err := s.store.Delete(ctx, email); err != nil {
			slog.Warn("failed to delete expired otp record", "hint", maskEmail(email), "err", err)
		}
		return nil, fmt.Errorf("otp expired: %w", domain.ErrExpired)
	}

	if rec.Code != code {
		left, err := s.store.Decrement(ctx, email)
		if err != nil {
			return nil, err
		}
		if left <= 0 {
			if err := s.store.Delete(ctx, email); err != nil {
				slog.Warn("failed to delete exhausted otp record", "hint", maskEmail(email), "err", err)
			}
			return nil, fmt.Errorf("no attempts left: %w", domain.ErrExhausted)
		}
		return nil, fmt.Errorf("otp mismatch, %d attempts left: %w", left, domain.ErrMismatch)
	}

	// Single use: the code dies with the record before the credential is minted.
	if err := s.store.Delete(ctx, email); err != nil {
		return nil, err
	}

	if s.signer == nil {
		return nil, fmt.Errorf("credential signer not configured")
	}
	domainName := extractDomain(email)
	token, err := s.signer.Sign(email, domainName)
	if err != nil {
		return nil, fmt.Errorf("sign credential: %w", err)
	}

	return &VerifyCodeResult{
		Token:          token,
		VerifiedEmail:  email,
		VerifiedDomain: domainName,
		VerifiedAt:     time.Now().UTC(),
	}, nil
}

// extractDomain returns the case-folded part after '@', or "" for a
// local-part-only string.
func extractDomain(email string) string {
	_, domainName, ok := strings.Cut(email, "@")
	if !ok {
		return ""
	}
	return strings.ToLower(domainName)
}

// maskEmail keeps the first two characters of the local part: st***@u-tokyo.ac.jp.
// Shorter local parts are shown whole.
func maskEmail(email string) string {
	local, domainName, ok := strings.Cut(email, "@")
	if !ok {
		return email
	}
	visible := local
	if len(local) > 2 {
		visible = local[:2]
	}
	return visible + "***@" + domainName
}
