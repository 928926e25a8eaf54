package verification

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/uni-match-api/internal/domain"
	"github.com/uni-match-api/internal/pkg/id"
)

// ObjectStore is the blob backend documents are streamed to and from.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// DocumentStore tracks document metadata.
type DocumentStore interface {
	Put(ctx context.Context, d *domain.VerificationDocument) error
	Get(ctx context.Context, documentID string) (*domain.VerificationDocument, error)
	ListByEmail(ctx context.Context, email string) ([]domain.VerificationDocument, error)
	Delete(ctx context.Context, documentID string) error
}

type UploadInput struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
	FlagID      string
}

type Service interface {
	Upload(ctx context.Context, email string, input UploadInput) (*domain.VerificationDocument, error)
	List(ctx context.Context, email string) ([]domain.VerificationDocument, error)
	Download(ctx context.Context, email, documentID string) (*domain.VerificationDocument, io.ReadCloser, error)
	Delete(ctx context.Context, email, documentID string) error
}

type service struct {
	objects   ObjectStore
	documents DocumentStore
}

func NewService(objects ObjectStore, documents DocumentStore) Service {
	return &service{objects: objects, documents: documents}
}

// Upload stores an affiliation proof and records it as pending. Actual review
// happens outside this service.
func (s *service) Upload(ctx context.Context, email string, input UploadInput) (*domain.VerificationDocument, error) {
	if input.FlagID == "" {
		input.FlagID = "student_id"
	}
	safeName := sanitizeFilename(input.Filename)
	key := fmt.Sprintf("documents/%s/%s/%s", email, input.FlagID, safeName)

	if _, err := s.objects.Upload(ctx, key, input.Reader, input.ContentType); err != nil {
		return nil, err
	}

	d := &domain.VerificationDocument{
		DocumentID: id.New(),
		Email:      email,
		FlagID:     input.FlagID,
		Object:     key,
		Name:       safeName,
		Type:       input.ContentType,
		Size:       input.Size,
		Status:     domain.DocumentPending,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.documents.Put(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *service) List(ctx context.Context, email string) ([]domain.VerificationDocument, error) {
	return s.documents.ListByEmail(ctx, email)
}

// Download streams a previously uploaded document back to its owner.
func (s *service) Download(ctx context.Context, email, documentID string) (*domain.VerificationDocument, io.ReadCloser, error) {
	doc, err := s.owned(ctx, email, documentID)
	if err != nil {
		return nil, nil, err
	}
	body, err := s.objects.Download(ctx, doc.Object)
	if err != nil {
		return nil, nil, err
	}
	return doc, body, nil
}

// Delete removes a document's object and its metadata record.
func (s *service) Delete(ctx context.Context, email, documentID string) error {
	doc, err := s.owned(ctx, email, documentID)
	if err != nil {
		return err
	}
	if err := s.objects.Delete(ctx, doc.Object); err != nil {
		return err
	}
	return s.documents.Delete(ctx, doc.DocumentID)
}

// owned resolves a document and hides other users' documents behind not-found.
func (s *service) owned(ctx context.Context, email, documentID string) (*domain.VerificationDocument, error) {
	doc, err := s.documents.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Email != email {
		return nil, fmt.Errorf("document not found: %w", domain.ErrNotFound)
	}
	return doc, nil
}

func sanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
