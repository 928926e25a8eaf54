package verification

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/uni-match-api/internal/domain"
)

// --- mocks ---

type mockObjectStore struct{ mock.Mock }

func (m *mockObjectStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}
func (m *mockObjectStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if rc, _ := args.Get(0).(io.ReadCloser); rc != nil {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type mockDocumentStore struct{ mock.Mock }

func (m *mockDocumentStore) Put(ctx context.Context, d *domain.VerificationDocument) error {
	return m.Called(ctx, d).Error(0)
}
func (m *mockDocumentStore) Get(ctx context.Context, documentID string) (*domain.VerificationDocument, error) {
	args := m.Called(ctx, documentID)
	if d, _ := args.Get(0).(*domain.VerificationDocument); d != nil {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDocumentStore) ListByEmail(ctx context.Context, email string) ([]domain.VerificationDocument, error) {
	args := m.Called(ctx, email)
	if d, _ := args.Get(0).([]domain.VerificationDocument); d != nil {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDocumentStore) Delete(ctx context.Context, documentID string) error {
	return m.Called(ctx, documentID).Error(0)
}

// --- Upload ---

func TestUpload_HappyPath(t *testing.T) {
	obj := &mockObjectStore{}
	ds := &mockDocumentStore{}

	body := strings.NewReader("image-bytes")
	obj.On("Upload", mock.Anything, "documents/mika@waseda.jp/student_id/card.png", body, "image/png").
		Return("documents/mika@waseda.jp/student_id/card.png", nil)

	var stored *domain.VerificationDocument
	ds.On("Put", mock.Anything, mock.AnythingOfType("*domain.VerificationDocument")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.VerificationDocument) }).
		Return(nil)

	svc := NewService(obj, ds)
	doc, err := svc.Upload(context.Background(), "mika@waseda.jp", UploadInput{
		Reader:      body,
		Filename:    "card.png",
		ContentType: "image/png",
		Size:        11,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, doc.DocumentID)
	assert.Equal(t, "mika@waseda.jp", doc.Email)
	assert.Equal(t, "student_id", doc.FlagID)
	assert.Equal(t, domain.DocumentPending, doc.Status)
	assert.Equal(t, int64(11), doc.Size)
	assert.Equal(t, doc, stored)
	obj.AssertExpectations(t)
}

func TestUpload_CustomFlag(t *testing.T) {
	obj := &mockObjectStore{}
	ds := &mockDocumentStore{}
	obj.On("Upload", mock.Anything, "documents/mika@waseda.jp/enrollment/proof.pdf", mock.Anything, "application/pdf").
		Return("documents/mika@waseda.jp/enrollment/proof.pdf", nil)
	ds.On("Put", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(obj, ds)
	doc, err := svc.Upload(context.Background(), "mika@waseda.jp", UploadInput{
		Reader:      strings.NewReader("pdf"),
		Filename:    "proof.pdf",
		ContentType: "application/pdf",
		FlagID:      "enrollment",
	})

	require.NoError(t, err)
	assert.Equal(t, "enrollment", doc.FlagID)
}

func TestUpload_ObjectStoreFailure(t *testing.T) {
	obj := &mockObjectStore{}
	ds := &mockDocumentStore{}
	obj.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unavailable"))

	svc := NewService(obj, ds)
	_, err := svc.Upload(context.Background(), "mika@waseda.jp", UploadInput{
		Reader:   strings.NewReader("x"),
		Filename: "card.png",
	})

	require.Error(t, err)
	ds.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

// --- List ---

func TestList_Passthrough(t *testing.T) {
	ds := &mockDocumentStore{}
	docs := []domain.VerificationDocument{{DocumentID: "doc_1", Status: domain.DocumentPending}}
	ds.On("ListByEmail", mock.Anything, "mika@waseda.jp").Return(docs, nil)

	svc := NewService(&mockObjectStore{}, ds)
	got, err := svc.List(context.Background(), "mika@waseda.jp")
	require.NoError(t, err)
	assert.Equal(t, docs, got)
}

// --- Download / Delete ---

func docFixture() *domain.VerificationDocument {
	return &domain.VerificationDocument{
		DocumentID: "doc_1",
		Email:      "mika@waseda.jp",
		Object:     "documents/mika@waseda.jp/student_id/card.png",
		Name:       "card.png",
		Type:       "image/png",
		Status:     domain.DocumentPending,
	}
}

func TestDownload_HappyPath(t *testing.T) {
	obj := &mockObjectStore{}
	ds := &mockDocumentStore{}
	ds.On("Get", mock.Anything, "doc_1").Return(docFixture(), nil)
	obj.On("Download", mock.Anything, "documents/mika@waseda.jp/student_id/card.png").
		Return(io.NopCloser(strings.NewReader("image-bytes")), nil)

	svc := NewService(obj, ds)
	doc, body, err := svc.Download(context.Background(), "mika@waseda.jp", "doc_1")

	require.NoError(t, err)
	defer body.Close()
	assert.Equal(t, "image/png", doc.Type)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestDownload_OtherUsersDocumentHidden(t *testing.T) {
	obj := &mockObjectStore{}
	ds := &mockDocumentStore{}
	ds.On("Get", mock.Anything, "doc_1").Return(docFixture(), nil)

	svc := NewService(obj, ds)
	_, _, err := svc.Download(context.Background(), "someone-else@keio.jp", "doc_1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	obj.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
}

func TestDelete_RemovesObjectAndRecord(t *testing.T) {
	obj := &mockObjectStore{}
	ds := &mockDocumentStore{}
	ds.On("Get", mock.Anything, "doc_1").Return(docFixture(), nil)
	obj.On("Delete", mock.Anything, "documents/mika@waseda.jp/student_id/card.png").Return(nil)
	ds.On("Delete", mock.Anything, "doc_1").Return(nil)

	svc := NewService(obj, ds)
	require.NoError(t, svc.Delete(context.Background(), "mika@waseda.jp", "doc_1"))
	obj.AssertExpectations(t)
	ds.AssertExpectations(t)
}

func TestDelete_ObjectFailureKeepsRecord(t *testing.T) {
	obj := &mockObjectStore{}
	ds := &mockDocumentStore{}
	ds.On("Get", mock.Anything, "doc_1").Return(docFixture(), nil)
	obj.On("Delete", mock.Anything, mock.Anything).Return(errors.New("bucket unavailable"))

	svc := NewService(obj, ds)
	require.Error(t, svc.Delete(context.Background(), "mika@waseda.jp", "doc_1"))
	ds.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// --- sanitizeFilename ---

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "card.png", sanitizeFilename("card.png"))
	assert.Equal(t, "card.png", sanitizeFilename("../../etc/card.png"))
	assert.Equal(t, "card.png", sanitizeFilename(`C:\Users\mika\card.png`))
	assert.Equal(t, "my_card_.png", sanitizeFilename("my card?.png"))
}
