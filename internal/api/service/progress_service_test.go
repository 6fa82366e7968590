package service

import (
	"context"
	"testing"
	"time"

	"github.com/Alireza01sjd/project-god-mode/internal/api/apperrors"
	"github.com/Alireza01sjd/project-god-mode/internal/api/models"
	"github.com/Alireza01sjd/project-god-mode/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProgressRepository mocks the ProgressRepository interface
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Upsert(ctx context.Context, progress *models.ReadingProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressRepository) Get(ctx context.Context, userID string, bookID int64) (*models.ReadingProgress, error) {
	args := m.Called(ctx, userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReadingProgress), args.Error(1)
}

func (m *MockProgressRepository) ListByUser(ctx context.Context, userID string) ([]models.ReadingProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReadingProgress), args.Error(1)
}

// MockBookRepository mocks the BookRepository interface
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Book), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) Create(ctx context.Context, b *models.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookRepository) Update(ctx context.Context, id int64, b *models.Book) error {
	args := m.Called(ctx, id, b)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookRepository) SearchByTitle(ctx context.Context, query string) ([]models.Book, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) ReplaceCategories(ctx context.Context, bookID int64, categoryIDs []int64) error {
	args := m.Called(ctx, bookID, categoryIDs)
	return args.Error(0)
}

func (m *MockBookRepository) ReplaceTags(ctx context.Context, bookID int64, tagIDs []int64) error {
	args := m.Called(ctx, bookID, tagIDs)
	return args.Error(0)
}

const (
	testUserID  = "11111111-1111-1111-1111-111111111111"
	otherUserID = "22222222-2222-2222-2222-222222222222"
)

func newProgressService(progressRepo *MockProgressRepository, bookRepo *MockBookRepository) ProgressService {
	return NewProgressService(progressRepo, bookRepo, cache.NewNoopProgressCache())
}

func TestReportProgress_FirstReport(t *testing.T) {
	mockProgressRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressService(mockProgressRepo, mockBookRepo)

	mockBookRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Book{ID: 1, TotalPages: 200}, nil)
	mockProgressRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*models.ReadingProgress")).Return(nil)

	progress, err := svc.Report(context.Background(), testUserID, testUserID, 1, 50, 200)

	assert.NoError(t, err)
	assert.NotNil(t, progress)
	assert.Equal(t, 50, progress.CurrentPage)
	assert.Equal(t, 200, progress.TotalPages)
	assert.Equal(t, 25.00, progress.Progress)
	assert.False(t, progress.LastReadAt.IsZero())
	mockProgressRepo.AssertNumberOfCalls(t, "Upsert", 1)
	mockProgressRepo.AssertExpectations(t)
}

// A report against an existing row must surface the stored row's identity:
// the upsert repopulates the struct from the database, so the id and
// created_at the caller sees are the original ones, not values generated
// for the insert that never happened.
func TestReportProgress_UpdateKeepsStoredIdentity(t *testing.T) {
	mockProgressRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressService(mockProgressRepo, mockBookRepo)

	storedID := "44444444-4444-4444-4444-444444444444"
	storedCreatedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mockBookRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Book{ID: 1, TotalPages: 200}, nil)
	mockProgressRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*models.ReadingProgress")).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*models.ReadingProgress)
			p.ID = storedID
			p.CreatedAt = storedCreatedAt
		}).
		Return(nil)

	progress, err := svc.Report(context.Background(), testUserID, testUserID, 1, 120, 200)

	assert.NoError(t, err)
	assert.Equal(t, storedID, progress.ID)
	assert.True(t, progress.CreatedAt.Equal(storedCreatedAt))
	assert.Equal(t, 120, progress.CurrentPage)
	assert.Equal(t, 60.00, progress.Progress)
	mockProgressRepo.AssertExpectations(t)
}

func TestReportProgress_ClampsOverRangePage(t *testing.T) {
	mockProgressRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressService(mockProgressRepo, mockBookRepo)

	mockBookRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Book{ID: 1, TotalPages: 200}, nil)
	mockProgressRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*models.ReadingProgress")).Return(nil)

	progress, err := svc.Report(context.Background(), testUserID, testUserID, 1, 250, 200)

	assert.NoError(t, err)
	assert.Equal(t, 200, progress.CurrentPage)
	assert.Equal(t, 100.00, progress.Progress)
}

func TestReportProgress_NegativePage(t *testing.T) {
	mockProgressRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressService(mockProgressRepo, mockBookRepo)

	_, err := svc.Report(context.Background(), testUserID, testUserID, 1, -1, 200)

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	mockProgressRepo.AssertNotCalled(t, "Upsert")
}

func TestReportProgress_ZeroTotalPages(t *testing.T) {
	mockProgressRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressService(mockProgressRepo, mockBookRepo)

	_, err := svc.Report(context.Background(), testUserID, testUserID, 1, 10, 0)

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestReportProgress_MissingBook(t *testing.T) {
	mockProgressRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressService(mockProgressRepo, mockBookRepo)

	mockBookRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.NotFound("book not found"))

	_, err := svc.Report(context.Background(), testUserID, testUserID, 99, 10, 200)

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindReference, apperrors.KindOf(err))
	mockProgressRepo.AssertNotCalled(t, "Upsert")
}

func TestReportProgress_ForAnotherUser(t *testing.T) {
	mockProgressRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressService(mockProgressRepo, mockBookRepo)

	_, err := svc.Report(context.Background(), testUserID, otherUserID, 1, 10, 200)

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
	mockBookRepo.AssertNotCalled(t, "GetByID")
	mockProgressRepo.AssertNotCalled(t, "Upsert")
}

func TestGetProgress_Success(t *testing.T) {
	mockProgressRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressService(mockProgressRepo, mockBookRepo)

	stored := &models.ReadingProgress{
		UserID:      testUserID,
		BookID:      1,
		CurrentPage: 120,
		TotalPages:  200,
		Progress:    60.00,
	}
	mockProgressRepo.On("Get", mock.Anything, testUserID, int64(1)).Return(stored, nil)

	progress, err := svc.Get(context.Background(), testUserID, testUserID, 1)

	assert.NoError(t, err)
	assert.Equal(t, 60.00, progress.Progress)
	mockProgressRepo.AssertExpectations(t)
}

func TestGetProgress_AnotherUser(t *testing.T) {
	mockProgressRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressService(mockProgressRepo, mockBookRepo)

	_, err := svc.Get(context.Background(), testUserID, otherUserID, 1)

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
	mockProgressRepo.AssertNotCalled(t, "Get")
}

func TestListProgress_Success(t *testing.T) {
	mockProgressRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressService(mockProgressRepo, mockBookRepo)

	stored := []models.ReadingProgress{
		{UserID: testUserID, BookID: 1, Progress: 25.00},
		{UserID: testUserID, BookID: 2, Progress: 100.00},
	}
	mockProgressRepo.On("ListByUser", mock.Anything, testUserID).Return(stored, nil)

	list, err := svc.List(context.Background(), testUserID, testUserID)

	assert.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 25.00, percent(50, 200))
	assert.Equal(t, 100.00, percent(200, 200))
	assert.Equal(t, 0.00, percent(0, 200))
	// rounds to two decimals
	assert.Equal(t, 33.33, percent(1, 3))
	assert.Equal(t, 66.67, percent(2, 3))
}
