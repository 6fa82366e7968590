package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Alireza01sjd/project-god-mode/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookService mocks the BookService interface
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Book), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookService) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookService) Create(ctx context.Context, b *models.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookService) Update(ctx context.Context, id int64, b *models.Book) error {
	args := m.Called(ctx, id, b)
	return args.Error(0)
}

func (m *MockBookService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookService) SearchByTitle(ctx context.Context, query string) ([]models.Book, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookService) ReplaceCategories(ctx context.Context, bookID int64, categoryIDs []int64) error {
	args := m.Called(ctx, bookID, categoryIDs)
	return args.Error(0)
}

func (m *MockBookService) ReplaceTags(ctx context.Context, bookID int64, tagIDs []int64) error {
	args := m.Called(ctx, bookID, tagIDs)
	return args.Error(0)
}

func TestListBooks_OK(t *testing.T) {
	mockService := new(MockBookService)
	h := NewBookHandler(mockService)
	router := setupRouter()
	group := router.Group("/api/books", fakeAuth(testUserID, "user"))
	h.RegisterRoutes(group)

	books := []models.Book{
		{ID: 1, Title: "The Trial", TotalPages: 255},
		{ID: 2, Title: "Dubliners", TotalPages: 152},
	}
	mockService.On("GetAll", mock.Anything, 1, 20).Return(books, int64(2), nil)

	req, _ := http.NewRequest("GET", "/api/books", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []json.RawMessage `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.Data, 2)
	assert.Equal(t, int64(2), response.Pagination.Total)
}

func TestCreateBook_RequiresAdmin(t *testing.T) {
	mockService := new(MockBookService)
	h := NewBookHandler(mockService)
	router := setupRouter()
	group := router.Group("/api/books", fakeAuth(testUserID, "user"))
	h.RegisterRoutes(group)

	body, _ := json.Marshal(map[string]any{"title": "New Book", "total_pages": 100})
	req, _ := http.NewRequest("POST", "/api/books", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestCreateBook_AsAdmin(t *testing.T) {
	mockService := new(MockBookService)
	h := NewBookHandler(mockService)
	router := setupRouter()
	group := router.Group("/api/books", fakeAuth(testUserID, "admin"))
	h.RegisterRoutes(group)

	mockService.On("Create", mock.Anything, mock.AnythingOfType("*models.Book")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Book).ID = 7
		}).Return(nil)
	mockService.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Book{ID: 7, Title: "New Book", TotalPages: 100}, nil)

	body, _ := json.Marshal(map[string]any{"title": "New Book", "total_pages": 100})
	req, _ := http.NewRequest("POST", "/api/books", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestSearchBooks_MissingQuery(t *testing.T) {
	mockService := new(MockBookService)
	h := NewBookHandler(mockService)
	router := setupRouter()
	group := router.Group("/api/books", fakeAuth(testUserID, "user"))
	h.RegisterRoutes(group)

	req, _ := http.NewRequest("GET", "/api/books/search", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SearchByTitle")
}
