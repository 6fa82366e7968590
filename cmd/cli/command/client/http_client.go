package client

// http_client.go wraps the Bookshelf HTTP API for the CLI.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Auth request/response structures
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	ExpiresIn    int    `json:"expires_in"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Book request/response structures
type CreateBookRequest struct {
	Title       string  `json:"title"`
	TotalPages  int     `json:"total_pages"`
	Slug        *string `json:"slug,omitempty"`
	AuthorID    *int64  `json:"author_id,omitempty"`
	Description *string `json:"description,omitempty"`
	Language    *string `json:"language,omitempty"`
	CoverURL    *string `json:"cover_url,omitempty"`
}

type AuthorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookResponse struct {
	ID          int64           `json:"id"`
	Slug        *string         `json:"slug,omitempty"`
	Title       string          `json:"title"`
	TotalPages  int             `json:"total_pages"`
	Description *string         `json:"description,omitempty"`
	Language    *string         `json:"language,omitempty"`
	Author      *AuthorResponse `json:"author,omitempty"`
}

type PaginatedBookResponse struct {
	Data       []BookResponse `json:"data"`
	Pagination struct {
		Page       int   `json:"page"`
		PageSize   int   `json:"page_size"`
		Total      int64 `json:"total"`
		TotalPages int   `json:"total_pages"`
	} `json:"pagination"`
}

// Progress request/response structures
type ReportProgressRequest struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

type ProgressResponse struct {
	ID          string    `json:"id"`
	BookID      int64     `json:"book_id"`
	CurrentPage int       `json:"current_page"`
	TotalPages  int       `json:"total_pages"`
	Progress    float64   `json:"progress"`
	LastReadAt  time.Time `json:"last_read_at"`
}

// Session request/response structures
type OpenSessionRequest struct {
	BookID    int64      `json:"book_id"`
	StartTime *time.Time `json:"start_time,omitempty"`
}

type CloseSessionRequest struct {
	PagesRead       int        `json:"pages_read"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationSeconds *int       `json:"duration_seconds,omitempty"`
}

type SessionResponse struct {
	ID              string     `json:"id"`
	BookID          int64      `json:"book_id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	PagesRead       int        `json:"pages_read"`
	DurationSeconds int        `json:"duration_seconds"`
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// do sends an authenticated JSON request and decodes the response into out
// when out is non-nil.
func (c *HTTPClient) do(method, path string, body any, wantStatus int, out any) error {
	var reader *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("request failed with status: %s", resp.Status)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Auth methods
func (c *HTTPClient) Register(request *RegisterRequest) (*RegisterResponse, error) {
	var result RegisterResponse
	if err := c.do("POST", "/api/auth/register", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(request *LoginRequest) (*AuthResponse, error) {
	var result AuthResponse
	if err := c.do("POST", "/api/auth/login", request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Refresh(refreshToken string) (*RefreshResponse, error) {
	body := map[string]string{"refresh_token": refreshToken}
	var result RefreshResponse
	if err := c.do("POST", "/api/auth/refresh", body, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) RevokeToken(refreshToken string) error {
	body := map[string]string{"refresh_token": refreshToken}
	return c.do("POST", "/api/auth/revoke", body, http.StatusOK, nil)
}

// Book methods
func (c *HTTPClient) GetAllBooks() ([]BookResponse, error) {
	var paginated PaginatedBookResponse
	if err := c.do("GET", "/api/books", nil, http.StatusOK, &paginated); err != nil {
		return nil, err
	}
	return paginated.Data, nil
}

func (c *HTTPClient) GetBookByID(id int64) (*BookResponse, error) {
	var result BookResponse
	if err := c.do("GET", fmt.Sprintf("/api/books/%d", id), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) SearchBooks(query string) ([]BookResponse, error) {
	var result []BookResponse
	path := "/api/books/search?q=" + url.QueryEscape(query)
	if err := c.do("GET", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) CreateBook(request *CreateBookRequest) (*BookResponse, error) {
	var result BookResponse
	if err := c.do("POST", "/api/books", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteBook(id int64) error {
	return c.do("DELETE", fmt.Sprintf("/api/books/%d", id), nil, http.StatusNoContent, nil)
}

// Progress methods
func (c *HTTPClient) GetProgress(bookID int64) (*ProgressResponse, error) {
	var result ProgressResponse
	if err := c.do("GET", fmt.Sprintf("/api/progress/%d", bookID), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ListProgress() ([]ProgressResponse, error) {
	var result []ProgressResponse
	if err := c.do("GET", "/api/progress", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) ReportProgress(bookID int64, request *ReportProgressRequest) (*ProgressResponse, error) {
	var result ProgressResponse
	if err := c.do("PUT", fmt.Sprintf("/api/progress/%d", bookID), request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Session methods
func (c *HTTPClient) OpenSession(request *OpenSessionRequest) (*SessionResponse, error) {
	var result SessionResponse
	if err := c.do("POST", "/api/sessions", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CloseSession(sessionID string, request *CloseSessionRequest) (*SessionResponse, error) {
	var result SessionResponse
	path := fmt.Sprintf("/api/sessions/%s/close", sessionID)
	if err := c.do("POST", path, request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ListSessions(bookID *int64) ([]SessionResponse, error) {
	path := "/api/sessions"
	if bookID != nil {
		path = fmt.Sprintf("/api/sessions?book_id=%d", *bookID)
	}
	var result []SessionResponse
	if err := c.do("GET", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}
