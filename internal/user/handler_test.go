package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryhub/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) Create(ctx context.Context, name, email, passwordHash, role string) (*User, error) {
	args := m.Called(ctx, name, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepo) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func setupAuthRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(repo, "test-secret")
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)
	return router
}

func TestHandler_Register(t *testing.T) {
	t.Run("creates a student account", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("EmailExists", mock.Anything, "a@example.com").Return(false, nil)
		repo.On("Create", mock.Anything, "Alice", "a@example.com", mock.AnythingOfType("string"), auth.RoleStudent).
			Return(&User{ID: 1, Name: "Alice", Email: "a@example.com", Role: auth.RoleStudent}, nil)

		body, _ := json.Marshal(RegisterRequest{Name: "Alice", Email: "a@example.com", Password: "secret123"})
		req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		setupAuthRouter(repo).ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.AccessToken)
		require.NotEmpty(t, resp.RefreshToken)
		require.Equal(t, auth.RoleStudent, resp.User.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("EmailExists", mock.Anything, "a@example.com").Return(true, nil)

		body, _ := json.Marshal(RegisterRequest{Name: "Alice", Email: "a@example.com", Password: "secret123"})
		req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		setupAuthRouter(repo).ServeHTTP(w, req)

		require.Equal(t, http.StatusConflict, w.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandler_Login(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("FindByEmail", mock.Anything, "a@example.com").
			Return(&User{ID: 1, Email: "a@example.com", PasswordHash: hash, Role: auth.RoleStudent}, nil)

		body, _ := json.Marshal(LoginRequest{Email: "a@example.com", Password: "secret123"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		setupAuthRouter(repo).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("FindByEmail", mock.Anything, "a@example.com").
			Return(&User{ID: 1, Email: "a@example.com", PasswordHash: hash}, nil)

		body, _ := json.Marshal(LoginRequest{Email: "a@example.com", Password: "wrong"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		setupAuthRouter(repo).ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, ErrUserNotFound)

		body, _ := json.Marshal(LoginRequest{Email: "ghost@example.com", Password: "secret123"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		setupAuthRouter(repo).ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
