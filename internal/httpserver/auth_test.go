package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pilmart-be/internal/user"
	"pilmart-be/internal/utils"
)

func newAuthRouter(users *mockUserService) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/auth", NewAuthHandler(users).Register)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		users := new(mockUserService)
		router := newAuthRouter(users)

		users.On("Register", mock.Anything, "Kim Minji", "010-1234-5678", "secret", "Seoul").
			Return(user.User{ID: 3, Name: "Kim Minji"}, nil)

		body := `{"name":"Kim Minji","phone":"010-1234-5678","password":"secret","address":"Seoul"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"userId":3`)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		users := new(mockUserService)
		router := newAuthRouter(users)

		users.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(user.User{}, user.ErrPhoneExists)

		body := `{"name":"Kim Minji","phone":"010-1234-5678","password":"secret"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "already registered")
	})

	t.Run("missing required fields", func(t *testing.T) {
		users := new(mockUserService)
		router := newAuthRouter(users)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"name":"Kim"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success returns token and profile without password", func(t *testing.T) {
		users := new(mockUserService)
		router := newAuthRouter(users)

		users.On("Login", mock.Anything, "010-1234-5678", "secret").
			Return("jwt-token", user.User{ID: 3, Name: "Kim Minji", Phone: "010-1234-5678", Password: "$2a$hash"}, nil)

		body := `{"phone":"010-1234-5678","password":"secret"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"jwt-token"`)
		assert.NotContains(t, rec.Body.String(), "$2a$hash")
	})

	t.Run("bad credentials", func(t *testing.T) {
		users := new(mockUserService)
		router := newAuthRouter(users)

		users.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return("", user.User{}, user.ErrInvalidCredentials)

		body := `{"phone":"010-1234-5678","password":"wrong"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		users := new(mockUserService)
		router := newAuthRouter(users)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user":null`)
	})

	t.Run("authenticated", func(t *testing.T) {
		users := new(mockUserService)
		router := newAuthRouter(users)

		users.On("GetByID", mock.Anything, 3).Return(&user.User{ID: 3, Name: "Kim Minji"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), 3, "010-1234-5678", string(user.RoleUser)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Kim Minji"`)
	})
}

func TestAuthHandler_Update(t *testing.T) {
	t.Run("anonymous rejected", func(t *testing.T) {
		users := new(mockUserService)
		router := newAuthRouter(users)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/auth/update", strings.NewReader(`{"name":"New"}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("updates the profile", func(t *testing.T) {
		users := new(mockUserService)
		router := newAuthRouter(users)

		users.On("UpdateProfile", mock.Anything, 3, user.UpdateProfileParams{Name: "New Name", Phone: "010-9999-0000", Address: "Busan"}).
			Return(&user.User{ID: 3, Name: "New Name"}, nil)

		body := `{"name":"New Name","phone":"010-9999-0000","address":"Busan"}`
		req := httptest.NewRequest(http.MethodPut, "/auth/update", strings.NewReader(body))
		req = req.WithContext(utils.SetUserContext(req.Context(), 3, "010-1234-5678", string(user.RoleUser)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		users.AssertExpectations(t)
	})
}
