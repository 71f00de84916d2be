package handlers_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"authportal/pkg/handlers"
	"authportal/pkg/identity"
	"authportal/pkg/session"
	"authportal/pkg/user"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Register(username, email, password string) (*user.Account, error) {
	args := m.Called(username, email, password)
	return args.Get(0).(*user.Account), args.Error(1)
}

func (m *mockService) Login(email, password string) (*user.Account, error) {
	args := m.Called(email, password)
	return args.Get(0).(*user.Account), args.Error(1)
}

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) Create(acc *user.Account) (string, error) {
	args := m.Called(acc)
	return args.String(0), args.Error(1)
}

func (m *mockSessions) Validate(token string) (*identity.Identity, error) {
	args := m.Called(token)
	if ident := args.Get(0); ident != nil {
		return ident.(*identity.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessions) Destroy(token string) error {
	return m.Called(token).Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
}

func identityContext(r *http.Request, ident *identity.Identity) context.Context {
	return context.WithValue(r.Context(), identity.ContextKey, ident)
}

func TestRegisterHandler(t *testing.T) {
	m := new(mockService)
	sessions := new(mockSessions)

	m.On("Register", "alice", "a@x.com", "pw123").Return(&user.Account{ID: "uid", Username: "alice", Email: "a@x.com"}, nil)
	m.On("Register", "alice", "taken@x.com", "pw123").Return((*user.Account)(nil), user.ErrEmailTaken)
	m.On("Register", "", "a@x.com", "pw123").Return((*user.Account)(nil), user.ErrMissingFields)
	m.On("Register", "alice", "boom@x.com", "pw123").Return((*user.Account)(nil), errors.New("insert account: db down"))

	handler := handlers.NewUserHandler(m, sessions, testLogger())

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Successful registration",
			body:           `{"username":"alice","email":"a@x.com","password":"pw123"}`,
			expectedStatus: http.StatusCreated,
			expectedBody:   "user created",
		},
		{
			name:           "Duplicate email",
			body:           `{"username":"alice","email":"taken@x.com","password":"pw123"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "already exists",
		},
		{
			name:           "Missing fields",
			body:           `{"username":"","email":"a@x.com","password":"pw123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "missing required fields",
		},
		{
			name:           "Store failure",
			body:           `{"username":"alice","email":"boom@x.com","password":"pw123"}`,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "internal error",
		},
		{
			name:           "Bad JSON",
			body:           `{"username" oops "alice"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"bad json"}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(test.body))
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, test.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), test.expectedBody)

			// registration never hands out a session
			assert.Empty(t, rr.Result().Cookies())
		})
	}

	sessions.AssertNotCalled(t, "Create", mock.Anything)
	m.AssertExpectations(t)
}

func TestLoginHandler(t *testing.T) {
	m := new(mockService)
	sessions := new(mockSessions)

	acc := &user.Account{ID: "uid", Username: "alice", Email: "a@x.com"}
	m.On("Login", "a@x.com", "correct").Return(acc, nil)
	m.On("Login", "a@x.com", "wrong").Return((*user.Account)(nil), user.ErrInvalidCredentials)
	m.On("Login", "nobody@x.com", "correct").Return((*user.Account)(nil), user.ErrInvalidCredentials)
	m.On("Login", "", "correct").Return((*user.Account)(nil), user.ErrMissingFields)
	sessions.On("Create", acc).Return("sessiontoken", nil)

	handler := handlers.NewUserHandler(m, sessions, testLogger())

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		handler.Login(rr, req)
		return rr
	}

	t.Run("Successful login", func(t *testing.T) {
		rr := do(`{"email":"a@x.com","password":"correct"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "login successful")
		assert.Contains(t, rr.Body.String(), `"username":"alice"`)
		assert.Contains(t, rr.Body.String(), `"email":"a@x.com"`)

		cookies := rr.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, session.CookieName, cookies[0].Name)
		assert.Equal(t, "sessiontoken", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("Wrong password and unknown email share one response", func(t *testing.T) {
		wrongPass := do(`{"email":"a@x.com","password":"wrong"}`)
		unknownEmail := do(`{"email":"nobody@x.com","password":"correct"}`)

		assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPass.Body.String(), unknownEmail.Body.String())
		assert.Empty(t, wrongPass.Result().Cookies())
	})

	t.Run("Missing fields", func(t *testing.T) {
		rr := do(`{"email":"","password":"correct"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Bad Content-Type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "plain/text")
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid Content-Type")
	})
}

func TestLoginHandler_SessionStoreError(t *testing.T) {
	m := new(mockService)
	sessions := new(mockSessions)

	acc := &user.Account{ID: "uid", Username: "alice", Email: "a@x.com"}
	m.On("Login", "a@x.com", "correct").Return(acc, nil)
	sessions.On("Create", acc).Return("", errors.New("db down"))

	handler := handlers.NewUserHandler(m, sessions, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"a@x.com","password":"correct"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.Login(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Result().Cookies())
}

func TestLogoutHandler(t *testing.T) {
	findCleared := func(rr *httptest.ResponseRecorder) *http.Cookie {
		for _, c := range rr.Result().Cookies() {
			if c.Name == session.CookieName {
				return c
			}
		}
		return nil
	}

	t.Run("Successful logout", func(t *testing.T) {
		sessions := new(mockSessions)
		sessions.On("Destroy", "sessiontoken").Return(nil)

		handler := handlers.NewUserHandler(new(mockService), sessions, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sessiontoken"})
		rr := httptest.NewRecorder()
		handler.Logout(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "logout successful")

		cleared := findCleared(rr)
		assert.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
		assert.Negative(t, cleared.MaxAge)

		sessions.AssertCalled(t, "Destroy", "sessiontoken")
	})

	t.Run("Store failure still clears the cookie", func(t *testing.T) {
		sessions := new(mockSessions)
		sessions.On("Destroy", "sessiontoken").Return(errors.New("db down"))

		handler := handlers.NewUserHandler(new(mockService), sessions, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sessiontoken"})
		rr := httptest.NewRecorder()
		handler.Logout(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		cleared := findCleared(rr)
		assert.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
		assert.Negative(t, cleared.MaxAge)
	})

	t.Run("No cookie", func(t *testing.T) {
		sessions := new(mockSessions)
		handler := handlers.NewUserHandler(new(mockService), sessions, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		rr := httptest.NewRecorder()
		handler.Logout(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		sessions.AssertNotCalled(t, "Destroy", mock.Anything)
	})
}

func TestHomeHandler(t *testing.T) {
	handler := handlers.NewUserHandler(new(mockService), new(mockSessions), testLogger())

	t.Run("With identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/home", nil)
		ctx := identityContext(req, &identity.Identity{ID: "uid", Username: "alice", Email: "a@x.com"})
		rr := httptest.NewRecorder()
		handler.Home(rr, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "welcome alice")
		assert.Contains(t, rr.Body.String(), `"id":"uid"`)
	})

	t.Run("Without identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/home", nil)
		rr := httptest.NewRecorder()
		handler.Home(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "unauthorized")
	})
}
