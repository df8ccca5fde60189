package handlers

import (
	"net/http"
	"testing"

	"github.com/hometrack/hometrack-api/internal/dto"
	"github.com/stretchr/testify/suite"
)

// AuthHandlerTestSuite covers registration, login and the current user route
type AuthHandlerTestSuite struct {
	suite.Suite
	env *testEnv
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
}

func (s *AuthHandlerTestSuite) register(email, password, confirm string) (int, map[string]string) {
	w := s.env.do(http.MethodPost, "/user/register", "", map[string]any{
		"fullName":        "Alice Example",
		"email":           email,
		"password":        password,
		"confirmPassword": confirm,
	})
	return w.Code, decode[map[string]string](s.T(), w)
}

func (s *AuthHandlerTestSuite) TestRegister() {
	code, body := s.register("alice@example.com", "secret", "secret")
	s.Equal(http.StatusCreated, code)
	s.Equal("User registered successfully", body["message"])
}

func (s *AuthHandlerTestSuite) TestRegisterErrors() {
	_, _ = s.register("alice@example.com", "secret", "secret")

	tests := []struct {
		name    string
		email   string
		confirm string
		message string
	}{
		{name: "password mismatch", email: "new@example.com", confirm: "other", message: "Passwords do not match"},
		{name: "existing email", email: "alice@example.com", confirm: "secret", message: "User already exists"},
		{name: "existing email with different case", email: "Alice@Example.com", confirm: "secret", message: "User already exists"},
		{name: "invalid email", email: "not-an-email", confirm: "secret", message: "Invalid request body"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			code, body := s.register(tt.email, "secret", tt.confirm)
			s.Equal(http.StatusBadRequest, code)
			s.Equal(tt.message, body["message"])
		})
	}
}

func (s *AuthHandlerTestSuite) TestLoginAndCurrentUser() {
	_, _ = s.register("alice@example.com", "secret", "secret")

	w := s.env.do(http.MethodPost, "/user/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "secret",
	})
	assertStatus(s.T(), w, http.StatusOK)

	login := decode[dto.LoginResponse](s.T(), w)
	s.Equal("Login successful", login.Message)
	s.NotEmpty(login.Token)
	s.Equal("alice@example.com", login.User.Email)
	s.Equal("Alice Example", login.User.FullName)
	s.NotContains(w.Body.String(), "passwordHash")

	w = s.env.do(http.MethodGet, "/user/me", login.Token, nil)
	assertStatus(s.T(), w, http.StatusOK)
	me := decode[dto.UserDTO](s.T(), w)
	s.Equal(login.User.ID, me.ID)

	// The token scopes resources to the logged in user.
	w = s.env.do(http.MethodPost, "/task", login.Token, taskPayload("Pay rent", "High"))
	assertStatus(s.T(), w, http.StatusCreated)
	s.Contains(w.Body.String(), `"userId":"`+login.User.ID+`"`)
}

func (s *AuthHandlerTestSuite) TestLoginFailuresLookTheSame() {
	_, _ = s.register("alice@example.com", "secret", "secret")

	for _, creds := range []map[string]any{
		{"email": "alice@example.com", "password": "wrong"},
		{"email": "nobody@example.com", "password": "secret"},
	} {
		w := s.env.do(http.MethodPost, "/user/login", "", creds)
		assertStatus(s.T(), w, http.StatusBadRequest)
		s.Equal("Invalid credentials", decode[map[string]string](s.T(), w)["message"])
	}
}

func (s *AuthHandlerTestSuite) TestCurrentUserRequiresExistingUser() {
	w := s.env.do(http.MethodGet, "/user/me", "", nil)
	assertStatus(s.T(), w, http.StatusUnauthorized)

	w = s.env.do(http.MethodGet, "/user/me", s.env.tokenFor("ghost"), nil)
	assertStatus(s.T(), w, http.StatusNotFound)
	s.Equal("User not found", decode[map[string]string](s.T(), w)["message"])
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
