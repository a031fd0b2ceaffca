//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"store-reservation/internal/handler/dto/request"
	"store-reservation/tests/common/authtest"
	"store-reservation/tests/common/dbtest"
	"store-reservation/tests/common/httptest"
	"store-reservation/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: user login returns a bearer token", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "visitor1")
		token := authtest.LoginUser(t, s.Router, "visitor1", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users/me/reviews", nil, token)
		// 404 because the account has no reviews; the point is the token passed auth
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Normal case: the session cookie works without the header", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "visitor1")
		cookie := authtest.LoginUserWithCookie(t, s.Router, "visitor1", dbtest.TestPassword)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/users/me/reviews", nil, []*http.Cookie{cookie})
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Normal case: logout clears the session cookie", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "visitor1")
		cookie := authtest.LoginUserWithCookie(t, s.Router, "visitor1", dbtest.TestPassword)

		authtest.LogoutUser(t, s.Router, []*http.Cookie{cookie})
	})

	s.Run("Error case: wrong password", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "visitor1")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/user/login",
			request.LoginRequest{ID: "visitor1", Password: "wrongpass123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: a user account cannot log in on the partner side", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "visitor1")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/partner/login",
			request.LoginRequest{ID: "visitor1", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: garbage token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users/me/reviews", nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
