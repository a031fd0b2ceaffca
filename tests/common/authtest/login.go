//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"store-reservation/internal/handler/dto/request"
	"store-reservation/internal/handler/dto/response"
	"store-reservation/tests/common/dbtest"
	"store-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, router *gin.Engine, path, id, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, path,
		request.LoginRequest{ID: id, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.LoginResponse
	err := httptest.DecodeResponseBody(t, w.Body, &res)
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken, "Access token missing from login response")

	return res.AccessToken
}

func LoginUser(t *testing.T, router *gin.Engine, id, password string) string {
	t.Helper()
	return login(t, router, "/api/auth/user/login", id, password)
}

func LoginPartner(t *testing.T, router *gin.Engine, id, password string) string {
	t.Helper()
	return login(t, router, "/api/auth/partner/login", id, password)
}

// LoginUserWithCookie logs in and returns the access token cookie the
// server sets alongside the JSON body.
func LoginUserWithCookie(t *testing.T, router *gin.Engine, id, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/user/login",
		request.LoginRequest{ID: id, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	c := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, c, "access token cookie missing from login response")
	require.NotEmpty(t, c.Value)
	return c
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

func CreateUserAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, id string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, id)
	return LoginUser(t, router, id, dbtest.TestPassword)
}

func CreatePartnerAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, id string) string {
	t.Helper()
	dbtest.CreateTestPartner(t, db, id)
	return LoginPartner(t, router, id, dbtest.TestPassword)
}
