package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// issueCookie runs Issue through a throwaway gin context and returns the
// cookie it set.
func issueCookie(t *testing.T, m *Manager, playerID uint64) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, m.Issue(c, playerID))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func resolve(m *Manager, cookie *http.Cookie) uint64 {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		c.Request.AddCookie(cookie)
	}
	return m.PlayerID(c)
}

func TestRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	cookie := issueCookie(t, m, 42)
	assert.Equal(t, uint64(42), resolve(m, cookie))
}

func TestMissingCookieDefaultsToZero(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	assert.Zero(t, resolve(m, nil))
}

func TestGarbageCookieDefaultsToZero(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	assert.Zero(t, resolve(m, &http.Cookie{Name: "cuarenta_session", Value: "not-a-token"}))
}

func TestWrongSecretDefaultsToZero(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)
	cookie := issueCookie(t, issuer, 42)
	assert.Zero(t, resolve(verifier, cookie))
}

func TestExpiredTokenDefaultsToZero(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)
	cookie := issueCookie(t, m, 42)
	assert.Zero(t, resolve(m, cookie))
}
