// Package session resolves the player identity behind a request. The seat
// id travels in a signed cookie; everything else about the player lives in
// the registry.
package session

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const cookieName = "cuarenta_session"

var errInvalidToken = errors.New("invalid session token")

type claims struct {
	PlayerID uint64 `json:"player_id"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session cookies.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue sets the session cookie binding the connection to a player id.
func (m *Manager) Issue(c *gin.Context, playerID uint64) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		PlayerID: playerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "cuarenta",
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}
	c.SetCookie(cookieName, signed, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// PlayerID resolves the requesting player. A missing, malformed or expired
// cookie resolves to player id 0.
func (m *Manager) PlayerID(c *gin.Context) uint64 {
	raw, err := c.Cookie(cookieName)
	if err != nil {
		return 0
	}
	id, err := m.parse(raw)
	if err != nil {
		return 0
	}
	return id
}

func (m *Manager) parse(raw string) (uint64, error) {
	token, err := jwt.ParseWithClaims(raw, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return 0, err
	}
	cl, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return 0, errInvalidToken
	}
	return cl.PlayerID, nil
}
