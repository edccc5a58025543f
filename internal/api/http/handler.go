package http

import (
	"errors"
	"net/http"
	"strconv"

	"cuarenta/internal/game"
	"cuarenta/internal/registry"
	"cuarenta/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func roomIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("room_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return 0, false
	}
	return id, true
}

// statusFor maps the rule and lookup errors onto HTTP statuses; the error
// string itself is the user-facing message.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrNotYourTurn):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

func CreateRoomHandler(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := reg.CreateRoom()
		c.JSON(http.StatusOK, gin.H{"room_id": id})
	}
}

func JoinRoomHandler(reg *registry.Registry, sess *session.Manager, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, ok := roomIDParam(c)
		if !ok {
			return
		}
		var req JoinRequest
		if err := c.BindJSON(&req); err != nil || req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		p := reg.Join(roomID, req.Name)
		if err := sess.Issue(c, p.ID); err != nil {
			log.Error("failed to issue session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room_id": roomID, "player": p})
	}
}

// PlayHandler is the Join/Sync request: deals an inactive room and returns
// the snapshot plus the caller's own seat.
func PlayHandler(reg *registry.Registry, sess *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, ok := roomIDParam(c)
		if !ok {
			return
		}
		snap, err := reg.Play(roomID, sess.PlayerID(c))
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, GameResponse{
			Room:   newRoomView(snap.Room),
			Player: snap.Player,
		})
	}
}

func TurnHandler(reg *registry.Registry, sess *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, ok := roomIDParam(c)
		if !ok {
			return
		}
		var req registry.TurnRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		msg, err := reg.Turn(roomID, sess.PlayerID(c), req)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}
