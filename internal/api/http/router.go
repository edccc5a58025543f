package http

import (
	"cuarenta/internal/api/ws"
	"cuarenta/internal/registry"
	"cuarenta/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(reg *registry.Registry, sess *session.Manager, hub *ws.Hub, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	// --- ROOM ENDPOINTS ---
	r.POST("/rooms", CreateRoomHandler(reg))
	r.POST("/rooms/:room_id/join", JoinRoomHandler(reg, sess, log))

	// --- GAME ENDPOINTS ---
	r.GET("/rooms/:room_id/play", PlayHandler(reg, sess))
	r.POST("/rooms/:room_id/turn", TurnHandler(reg, sess))

	// WebSocket for live viewer updates
	r.GET("/rooms/:room_id/ws", hub.HandleWS)

	return r
}
