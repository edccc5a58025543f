package ws

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"cuarenta/internal/registry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// Hub upgrades viewer connections and registers them with the registry so
// they receive the room's "state changed" pings.
type Hub struct {
	registry *registry.Registry
	log      *zap.Logger
}

func NewHub(reg *registry.Registry, log *zap.Logger) *Hub {
	return &Hub{registry: reg, log: log}
}

// HandleWS subscribes the connection as a viewer of the room until it
// closes. Inbound frames are read only to detect the close; viewers act
// through the HTTP API.
func (h *Hub) HandleWS(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("room_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	v := &viewer{id: uuid.NewString(), conn: conn}
	h.registry.Subscribe(roomID, v)
	h.log.Info("viewer connected",
		zap.Uint64("room_id", roomID), zap.String("viewer", v.id))

	defer func() {
		h.registry.Unsubscribe(roomID, v.id)
		_ = conn.Close()
		h.log.Info("viewer disconnected",
			zap.Uint64("room_id", roomID), zap.String("viewer", v.id))
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// viewer adapts one websocket connection to registry.Subscriber. The mutex
// keeps registry pings from interleaving with each other on the wire.
type viewer struct {
	id   string
	mu   sync.Mutex
	conn *websocket.Conn
}

func (v *viewer) ID() string { return v.id }

// Notify pushes the content-free change signal. The deadline keeps a stuck
// peer from holding up the registry; the caller prunes us on error.
func (v *viewer) Notify() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	_ = v.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return v.conn.WriteMessage(websocket.TextMessage, []byte("update"))
}
