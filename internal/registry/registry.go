package registry

import (
	"sync"

	"cuarenta/internal/game"

	"go.uber.org/zap"
)

// Subscriber is a live viewer handle for one room. Notify delivers a
// content-free "state changed" signal; it must not block indefinitely.
type Subscriber interface {
	ID() string
	Notify() error
}

// TurnRequest is the structured action a seat submits on its turn. Hand is
// the card being thrown (absent for pass); Board carries the addends for a
// sum capture or the picks for a claim.
type TurnRequest struct {
	Action string      `json:"action"`
	Hand   *game.Card  `json:"hand"`
	Board  []game.Card `json:"board"`
}

// Snapshot is the Join/Sync result: the room plus the requesting seat.
type Snapshot struct {
	Room   *game.Room
	Player *game.Player
}

// Registry is the process-wide collection of rooms, players and viewer
// handles, and the only shared-mutation boundary. One coarse mutex
// serializes every request end to end — lookup, validation, action and
// fan-out — so two requests against the same room never interleave. Match
// traffic is human-paced; cross-room parallelism is not worth finer locks.
//
// Rooms live for the process. They are created lazily on first join and
// never destroyed.
type Registry struct {
	mu           sync.Mutex
	log          *zap.Logger
	rooms        map[uint64]*game.Room
	players      map[uint64]*game.Player
	subscribers  map[uint64][]Subscriber
	nextRoomID   uint64
	nextPlayerID uint64
}

func New(log *zap.Logger) *Registry {
	return &Registry{
		log:         log,
		rooms:       make(map[uint64]*game.Room),
		players:     make(map[uint64]*game.Player),
		subscribers: make(map[uint64][]Subscriber),
	}
}

// CreateRoom allocates an empty room and returns its id.
func (g *Registry) CreateRoom() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextRoomID++
	id := g.nextRoomID
	g.rooms[id] = game.NewRoom(id)
	g.log.Info("room created", zap.Uint64("room_id", id))
	return id
}

// room returns the room with the given id, creating it on first reference.
// Callers hold the lock.
func (g *Registry) room(roomID uint64) *game.Room {
	r, ok := g.rooms[roomID]
	if !ok {
		r = game.NewRoom(roomID)
		g.rooms[roomID] = r
		if roomID > g.nextRoomID {
			g.nextRoomID = roomID
		}
	}
	return r
}

// Join seats a new player in the room, creating the room if it does not
// exist yet. Seating order is join order.
func (g *Registry) Join(roomID uint64, name string) *game.Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	r := g.room(roomID)
	g.nextPlayerID++
	p := game.NewPlayer(g.nextPlayerID, name)
	g.players[p.ID] = p
	r.AddPlayer(p)
	g.log.Info("player joined",
		zap.Uint64("room_id", roomID),
		zap.Uint64("player_id", p.ID),
		zap.Int("seats", len(r.Players)))
	return p
}

// Play is the Join/Sync request: it deals the first hands of an inactive
// room and returns the room together with the requesting seat. The table
// must hold exactly 2 or 4 players.
func (g *Registry) Play(roomID, playerID uint64) (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rooms[roomID]
	if !ok {
		return Snapshot{}, game.ErrRoomNotFound
	}
	if n := len(r.Players); n != 2 && n != 4 {
		return Snapshot{}, game.ErrWrongPlayerCount
	}
	if !r.Active {
		if err := r.Deal(); err != nil {
			return Snapshot{}, err
		}
	}

	p, ok := r.Seat(playerID)
	if !ok {
		return Snapshot{}, game.ErrNotSeated
	}
	return Snapshot{Room: r, Player: p}, nil
}

// Turn validates and executes one action for the current seat, then pings
// every viewer subscribed to the room. An unrecognized action is the one
// input rejected before the fan-out; rule violations still notify, since
// state such as the dirty flag may have changed. The returned message is
// the action's human-readable result.
func (g *Registry) Turn(roomID, playerID uint64, req TurnRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rooms[roomID]
	if !ok {
		return "", game.ErrRoomNotFound
	}
	if !r.Active {
		return "", game.ErrRoomInactive
	}
	if r.CurrentPlayer().ID != playerID {
		return "", game.ErrNotYourTurn
	}

	var (
		msg string
		err error
	)
	switch req.Action {
	case "sum":
		msg, err = "Sum successful", r.Sum(req.Hand, req.Board)
	case "pass":
		msg, err = "Pass successful", r.Pass()
	case "claim":
		msg, err = "Claim successful", r.TakeClaim(req.Board)
	default:
		return "", game.ErrInvalidAction
	}

	if err == nil && req.Hand != nil {
		r.LastCard = *req.Hand
	}

	g.notify(roomID)

	if err != nil {
		return "", err
	}
	return msg, nil
}

// Subscribe registers a viewer handle for the room's change signals.
func (g *Registry) Subscribe(roomID uint64, sub Subscriber) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subscribers[roomID] = append(g.subscribers[roomID], sub)
	g.log.Debug("viewer subscribed",
		zap.Uint64("room_id", roomID), zap.String("viewer", sub.ID()))
}

// Unsubscribe drops the handle with the given id, if still present.
func (g *Registry) Unsubscribe(roomID uint64, subID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	subs := g.subscribers[roomID]
	for i, s := range subs {
		if s.ID() == subID {
			g.subscribers[roomID] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// ViewerCount reports the number of live viewer handles for a room.
func (g *Registry) ViewerCount(roomID uint64) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subscribers[roomID])
}

// notify pings every live viewer of the room. Delivery is best-effort: a
// failed send never fails the surrounding request, but the dead handle is
// pruned so it is not retried forever. Callers hold the lock.
func (g *Registry) notify(roomID uint64) {
	subs := g.subscribers[roomID]
	alive := subs[:0]
	for _, s := range subs {
		if err := s.Notify(); err != nil {
			g.log.Warn("dropping dead viewer",
				zap.Uint64("room_id", roomID),
				zap.String("viewer", s.ID()),
				zap.Error(err))
			continue
		}
		alive = append(alive, s)
	}
	g.subscribers[roomID] = alive
}
