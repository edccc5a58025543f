package http

import "cuarenta/internal/game"

// JoinRequest is the payload for /rooms/:room_id/join.
type JoinRequest struct {
	Name string `json:"name"`
}

// RoomView is the serialized room. The draw pile is private; only its size
// is exposed.
type RoomView struct {
	ID        uint64         `json:"id"`
	Players   []*game.Player `json:"players"`
	DeckCount int            `json:"deck_count"`
	Board     []game.Card    `json:"board"`
	Claim     []game.Card    `json:"claim"`
	Turn      int            `json:"turn"`
	Active    bool           `json:"active"`
	Dirty     bool           `json:"dirty"`
	LastCard  game.Card      `json:"last_card"`
}

// GameResponse pairs the room with the requesting player's own seat.
type GameResponse struct {
	Room   RoomView     `json:"room"`
	Player *game.Player `json:"player"`
}

func newRoomView(r *game.Room) RoomView {
	return RoomView{
		ID:        r.ID,
		Players:   r.Players,
		DeckCount: len(r.Deck),
		Board:     r.Board,
		Claim:     r.Claim,
		Turn:      r.Turn,
		Active:    r.Active,
		Dirty:     r.Dirty,
		LastCard:  r.LastCard,
	}
}
