package game

// Player is a seat in a room. Hand holds at most five cards between deals;
// Points accumulates bonus awards and CardPoints counts captured cards.
// Only Room action handlers mutate a seated player.
type Player struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Hand       []Card `json:"hand"`
	Points     int    `json:"points"`
	CardPoints int    `json:"card_points"`
}

func NewPlayer(id uint64, name string) *Player {
	return &Player{ID: id, Name: name}
}

func (p *Player) removeFromHand(c Card) {
	for i, h := range p.Hand {
		if h.ID == c.ID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return
		}
	}
}

// removeCards returns cards with every member of picks (by id) filtered out.
func removeCards(cards []Card, picks []Card) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if !containsCard(picks, c) {
			out = append(out, c)
		}
	}
	return out
}

func containsCard(cards []Card, c Card) bool {
	for _, x := range cards {
		if x.ID == c.ID {
			return true
		}
	}
	return false
}

// containsAll reports whether every member of sub is present in cards.
func containsAll(cards []Card, sub []Card) bool {
	for _, c := range sub {
		if !containsCard(cards, c) {
			return false
		}
	}
	return true
}
