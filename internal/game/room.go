package game

import (
	"math/rand"
	"time"
)

// HandSize is the number of cards dealt to each seat per deal.
const HandSize = 5

// Room is the per-table state machine. The deck is consumed from the front;
// Board is the shared face-up capture area and Claim the set currently
// eligible for chain capture (always a subset of Board). Turn only advances
// on a pass; the acting seat is Players[Turn % len(Players)].
//
// A Room is not safe for concurrent use; the registry serializes access.
type Room struct {
	ID       uint64    `json:"id"`
	Players  []*Player `json:"players"`
	Deck     []Card    `json:"-"`
	Board    []Card    `json:"board"`
	Claim    []Card    `json:"claim"`
	Turn     int       `json:"turn"`
	Active   bool      `json:"active"`
	Dirty    bool      `json:"dirty"`
	LastCard Card      `json:"last_card"`
}

func NewRoom(id uint64) *Room {
	return &Room{ID: id}
}

// AddPlayer seats a player. Seating order is join order and never changes.
func (r *Room) AddPlayer(p *Player) {
	r.Players = append(r.Players, p)
}

// CurrentPlayer returns the seat that owns the current turn.
func (r *Room) CurrentPlayer() *Player {
	return r.Players[r.Turn%len(r.Players)]
}

// Seat returns the seated player with the given id.
func (r *Room) Seat(playerID uint64) (*Player, bool) {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p, true
		}
	}
	return nil, false
}

// Deal replenishes every hand with HandSize cards drained from the front of
// the deck in seating order. An empty deck is rebuilt from the full 40 cards
// and shuffled, which also wipes the board and claim set. A leftover pile
// too short for the table fails with ErrInsufficientDeck before any hand is
// touched.
func (r *Room) Deal() error {
	if len(r.Deck) == 0 {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		r.Deck = AllCards()
		rng.Shuffle(len(r.Deck), func(i, j int) {
			r.Deck[i], r.Deck[j] = r.Deck[j], r.Deck[i]
		})
		r.Board = nil
		r.Claim = nil
	}

	if len(r.Deck) < HandSize*len(r.Players) {
		return ErrInsufficientDeck
	}

	for _, p := range r.Players {
		p.Hand = append([]Card(nil), r.Deck[:HandSize]...)
		r.Deck = r.Deck[HandSize:]
	}
	r.Active = true
	return nil
}

// Sum is the lay-down-or-capture action. The throw is consumed up front:
// Dirty is set before any validation beyond the one-throw rule, so a failed
// capture attempt still spends the turn's throw. A nil thrown card with no
// picks consumes the throw without touching hand or board; with picks it
// can never add up and fails the value check.
//
// With no picks the thrown card moves from hand to board unscored. With
// picks, their values must add up to the thrown card's value; the capture
// removes picks plus the thrown card from play, credits CardPoints for all
// of them, and awards +2 Points for matching the previous thrown card's
// value and a further +2 for emptying the board.
//
// Every non-error path ends by recomputing the claim set from the thrown
// card, including bare lay-downs.
func (r *Room) Sum(thrown *Card, picks []Card) error {
	if r.Dirty {
		return ErrAlreadyThrew
	}
	r.Dirty = true

	p := r.CurrentPlayer()
	if len(picks) == 0 {
		if thrown != nil {
			p.removeFromHand(*thrown)
			r.Board = append(r.Board, *thrown)
		}
	} else {
		total := 0
		for _, c := range picks {
			total += c.Value()
		}
		if thrown == nil || total != thrown.Value() {
			return ErrValueMismatch
		}

		p.removeFromHand(*thrown)
		r.Board = removeCards(r.Board, picks)
		p.CardPoints += len(picks) + 1

		if thrown.Value() == r.LastCard.Value() {
			p.Points += 2
		}
		if len(r.Board) == 0 {
			p.Points += 2
		}
	}

	r.Claim = nil
	if thrown != nil {
		r.recomputeClaim(*thrown)
	}
	return nil
}

// recomputeClaim fills the cleared claim set with the maximal contiguous
// run of chain ranks starting one above the thrown card's, drawn from
// whatever remains on the board. The run stops at the first rank with no
// matches.
func (r *Room) recomputeClaim(thrown Card) {
	for i := thrown.ChainRank() + 1; ; i++ {
		found := false
		for _, c := range r.Board {
			if c.ChainRank() == i {
				r.Claim = append(r.Claim, c)
				found = true
			}
		}
		if !found {
			break
		}
	}
}

// Pass ends the current seat's turn. When every hand is empty the next deal
// happens immediately, before the reply.
func (r *Room) Pass() error {
	if !r.Dirty {
		return ErrHaventThrown
	}
	r.Turn++
	r.Dirty = false

	for _, p := range r.Players {
		if len(p.Hand) > 0 {
			return nil
		}
	}
	return r.Deal()
}

// TakeClaim captures the previously computed chain set. Points are credited
// for the entire claim set while only the selected picks leave the board;
// the claim set clears on success, so the full credit cannot repeat.
func (r *Room) TakeClaim(picks []Card) error {
	if len(r.Claim) == 0 {
		return ErrNothingToClaim
	}
	if !containsAll(r.Claim, picks) {
		return ErrInvalidClaim
	}

	p := r.CurrentPlayer()
	p.CardPoints += len(r.Claim)
	r.Claim = nil
	r.Board = removeCards(r.Board, picks)

	if len(r.Board) == 0 {
		p.Points += 2
	}
	return nil
}
