package game

// Card is an immutable playing card. Identity is the ID; Rank and Suit are
// display tokens and the key into the value tables.
type Card struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

var ranks = []string{"A", "2", "3", "4", "5", "6", "7", "J", "Q", "K"}

var suits = []string{"C", "D", "H", "S"}

// values is the arithmetic rank used for sum captures.
var values = map[string]int{
	"A": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7,
	"J": 11, "Q": 12, "K": 13,
}

// chainRanks compresses J/Q/K onto 8..10 so runs stay contiguous. Used only
// for chain-capture eligibility.
var chainRanks = map[string]int{
	"A": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7,
	"J": 8, "Q": 9, "K": 10,
}

// Value returns the card's arithmetic value (A=1 .. K=13), or 0 for an
// unknown rank token.
func (c Card) Value() int {
	return values[c.Rank]
}

// ChainRank returns the card's run rank (A=1 .. K=10), or 0 for an unknown
// rank token.
func (c Card) ChainRank() int {
	return chainRanks[c.Rank]
}

// AllCards returns the full 40-card deck in a fixed order: rank-major,
// suit-minor, with ids 0..39. Callers shuffle.
func AllCards() []Card {
	deck := make([]Card, 0, len(ranks)*len(suits))
	for i, rank := range ranks {
		for j, suit := range suits {
			deck = append(deck, Card{
				ID:   i*len(suits) + j,
				Name: rank + suit,
				Rank: rank,
				Suit: suit,
			})
		}
	}
	return deck
}
