package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCardsCoversEveryRankSuitPairOnce(t *testing.T) {
	deck := AllCards()
	require.Len(t, deck, 40)

	ids := make(map[int]bool)
	pairs := make(map[string]bool)
	for _, c := range deck {
		assert.False(t, ids[c.ID], "duplicate id %d", c.ID)
		ids[c.ID] = true
		assert.False(t, pairs[c.Name], "duplicate card %s", c.Name)
		pairs[c.Name] = true
		assert.Equal(t, c.Rank+c.Suit, c.Name)
	}

	// Enumeration is rank-major, suit-minor with sequential ids.
	for i, c := range deck {
		assert.Equal(t, i, c.ID)
	}
	assert.Equal(t, "AC", deck[0].Name)
	assert.Equal(t, "AS", deck[3].Name)
	assert.Equal(t, "2C", deck[4].Name)
	assert.Equal(t, "KS", deck[39].Name)
}

func TestAllCardsIsRepeatable(t *testing.T) {
	assert.Equal(t, AllCards(), AllCards())
}

func TestValueAndChainRankAreTotal(t *testing.T) {
	for _, c := range AllCards() {
		assert.NotZero(t, c.Value(), "value of %s", c.Name)
		assert.NotZero(t, c.ChainRank(), "chain rank of %s", c.Name)
	}
}

func TestFaceCardValues(t *testing.T) {
	cases := []struct {
		rank      string
		value     int
		chainRank int
	}{
		{"A", 1, 1},
		{"7", 7, 7},
		{"J", 11, 8},
		{"Q", 12, 9},
		{"K", 13, 10},
	}
	for _, tc := range cases {
		c := Card{Rank: tc.rank}
		assert.Equal(t, tc.value, c.Value(), "value of %s", tc.rank)
		assert.Equal(t, tc.chainRank, c.ChainRank(), "chain rank of %s", tc.rank)
	}
}

func TestUnknownRankDefaultsToZero(t *testing.T) {
	c := Card{Rank: "10"}
	assert.Zero(t, c.Value())
	assert.Zero(t, c.ChainRank())

	// The zero Card behaves the same, so a fresh room's LastCard can never
	// trigger a burn bonus.
	assert.Zero(t, Card{}.Value())
}
