package game

import (
	"math/rand"
	"testing"

	"github.com/minaorangina/klondike/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func down(r deck.Rank, s deck.Suit) *deck.Card {
	return deck.NewCard(r, s)
}

func up(r deck.Rank, s deck.Suit) *deck.Card {
	c := deck.NewCard(r, s)
	c.TurnUp()
	return c
}

// ascending returns face-up cards of the given suit from rank lo up to rank hi
func ascending(s deck.Suit, lo, hi deck.Rank) []*deck.Card {
	cards := []*deck.Card{}
	for r := lo; r <= hi; r++ {
		cards = append(cards, up(r, s))
	}
	return cards
}

func allCards(k *Klondike) []deck.Card {
	cards := append(k.Stock(), k.Waste()...)
	for i := 0; i < NumFoundations; i++ {
		cards = append(cards, k.Foundation(i)...)
	}
	for i := 0; i < NumPiles; i++ {
		cards = append(cards, k.Pile(i)...)
	}
	return cards
}

func assertConserved(t *testing.T, k *Klondike) {
	t.Helper()

	cards := allCards(k)
	require.Len(t, cards, deck.Size)
	require.Equal(t, deck.Size, k.CardCount())

	type key struct {
		rank deck.Rank
		suit deck.Suit
	}
	seen := map[key]bool{}
	for _, c := range cards {
		ck := key{c.Rank(), c.Suit()}
		require.False(t, seen[ck], "duplicate %s", c)
		seen[ck] = true
	}
}

func assertSelectionExclusive(t *testing.T, k *Klondike) {
	t.Helper()

	selected := 0
	for _, b := range []bool{k.IsWasteSelected(), k.IsFoundationSelected(), k.IsPileSelected()} {
		if b {
			selected++
		}
	}
	require.LessOrEqual(t, selected, 1)

	assert.Equal(t, k.IsFoundationSelected(), k.SelectedFoundation() >= 0)
	assert.Equal(t, k.IsPileSelected(), k.SelectedPile() >= 0)
}

func assertFoundationsOrdered(t *testing.T, k *Klondike) {
	t.Helper()

	for i := 0; i < NumFoundations; i++ {
		for j, c := range k.Foundation(i) {
			require.Equal(t, deck.Rank(j+1), c.Rank(), "foundation %d", i)
			require.Equal(t, k.Foundation(i)[0].Suit(), c.Suit(), "foundation %d", i)
		}
	}
}

func assertPanicsWithInvalidIndex(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected to panic, but it didn't")
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrInvalidIndex)
	}()

	f()
}
