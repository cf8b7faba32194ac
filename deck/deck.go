package deck

import (
	"math/rand"
	"time"
)

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a deck of cards. The last card is the top of the deck.
type Deck []*Card

// New creates a deck of cards, all face down, in suit and rank order
func New() Deck {
	cards := make(Deck, 0, Size)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// NewRand returns a random source seeded from the clock, or from seed if it is non-zero
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle shuffles the deck of cards with Fisher-Yates.
// A nil rng gets a clock-seeded one.
func (d Deck) Shuffle(rng *rand.Rand) {
	if rng == nil {
		rng = NewRand(0)
	}
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// NewShuffled creates a deck of cards in random order
func NewShuffled(rng *rand.Rand) Deck {
	d := New()
	d.Shuffle(rng)
	return d
}

// Deal deals n number of cards from the top of the deck, until it is empty.
// The returned cards keep their deck order, so the last one was the top card.
func (d *Deck) Deal(n int) []*Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []*Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := (*d)[startingIndex:numCardsInDeck]
	*d = (*d)[:startingIndex]
	return subSlice
}
