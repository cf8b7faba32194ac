package deck

import (
	"fmt"
	"strconv"
)

// Rank represents a rank in a deck of cards
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = map[Rank]string{
	Ace:   "Ace",
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
}

func (r Rank) String() string {
	return rankNames[r]
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

var suitCodes = []string{"c", "d", "h", "s"}

func (s Suit) String() string {
	return suitNames[s]
}

// Code is the one-letter code for the suit
func (s Suit) Code() string {
	return suitCodes[s]
}

// BackImageKey is the image key of any face-down card
const BackImageKey = "back"

// Card is a playing card. Rank and suit are fixed; which way up it lies is not.
type Card struct {
	rank   Rank
	suit   Suit
	faceUp bool
}

// NewCard constructs a face-down card.
// Panics if rank or suit is out of range.
func NewCard(rank Rank, suit Suit) *Card {
	if rank < Ace || rank > King || suit < Clubs || suit > Spades {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return &Card{rank: rank, suit: suit}
}

// Rank returns a card's rank
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns a card's suit
func (c Card) Suit() Suit {
	return c.suit
}

// IsRed reports whether the card is a diamond or a heart
func (c Card) IsRed() bool {
	return c.suit == Diamonds || c.suit == Hearts
}

func (c Card) IsFaceUp() bool {
	return c.faceUp
}

func (c *Card) TurnUp() {
	c.faceUp = true
}

func (c *Card) TurnDown() {
	c.faceUp = false
}

// ImageKey identifies the picture a renderer should draw for the card,
// e.g. "th" for the Ten of Hearts, "2s" for the Two of Spades.
func (c Card) ImageKey() string {
	if !c.faceUp {
		return BackImageKey
	}

	var token string
	switch c.rank {
	case Ace:
		token = "a"
	case Ten:
		token = "t"
	case Jack:
		token = "j"
	case Queen:
		token = "q"
	case King:
		token = "k"
	default:
		token = strconv.Itoa(int(c.rank))
	}

	return token + c.suit.Code()
}

// Same reports whether two cards have the same rank and suit, whichever way up they are
func (c Card) Same(other Card) bool {
	return c.rank == other.rank && c.suit == other.suit
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}
