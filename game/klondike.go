package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/minaorangina/klondike/deck"
)

const (
	NumFoundations = 4
	NumPiles       = 7
	cardsPerDraw   = 3
	dealtToPiles   = NumPiles * (NumPiles + 1) / 2
)

var ErrInvalidIndex = errors.New("zone index out of range")

// Opts configures a new game
type Opts struct {
	// Rand drives every shuffle. A clock-seeded source is used when nil.
	Rand *rand.Rand
	// OnWin is called after a foundation click that leaves every foundation topped by a King
	OnWin func()
}

// Klondike is a game of Klondike solitaire.
// All cards live in exactly one of its zones; only the click handlers move them.
type Klondike struct {
	stock       Stack
	waste       Stack
	foundations [NumFoundations]Stack
	piles       [NumPiles]Stack
	selection   Selection
	rng         *rand.Rand
	onWin       func()
}

// New constructs a freshly shuffled and dealt game
func New(opts Opts) *Klondike {
	k := &Klondike{
		rng:   opts.Rand,
		onWin: opts.OnWin,
	}
	if k.rng == nil {
		k.rng = deck.NewRand(0)
	}

	k.NewGame()

	return k
}

// State describes a table to set up directly, bottom card first in every zone.
// It is not checked for legality.
type State struct {
	Stock       []*deck.Card
	Waste       []*deck.Card
	Foundations [NumFoundations][]*deck.Card
	Piles       [NumPiles][]*deck.Card
	Rand        *rand.Rand
	OnWin       func()
}

// NewFromState constructs a game part way through, with nothing selected
func NewFromState(s State) *Klondike {
	k := &Klondike{
		stock: append(Stack{}, s.Stock...),
		waste: append(Stack{}, s.Waste...),
		rng:   s.Rand,
		onWin: s.OnWin,
	}
	for i := range s.Foundations {
		k.foundations[i] = append(Stack{}, s.Foundations[i]...)
	}
	for i := range s.Piles {
		k.piles[i] = append(Stack{}, s.Piles[i]...)
	}
	if k.rng == nil {
		k.rng = deck.NewRand(0)
	}

	return k
}

// NewGame discards the current table and deals a freshly shuffled deck
func (k *Klondike) NewGame() {
	k.piles, k.stock = Deal(deck.NewShuffled(k.rng))
	k.waste = Stack{}
	k.foundations = [NumFoundations]Stack{}
	k.selection = noSelection()
}

// Deal lays out a full deck: pile i gets i+1 cards with only its top card
// face up, and the remaining 24 cards become the face-down stock.
func Deal(d deck.Deck) ([NumPiles]Stack, Stack) {
	if len(d) != deck.Size {
		panic(fmt.Sprintf("cannot deal a deck of %d cards", len(d)))
	}

	var piles [NumPiles]Stack
	for i := range piles {
		for _, c := range d.Deal(i + 1) {
			c.TurnDown()
			piles[i].Push(c)
		}
		piles[i].Peek().TurnUp()
	}

	stock := Stack{}
	for _, c := range d.Deal(deck.Size - dealtToPiles) {
		c.TurnDown()
		stock.Push(c)
	}

	return piles, stock
}

func mustBeFoundation(i int) {
	if i < 0 || i >= NumFoundations {
		panic(fmt.Errorf("foundation %d: %w", i, ErrInvalidIndex))
	}
}

func mustBePile(i int) {
	if i < 0 || i >= NumPiles {
		panic(fmt.Errorf("pile %d: %w", i, ErrInvalidIndex))
	}
}

func top(s Stack) (deck.Card, bool) {
	c := s.Peek()
	if c == nil {
		return deck.Card{}, false
	}
	return *c, true
}

// StockTop returns the top card of the stock, if there is one
func (k *Klondike) StockTop() (deck.Card, bool) {
	return top(k.stock)
}

// WasteTop returns the top card of the waste, if there is one
func (k *Klondike) WasteTop() (deck.Card, bool) {
	return top(k.waste)
}

// FoundationTop returns the top card of foundation i, if there is one
func (k *Klondike) FoundationTop(i int) (deck.Card, bool) {
	mustBeFoundation(i)
	return top(k.foundations[i])
}

// Pile returns a copy of pile i, bottom card first
func (k *Klondike) Pile(i int) []deck.Card {
	mustBePile(i)
	return k.piles[i].Cards()
}

// Foundation returns a copy of foundation i, bottom card first
func (k *Klondike) Foundation(i int) []deck.Card {
	mustBeFoundation(i)
	return k.foundations[i].Cards()
}

// Stock returns a copy of the stock, bottom card first
func (k *Klondike) Stock() []deck.Card {
	return k.stock.Cards()
}

// Waste returns a copy of the waste, bottom card first
func (k *Klondike) Waste() []deck.Card {
	return k.waste.Cards()
}

func (k *Klondike) StockSize() int {
	return k.stock.Len()
}

func (k *Klondike) WasteSize() int {
	return k.waste.Len()
}

// CardCount is the number of cards across every zone
func (k *Klondike) CardCount() int {
	n := k.stock.Len() + k.waste.Len()
	for _, f := range k.foundations {
		n += f.Len()
	}
	for _, p := range k.piles {
		n += p.Len()
	}
	return n
}

func (k *Klondike) Selection() Selection {
	return k.selection
}

func (k *Klondike) IsWasteSelected() bool {
	return k.selection.kind == WasteSelected
}

func (k *Klondike) IsFoundationSelected() bool {
	return k.selection.kind == FoundationSelected
}

// SelectedFoundation returns the selected foundation, or -1
func (k *Klondike) SelectedFoundation() int {
	if k.selection.kind != FoundationSelected {
		return -1
	}
	return k.selection.index
}

func (k *Klondike) IsPileSelected() bool {
	return k.selection.kind == PileSelected
}

// SelectedPile returns the selected pile, or -1
func (k *Klondike) SelectedPile() int {
	if k.selection.kind != PileSelected {
		return -1
	}
	return k.selection.index
}
