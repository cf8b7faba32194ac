package game

import "github.com/minaorangina/klondike/deck"

// Stack is a last-in-first-out collection of cards.
// Index 0 is the bottom card, the last index is the top.
type Stack []*deck.Card

func (s Stack) IsEmpty() bool {
	return len(s) == 0
}

func (s Stack) Len() int {
	return len(s)
}

// Peek returns the top card, or nil if the stack is empty
func (s Stack) Peek() *deck.Card {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// Pop removes and returns the top card, or nil if the stack is empty
func (s *Stack) Pop() *deck.Card {
	top := s.Peek()
	if top == nil {
		return nil
	}
	(*s)[len(*s)-1] = nil
	*s = (*s)[:len(*s)-1]
	return top
}

func (s *Stack) Push(c *deck.Card) {
	*s = append(*s, c)
}

// Cards returns copies of the cards, bottom first
func (s Stack) Cards() []deck.Card {
	cards := make([]deck.Card, len(s))
	for i, c := range s {
		cards[i] = *c
	}
	return cards
}

// Run is an ordered sequence of cards lifted off a pile in one go.
// Index 0 is the bottom card of the run.
type Run []*deck.Card

// Bottom returns the card the run would be placed on its new pile with, or nil
func (r Run) Bottom() *deck.Card {
	if len(r) == 0 {
		return nil
	}
	return r[0]
}

// Top returns the uppermost card of the run, or nil
func (r Run) Top() *deck.Card {
	if len(r) == 0 {
		return nil
	}
	return r[len(r)-1]
}

// TakeFaceUpRun removes the maximal run of face-up cards from the top of the stack
func (s *Stack) TakeFaceUpRun() Run {
	i := len(*s)
	for i > 0 && (*s)[i-1].IsFaceUp() {
		i--
	}

	run := make(Run, len(*s)-i)
	copy(run, (*s)[i:])
	*s = (*s)[:i]
	return run
}

// PushRun places the run on top of the stack, keeping its order
func (s *Stack) PushRun(r Run) {
	*s = append(*s, r...)
}
