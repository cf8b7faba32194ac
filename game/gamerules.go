package game

import "github.com/minaorangina/klondike/deck"

// CanAddToFoundation reports whether card may go on foundation i:
// an Ace on an empty foundation, otherwise the next rank of the same suit.
func (k *Klondike) CanAddToFoundation(card deck.Card, i int) bool {
	mustBeFoundation(i)
	return canAddToFoundation(k.foundations[i], card)
}

// CanAddToPile reports whether card may go on pile i:
// a King on an empty pile, otherwise one rank lower and the opposite colour.
func (k *Klondike) CanAddToPile(card deck.Card, i int) bool {
	mustBePile(i)
	return canAddToPile(k.piles[i], card)
}

func canAddToFoundation(foundation Stack, card deck.Card) bool {
	top := foundation.Peek()
	if top == nil {
		return card.Rank() == deck.Ace
	}

	return card.Rank() == top.Rank()+1 && card.Suit() == top.Suit()
}

func canAddToPile(pile Stack, card deck.Card) bool {
	top := pile.Peek()
	if top == nil {
		return card.Rank() == deck.King
	}

	return card.Rank() == top.Rank()-1 && card.IsRed() != top.IsRed()
}

// Won reports whether every foundation is topped by a King
func (k *Klondike) Won() bool {
	for _, f := range k.foundations {
		top := f.Peek()
		if top == nil || top.Rank() != deck.King {
			return false
		}
	}
	return true
}
