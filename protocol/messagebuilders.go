package protocol

import (
	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/game"
)

// NewCardView hides the rank and suit of a face-down card
func NewCardView(c deck.Card) CardView {
	if !c.IsFaceUp() {
		return CardView{ImageKey: c.ImageKey()}
	}
	return CardView{
		Rank:     int(c.Rank()),
		Suit:     c.Suit().Code(),
		FaceUp:   true,
		ImageKey: c.ImageKey(),
	}
}

func topView(c deck.Card, ok bool) *CardView {
	if !ok {
		return nil
	}
	v := NewCardView(c)
	return &v
}

// BuildTable reads the game's zones into a Table
func BuildTable(k *game.Klondike) *Table {
	t := &Table{
		StockCount:  k.StockSize(),
		StockTop:    topView(k.StockTop()),
		WasteCount:  k.WasteSize(),
		WasteTop:    topView(k.WasteTop()),
		Foundations: make([]*CardView, game.NumFoundations),
		Piles:       make([][]CardView, game.NumPiles),
	}

	for i := range t.Foundations {
		t.Foundations[i] = topView(k.FoundationTop(i))
	}

	for i := range t.Piles {
		pile := k.Pile(i)
		t.Piles[i] = make([]CardView, len(pile))
		for j, c := range pile {
			t.Piles[i][j] = NewCardView(c)
		}
	}

	return t
}

func BuildSelectionView(s game.Selection) SelectionView {
	return SelectionView{Kind: s.Kind().String(), Index: s.Index()}
}

// BuildStateMessage snapshots the whole game for a client
func BuildStateMessage(gameID string, k *game.Klondike) OutboundMessage {
	msg := OutboundMessage{
		GameID:    gameID,
		Command:   State,
		Table:     BuildTable(k),
		Selection: BuildSelectionView(k.Selection()),
		Won:       k.Won(),
	}
	if msg.Won {
		msg.Command = Won
		msg.Message = "You win!"
	}
	return msg
}

func BuildErrorMessage(gameID string, err error) OutboundMessage {
	return OutboundMessage{
		GameID:  gameID,
		Command: Error,
		Error:   err.Error(),
	}
}
