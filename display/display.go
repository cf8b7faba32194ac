package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/protocol"
	"github.com/pterm/pterm"
)

const (
	emptyText    = "--"
	faceDownText = "##"
)

var suitSymbols = map[string]string{
	"c": "♣",
	"d": "♦",
	"h": "♥",
	"s": "♠",
}

var rankTokens = map[int]string{1: "A", 10: "10", 11: "J", 12: "Q", 13: "K"}

// Label is the short text for a card, e.g. "Q♥", "##" face down, "--" for nothing
func Label(v *protocol.CardView) string {
	if v == nil {
		return emptyText
	}
	if !v.FaceUp {
		return faceDownText
	}

	rank, ok := rankTokens[v.Rank]
	if !ok {
		rank = strconv.Itoa(v.Rank)
	}
	text := rank + suitSymbols[v.Suit]

	if v.Suit == "d" || v.Suit == "h" {
		return pterm.Red(text)
	}
	return text
}

func mark(text string, selected bool) string {
	if !selected {
		return text
	}
	return pterm.LightYellow("[" + pterm.RemoveColorFromString(text) + "]")
}

// Render draws the table in msg to w
func Render(w io.Writer, msg protocol.OutboundMessage) error {
	if msg.Table == nil {
		return fmt.Errorf("nothing to render for %s", msg.Command)
	}
	t := msg.Table
	sel := msg.Selection

	top := pterm.TableData{
		{"Stock", "Waste", "F0", "F1", "F2", "F3"},
		{
			fmt.Sprintf("%s (%d)", Label(t.StockTop), t.StockCount),
			mark(fmt.Sprintf("%s (%d)", Label(t.WasteTop), t.WasteCount), sel.Kind == game.WasteSelected.String()),
		},
	}
	for i, f := range t.Foundations {
		selected := sel.Kind == game.FoundationSelected.String() && sel.Index == i
		top[1] = append(top[1], mark(Label(f), selected))
	}

	header := []string{}
	depth := 0
	for i, p := range t.Piles {
		header = append(header, "P"+strconv.Itoa(i))
		if len(p) > depth {
			depth = len(p)
		}
	}
	piles := pterm.TableData{header}
	for row := 0; row < depth; row++ {
		line := make([]string, len(t.Piles))
		for i, p := range t.Piles {
			if row >= len(p) {
				continue
			}
			selected := sel.Kind == game.PileSelected.String() && sel.Index == i && row == len(p)-1
			line[i] = mark(Label(&p[row]), selected)
		}
		piles = append(piles, line)
	}

	topText, err := pterm.DefaultTable.WithHasHeader().WithData(top).Srender()
	if err != nil {
		return err
	}
	pilesText, err := pterm.DefaultTable.WithHasHeader().WithData(piles).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n\n%s\n", topText, pilesText)
	if err != nil {
		return err
	}

	if msg.Won {
		_, err = fmt.Fprintln(w, pterm.LightGreen("You win! :)"))
	}
	return err
}
