package game

// DealThreeCards turns up to three cards from the stock onto the waste.
// The first card moved ends up deepest.
func (k *Klondike) DealThreeCards() {
	for i := 0; i < cardsPerDraw && !k.stock.IsEmpty(); i++ {
		c := k.stock.Pop()
		c.TurnUp()
		k.waste.Push(c)
	}
}

// ResetStock turns the whole waste back over onto the stock,
// undoing every DealThreeCards since the last reset.
func (k *Klondike) ResetStock() {
	for !k.waste.IsEmpty() {
		c := k.waste.Pop()
		c.TurnDown()
		k.stock.Push(c)
	}
}

// StockClicked draws from the stock, or recycles the waste once the stock runs out.
// Ignored while the waste or a pile is selected.
func (k *Klondike) StockClicked() {
	switch k.selection.kind {
	case WasteSelected, PileSelected:
		return
	}

	if k.stock.IsEmpty() {
		k.ResetStock()
		return
	}
	k.DealThreeCards()
}

// WasteClicked selects or deselects the waste
func (k *Klondike) WasteClicked() {
	switch k.selection.kind {
	case Idle:
		if !k.waste.IsEmpty() {
			k.selection = wasteSelection()
		}
	case WasteSelected:
		k.selection = noSelection()
	}
}

// FoundationClicked selects or deselects foundation i, or moves the selected
// waste or pile card onto it. OnWin fires afterwards if the game is won.
func (k *Klondike) FoundationClicked(i int) {
	mustBeFoundation(i)

	switch k.selection.kind {
	case Idle:
		if !k.foundations[i].IsEmpty() {
			k.selection = foundationSelection(i)
		}

	case FoundationSelected:
		k.selection = noSelection()

	case PileSelected:
		k.moveToFoundation(&k.piles[k.selection.index], i)
		k.selection = noSelection()

	case WasteSelected:
		k.moveToFoundation(&k.waste, i)
		k.selection = noSelection()
	}

	if k.onWin != nil && k.Won() {
		k.onWin()
	}
}

func (k *Klondike) moveToFoundation(from *Stack, i int) {
	c := from.Peek()
	if c == nil || !canAddToFoundation(k.foundations[i], *c) {
		return
	}
	k.foundations[i].Push(from.Pop())
}

// PileClicked handles a click on pile i: it may receive the selected card or run,
// turn its face-down top card up, or become (de)selected.
func (k *Klondike) PileClicked(i int) {
	mustBePile(i)

	switch k.selection.kind {
	case WasteSelected:
		k.moveToPile(&k.waste, i)
		k.selection = noSelection()

	case FoundationSelected:
		k.moveToPile(&k.foundations[k.selection.index], i)
		k.selection = noSelection()

	case Idle:
		c := k.piles[i].Peek()
		if c == nil {
			return
		}
		// revealing a card does not select the pile
		if !c.IsFaceUp() {
			c.TurnUp()
			return
		}
		k.selection = pileSelection(i)

	case PileSelected:
		if from := k.selection.index; from != i {
			k.moveRun(from, i)
		}
		k.selection = noSelection()
	}
}

func (k *Klondike) moveToPile(from *Stack, i int) {
	c := from.Peek()
	if c == nil || !canAddToPile(k.piles[i], *c) {
		return
	}
	k.piles[i].Push(from.Pop())
}

// moveRun lifts every face-up card off pile from and lands it on pile to,
// or puts it straight back if it does not fit.
func (k *Klondike) moveRun(from, to int) {
	run := k.piles[from].TakeFaceUpRun()

	bottom := run.Bottom()
	if bottom != nil && canAddToPile(k.piles[to], *bottom) {
		k.piles[to].PushRun(run)
		return
	}

	k.piles[from].PushRun(run)
}
