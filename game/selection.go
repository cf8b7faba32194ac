package game

import "fmt"

// SelectionKind says which kind of zone, if any, is selected
type SelectionKind int

const (
	Idle SelectionKind = iota
	WasteSelected
	FoundationSelected
	PileSelected
)

var selectionKindNames = map[SelectionKind]string{
	Idle:               "Idle",
	WasteSelected:      "WasteSelected",
	FoundationSelected: "FoundationSelected",
	PileSelected:       "PileSelected",
}

func (k SelectionKind) String() string {
	return selectionKindNames[k]
}

// Selection is the single zone currently picked and awaiting a destination.
// Its zero value is Idle.
type Selection struct {
	kind  SelectionKind
	index int
}

func noSelection() Selection {
	return Selection{kind: Idle}
}

func wasteSelection() Selection {
	return Selection{kind: WasteSelected}
}

func foundationSelection(i int) Selection {
	return Selection{kind: FoundationSelected, index: i}
}

func pileSelection(i int) Selection {
	return Selection{kind: PileSelected, index: i}
}

func (s Selection) Kind() SelectionKind {
	return s.kind
}

// Index is the selected foundation or pile, or -1 when neither is selected
func (s Selection) Index() int {
	if s.kind != FoundationSelected && s.kind != PileSelected {
		return -1
	}
	return s.index
}

func (s Selection) String() string {
	switch s.kind {
	case FoundationSelected, PileSelected:
		return fmt.Sprintf("%s(%d)", s.kind, s.index)
	}
	return s.kind.String()
}
