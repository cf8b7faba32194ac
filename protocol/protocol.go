package protocol

import "github.com/minaorangina/klondike/game"

// InboundMessage is a click (or other request) from a client to a GameEngine
type InboundMessage struct {
	Command Cmd `json:"command"`
	Index   int `json:"index"`
}

// OutboundMessage is a message from GameEngine to its clients
type OutboundMessage struct {
	GameID    string        `json:"gameID"`
	Command   Cmd           `json:"command"`
	Message   string        `json:"message,omitempty"`
	Table     *Table        `json:"table,omitempty"`
	Selection SelectionView `json:"selection"`
	Won       bool          `json:"won"`
	Error     string        `json:"error,omitempty"`
}

// CardView is a card as a client may see it. Face-down cards only show their back.
type CardView struct {
	Rank     int    `json:"rank,omitempty"`
	Suit     string `json:"suit,omitempty"`
	FaceUp   bool   `json:"faceUp"`
	ImageKey string `json:"imageKey"`
}

// Table is everything a renderer needs to draw the game
type Table struct {
	StockCount  int          `json:"stockCount"`
	StockTop    *CardView    `json:"stockTop"`
	WasteCount  int          `json:"wasteCount"`
	WasteTop    *CardView    `json:"wasteTop"`
	Foundations []*CardView  `json:"foundations"`
	Piles       [][]CardView `json:"piles"`
}

type SelectionView struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
}

type Cmd int

const (
	Null Cmd = iota
	NewGame
	StockClicked
	WasteClicked
	FoundationClicked
	PileClicked
	State
	Won
	Error
)

var CmdNames = map[Cmd]string{
	Null:              "Null",
	NewGame:           "NewGame",
	StockClicked:      "StockClicked",
	WasteClicked:      "WasteClicked",
	FoundationClicked: "FoundationClicked",
	PileClicked:       "PileClicked",
	State:             "State",
	Won:               "Won",
	Error:             "Error",
}

func (c Cmd) String() string {
	if name, ok := CmdNames[c]; ok {
		return name
	}
	return "Unknown"
}

// IsClick reports whether the command is one of the zone clicks
func (c Cmd) IsClick() bool {
	switch c {
	case StockClicked, WasteClicked, FoundationClicked, PileClicked:
		return true
	}
	return false
}

// MaxIndex is the highest zone index a command accepts, or -1 if it takes none
func (c Cmd) MaxIndex() int {
	switch c {
	case FoundationClicked:
		return game.NumFoundations - 1
	case PileClicked:
		return game.NumPiles - 1
	}
	return -1
}
