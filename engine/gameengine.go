package engine

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/protocol"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrEngineStopped  = errors.New("game engine has stopped")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidIndex   = game.ErrInvalidIndex
)

const defaultSendBuffer = 16

// NewID constructs a game ID
func NewID() string {
	return uuid.NewV4().String()
}

// GameEngine runs one game of Klondike, applying clicks one at a time
// and keeping its subscribers up to date.
type GameEngine interface {
	ID() string
	Receive(msg protocol.InboundMessage) (protocol.OutboundMessage, error)
	State() (protocol.OutboundMessage, error)
	Subscribe() (<-chan protocol.OutboundMessage, func())
	Stop()
}

type GameEngineOpts struct {
	GameID string
	// Rand drives the shuffles. Ignored when State is set.
	Rand *rand.Rand
	// State starts the engine part way through a game
	State *game.State
	// SendBuffer is the size of each subscriber's channel
	SendBuffer int
	// OnWin is called with the game ID whenever a foundation click finds the game won
	OnWin func(gameID string)
}

type request struct {
	msg   protocol.InboundMessage
	reply chan response
}

type response struct {
	msg protocol.OutboundMessage
	err error
}

type gameEngine struct {
	id           string
	game         *game.Klondike
	inboundCh    chan request
	registerCh   chan chan protocol.OutboundMessage
	unregisterCh chan chan protocol.OutboundMessage
	subscribers  map[chan protocol.OutboundMessage]struct{}
	sendBuffer   int
	onWin        func(gameID string)
	done         chan struct{}
	stopOnce     sync.Once
}

// NewGameEngine constructs a GameEngine and starts it listening
func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	if opts.SendBuffer < 0 {
		return nil, fmt.Errorf("send buffer must not be negative, got %d", opts.SendBuffer)
	}
	if opts.SendBuffer == 0 {
		opts.SendBuffer = defaultSendBuffer
	}
	if opts.GameID == "" {
		opts.GameID = NewID()
	}

	ge := &gameEngine{
		id:           opts.GameID,
		inboundCh:    make(chan request),
		registerCh:   make(chan chan protocol.OutboundMessage),
		unregisterCh: make(chan chan protocol.OutboundMessage),
		subscribers:  map[chan protocol.OutboundMessage]struct{}{},
		sendBuffer:   opts.SendBuffer,
		onWin:        opts.OnWin,
		done:         make(chan struct{}),
	}

	if opts.State != nil {
		s := *opts.State
		s.OnWin = ge.handleWin
		ge.game = game.NewFromState(s)
	} else {
		ge.game = game.New(game.Opts{Rand: opts.Rand, OnWin: ge.handleWin})
	}

	go ge.Listen()

	return ge, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

// Receive applies msg to the game and returns the resulting snapshot.
// The snapshot also goes to every subscriber.
func (ge *gameEngine) Receive(msg protocol.InboundMessage) (protocol.OutboundMessage, error) {
	if ge.stopped() {
		return protocol.BuildErrorMessage(ge.id, ErrEngineStopped), ErrEngineStopped
	}

	reply := make(chan response, 1)
	select {
	case ge.inboundCh <- request{msg: msg, reply: reply}:
	case <-ge.done:
		return protocol.BuildErrorMessage(ge.id, ErrEngineStopped), ErrEngineStopped
	}

	res := <-reply
	return res.msg, res.err
}

// State returns a snapshot without changing anything
func (ge *gameEngine) State() (protocol.OutboundMessage, error) {
	return ge.Receive(protocol.InboundMessage{Command: protocol.State})
}

// Subscribe returns a channel of snapshots, starting with the current one,
// and a function to stop receiving them. The channel is closed on unsubscribe or Stop.
func (ge *gameEngine) Subscribe() (<-chan protocol.OutboundMessage, func()) {
	ch := make(chan protocol.OutboundMessage, ge.sendBuffer)
	if ge.stopped() {
		close(ch)
		return ch, func() {}
	}

	select {
	case ge.registerCh <- ch:
	case <-ge.done:
		close(ch)
		return ch, func() {}
	}

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			select {
			case ge.unregisterCh <- ch:
			case <-ge.done:
			}
		})
	}

	return ch, unsubscribe
}

// Stop shuts the engine down. It is safe to call more than once.
func (ge *gameEngine) Stop() {
	ge.stopOnce.Do(func() {
		close(ge.done)
	})
}

func (ge *gameEngine) stopped() bool {
	select {
	case <-ge.done:
		return true
	default:
		return false
	}
}

// Listen processes registrations and messages until the engine is stopped
func (ge *gameEngine) Listen() {
	for {
		select {
		case <-ge.done:
			for ch := range ge.subscribers {
				delete(ge.subscribers, ch)
				close(ch)
			}
			return

		case ch := <-ge.registerCh:
			ge.subscribers[ch] = struct{}{}
			ch <- protocol.BuildStateMessage(ge.id, ge.game)

		case ch := <-ge.unregisterCh:
			if _, ok := ge.subscribers[ch]; ok {
				delete(ge.subscribers, ch)
				close(ch)
			}

		case req := <-ge.inboundCh:
			msg, err := ge.handle(req.msg)
			req.reply <- response{msg: msg, err: err}
			if err == nil && req.msg.Command != protocol.State {
				ge.broadcast(msg)
			}
		}
	}
}

func (ge *gameEngine) handle(msg protocol.InboundMessage) (protocol.OutboundMessage, error) {
	if err := validate(msg); err != nil {
		log.Printf("game %s: %s", ge.id, err)
		return protocol.BuildErrorMessage(ge.id, err), err
	}

	switch msg.Command {
	case protocol.NewGame:
		ge.game.NewGame()
	case protocol.StockClicked:
		ge.game.StockClicked()
	case protocol.WasteClicked:
		ge.game.WasteClicked()
	case protocol.FoundationClicked:
		ge.game.FoundationClicked(msg.Index)
	case protocol.PileClicked:
		ge.game.PileClicked(msg.Index)
	}

	if msg.Command != protocol.State {
		log.Printf("game %s: %s", ge.id, describe(msg))
	}

	return protocol.BuildStateMessage(ge.id, ge.game), nil
}

func (ge *gameEngine) handleWin() {
	log.Printf("game %s: won", ge.id)
	if ge.onWin != nil {
		ge.onWin(ge.id)
	}
}

func (ge *gameEngine) broadcast(msg protocol.OutboundMessage) {
	for ch := range ge.subscribers {
		select {
		case ch <- msg:
		default:
			log.Printf("game %s: subscriber is not keeping up, dropping %s", ge.id, msg.Command)
		}
	}
}

func validate(msg protocol.InboundMessage) error {
	switch msg.Command {
	case protocol.NewGame, protocol.State, protocol.StockClicked, protocol.WasteClicked:
		return nil
	case protocol.FoundationClicked, protocol.PileClicked:
		if msg.Index < 0 || msg.Index > msg.Command.MaxIndex() {
			return fmt.Errorf("%s %d: %w", msg.Command, msg.Index, ErrInvalidIndex)
		}
		return nil
	}
	return fmt.Errorf("%w %d", ErrUnknownCommand, msg.Command)
}

func describe(msg protocol.InboundMessage) string {
	switch msg.Command {
	case protocol.FoundationClicked:
		return fmt.Sprintf("foundation %d clicked", msg.Index)
	case protocol.PileClicked:
		return fmt.Sprintf("pile %d clicked", msg.Index)
	case protocol.StockClicked:
		return "stock clicked"
	case protocol.WasteClicked:
		return "waste clicked"
	}
	return msg.Command.String()
}
