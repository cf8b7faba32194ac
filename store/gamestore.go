package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/klondike/engine"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrGameExists    = errors.New("game already exists")
)

type GameStore interface {
	FindGame(gameID string) (engine.GameEngine, error)
	AddGame(game engine.GameEngine) error
	RemoveGame(gameID string) error
	Games() []string
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]engine.GameEngine
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]engine.GameEngine{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) (engine.GameEngine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGameID, gameID)
	}

	return game, nil
}

func (s *InMemoryGameStore) AddGame(game engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, game.ID())
	}

	s.games[game.ID()] = game
	return nil
}

// RemoveGame stops the game's engine and forgets it
func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownGameID, gameID)
	}

	game.Stop()
	delete(s.games, gameID)
	return nil
}

// Games lists the IDs of every stored game
func (s *InMemoryGameStore) Games() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	return ids
}
