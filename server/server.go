package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/klondike/config"
	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/engine"
	"github.com/minaorangina/klondike/protocol"
	"github.com/minaorangina/klondike/store"
)

type NewGameRes struct {
	GameID string                   `json:"game_id"`
	State  protocol.OutboundMessage `json:"state"`
}

type GamesRes struct {
	Games []string `json:"games"`
}

// GameServer is a game server
type GameServer struct {
	store    store.GameStore
	cfg      config.Config
	upgrader websocket.Upgrader

	mu   sync.Mutex
	seed *rand.Rand

	http.Server
}

// NewServer creates a new GameServer
func NewServer(s store.GameStore, cfg config.Config) *GameServer {
	g := &GameServer{
		store: s,
		cfg:   cfg,
		seed:  deck.NewRand(cfg.Seed),
	}

	g.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     g.checkOrigin,
	}

	router := chi.NewRouter()
	router.Get("/games", g.HandleListGames)
	router.Post("/new", g.HandleNewGame)
	router.Route("/game/{gameID}", func(r chi.Router) {
		r.Get("/", g.HandleFindGame)
		r.Delete("/", g.HandleDeleteGame)
		r.Post("/click", g.HandleClick)
	})
	router.Get("/ws", g.HandleWS)

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.Origins()),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	g.Addr = cfg.Addr
	g.Handler = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(cors(router))

	return g
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// newRand hands each game its own source. With a configured seed the
// sequence of games is reproducible.
func (g *GameServer) newRand() *rand.Rand {
	g.mu.Lock()
	defer g.mu.Unlock()
	return rand.New(rand.NewSource(g.seed.Int63()))
}

func (g *GameServer) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range g.cfg.Origins() {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// HandleListGames lists the running games
func (g *GameServer) HandleListGames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GamesRes{Games: g.store.Games()})
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	game, err := engine.NewGameEngine(engine.GameEngineOpts{
		Rand:       g.newRand(),
		SendBuffer: g.cfg.SendBuffer,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if err := g.store.AddGame(game); err != nil {
		game.Stop()
		writeError(w, err)
		return
	}

	state, err := game.State()
	if err != nil {
		writeError(w, err)
		return
	}

	log.Printf("game %s: created", game.ID())
	writeJSON(w, http.StatusCreated, NewGameRes{GameID: game.ID(), State: state})
}

func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	game, err := g.store.FindGame(chi.URLParam(r, "gameID"))
	if err != nil {
		writeError(w, err)
		return
	}

	state, err := game.State()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (g *GameServer) HandleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := g.store.RemoveGame(chi.URLParam(r, "gameID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleClick applies one InboundMessage to a game
func (g *GameServer) HandleClick(w http.ResponseWriter, r *http.Request) {
	game, err := g.store.FindGame(chi.URLParam(r, "gameID"))
	if err != nil {
		writeError(w, err)
		return
	}

	var msg protocol.InboundMessage
	err = json.NewDecoder(r.Body).Decode(&msg)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return
	}

	out, err := game.Receive(msg)
	if err != nil {
		writeJSON(w, statusFor(err), out)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// HandleWS upgrades to a websocket that plays the game given by ?game_id=
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		log.Println("missing game ID")
		http.Error(w, "missing game ID", http.StatusBadRequest)
		return
	}

	game, err := g.store.FindGame(gameID)
	if err != nil {
		writeError(w, err)
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		log.Println(err)
		return
	}

	engine.NewWSClient(conn, game).Serve()
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrUnknownGameID):
		return http.StatusNotFound
	case errors.Is(err, store.ErrGameExists):
		return http.StatusConflict
	case errors.Is(err, engine.ErrInvalidIndex), errors.Is(err, engine.ErrUnknownCommand):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrEngineStopped):
		return http.StatusGone
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	bytes, err := json.Marshal(v)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Println(err.Error())
	}
	http.Error(w, err.Error(), status)
}

func writeParseError(err error, w http.ResponseWriter) {
	if err == io.EOF {
		http.Error(w, "Missing body", http.StatusBadRequest)
		return
	}
	http.Error(w, "Malformed body", http.StatusBadRequest)
}
