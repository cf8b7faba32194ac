package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	utils "github.com/minaorangina/klondike/internal"
	"github.com/minaorangina/klondike/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wsTestTimeout = time.Second

func TestServerPOSTNewGame(t *testing.T) {
	t.Run("succeeds and returns a fresh deal", func(t *testing.T) {
		server, s := newTestServer(t)

		got := mustCreateGame(t, server)

		utils.AssertNotEmptyString(t, got.GameID)
		utils.AssertEqual(t, got.State.GameID, got.GameID)
		require.NotNil(t, got.State.Table)
		utils.AssertEqual(t, got.State.Table.StockCount, 24)
		assert.Equal(t, []string{got.GameID}, s.Games())
	})

	t.Run("Does not match on GET /new", func(t *testing.T) {
		server, _ := newTestServer(t)
		response := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/new", nil)

		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusMethodNotAllowed)
	})
}

func TestServerGETGame(t *testing.T) {
	t.Run("returns the game's state", func(t *testing.T) {
		server, _ := newTestServer(t)
		created := mustCreateGame(t, server)

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newGetGameRequest(created.GameID))

		assertStatus(t, response.Code, http.StatusOK)
		got := decodeOutbound(t, response.Body)
		assert.Equal(t, created.State.Table, got.Table)
	})

	t.Run("404s for an unknown game", func(t *testing.T) {
		server, _ := newTestServer(t)
		response := httptest.NewRecorder()
		server.ServeHTTP(response, newGetGameRequest("nope"))

		assertStatus(t, response.Code, http.StatusNotFound)
	})

	t.Run("lists games", func(t *testing.T) {
		server, _ := newTestServer(t)
		created := mustCreateGame(t, server)

		response := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/games", nil)
		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusOK)
		var got GamesRes
		utils.AssertNoError(t, json.Unmarshal(response.Body.Bytes(), &got))
		assert.Equal(t, []string{created.GameID}, got.Games)
	})
}

func TestServerClick(t *testing.T) {
	t.Run("applies a click", func(t *testing.T) {
		server, _ := newTestServer(t)
		created := mustCreateGame(t, server)

		response := httptest.NewRecorder()
		data := mustMakeJson(t, protocol.InboundMessage{Command: protocol.StockClicked})
		server.ServeHTTP(response, newClickRequest(created.GameID, data))

		assertStatus(t, response.Code, http.StatusOK)
		got := decodeOutbound(t, response.Body)
		utils.AssertEqual(t, got.Table.WasteCount, 3)
		utils.AssertEqual(t, got.Table.StockCount, 21)
	})

	t.Run("400s for a bad index", func(t *testing.T) {
		server, _ := newTestServer(t)
		created := mustCreateGame(t, server)

		response := httptest.NewRecorder()
		data := mustMakeJson(t, protocol.InboundMessage{Command: protocol.PileClicked, Index: 7})
		server.ServeHTTP(response, newClickRequest(created.GameID, data))

		assertStatus(t, response.Code, http.StatusBadRequest)
		got := decodeOutbound(t, response.Body)
		utils.AssertEqual(t, got.Command, protocol.Error)
		utils.AssertNotEmptyString(t, got.Error)
	})

	t.Run("400s for a missing body", func(t *testing.T) {
		server, _ := newTestServer(t)
		created := mustCreateGame(t, server)

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newClickRequest(created.GameID, []byte{}))

		assertStatus(t, response.Code, http.StatusBadRequest)
	})

	t.Run("404s for an unknown game", func(t *testing.T) {
		server, _ := newTestServer(t)

		response := httptest.NewRecorder()
		data := mustMakeJson(t, protocol.InboundMessage{Command: protocol.StockClicked})
		server.ServeHTTP(response, newClickRequest("nope", data))

		assertStatus(t, response.Code, http.StatusNotFound)
	})
}

func TestServerDELETEGame(t *testing.T) {
	server, s := newTestServer(t)
	created := mustCreateGame(t, server)

	response := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodDelete, "/game/"+created.GameID, nil)
	server.ServeHTTP(response, request)

	assertStatus(t, response.Code, http.StatusNoContent)
	assert.Empty(t, s.Games())

	response = httptest.NewRecorder()
	server.ServeHTTP(response, request)
	assertStatus(t, response.Code, http.StatusNotFound)
}

func TestServerSeededGames(t *testing.T) {
	a, _ := newTestServer(t)
	b, _ := newTestServer(t)

	assert.Equal(t, mustCreateGame(t, a).State.Table, mustCreateGame(t, b).State.Table)
}

func TestWS(t *testing.T) {
	t.Run("rejects a missing game ID", func(t *testing.T) {
		server, _ := newTestServer(t)
		response := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/ws", nil)

		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusBadRequest)
	})

	t.Run("rejects an unknown game", func(t *testing.T) {
		server, _ := newTestServer(t)
		response := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/ws?game_id=nope", nil)

		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusNotFound)
	})

	t.Run("plays a game over the socket", func(t *testing.T) {
		gameServer, _ := newTestServer(t)
		created := mustCreateGame(t, gameServer)
		server := httptest.NewServer(gameServer)
		defer server.Close()

		ws := mustDialWS(t, server, created.GameID)
		ws.SetReadDeadline(time.Now().Add(wsTestTimeout))

		var first protocol.OutboundMessage
		require.NoError(t, ws.ReadJSON(&first))
		utils.AssertEqual(t, first.Table.WasteCount, 0)

		require.NoError(t, ws.WriteJSON(protocol.InboundMessage{Command: protocol.StockClicked}))

		var next protocol.OutboundMessage
		require.NoError(t, ws.ReadJSON(&next))
		utils.AssertEqual(t, next.Table.WasteCount, 3)
	})

	t.Run("every socket sees every move", func(t *testing.T) {
		gameServer, _ := newTestServer(t)
		created := mustCreateGame(t, gameServer)
		server := httptest.NewServer(gameServer)
		defer server.Close()

		wsA := mustDialWS(t, server, created.GameID)
		wsB := mustDialWS(t, server, created.GameID)
		for _, ws := range []*websocket.Conn{wsA, wsB} {
			ws.SetReadDeadline(time.Now().Add(wsTestTimeout))
			var initial protocol.OutboundMessage
			require.NoError(t, ws.ReadJSON(&initial))
		}

		require.NoError(t, wsA.WriteJSON(protocol.InboundMessage{Command: protocol.StockClicked}))

		var got protocol.OutboundMessage
		require.NoError(t, wsB.ReadJSON(&got))
		utils.AssertEqual(t, got.Table.WasteCount, 3)
	})

	t.Run("errors only go to the sender", func(t *testing.T) {
		gameServer, _ := newTestServer(t)
		created := mustCreateGame(t, gameServer)
		server := httptest.NewServer(gameServer)
		defer server.Close()

		ws := mustDialWS(t, server, created.GameID)
		ws.SetReadDeadline(time.Now().Add(wsTestTimeout))
		var initial protocol.OutboundMessage
		require.NoError(t, ws.ReadJSON(&initial))

		require.NoError(t, ws.WriteJSON(protocol.InboundMessage{Command: protocol.FoundationClicked, Index: 12}))

		var got protocol.OutboundMessage
		require.NoError(t, ws.ReadJSON(&got))
		utils.AssertEqual(t, got.Command, protocol.Error)
	})
	t.Run("answers a state request", func(t *testing.T) {
		gameServer, _ := newTestServer(t)
		created := mustCreateGame(t, gameServer)
		server := httptest.NewServer(gameServer)
		defer server.Close()

		ws := mustDialWS(t, server, created.GameID)
		ws.SetReadDeadline(time.Now().Add(wsTestTimeout))
		var initial protocol.OutboundMessage
		require.NoError(t, ws.ReadJSON(&initial))

		require.NoError(t, ws.WriteJSON(protocol.InboundMessage{Command: protocol.State}))

		var got protocol.OutboundMessage
		require.NoError(t, ws.ReadJSON(&got))
		utils.AssertEqual(t, got.Command, protocol.State)
		assert.Equal(t, initial.Table, got.Table)
	})
}
