package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/klondike/config"
	utils "github.com/minaorangina/klondike/internal"
	"github.com/minaorangina/klondike/protocol"
	"github.com/minaorangina/klondike/store"
)

func testConfig() config.Config {
	return config.Config{AllowedOrigins: "*", Seed: 17, SendBuffer: 16}
}

func newTestServer(t *testing.T) (*GameServer, *store.InMemoryGameStore) {
	t.Helper()

	s := store.NewInMemoryGameStore()
	t.Cleanup(func() {
		for _, id := range s.Games() {
			s.RemoveGame(id)
		}
	})

	return NewServer(s, testConfig()), s
}

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest() *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", nil)
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newClickRequest(gameID string, data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/game/"+gameID+"/click", bytes.NewBuffer(data))
	return request
}

func mustCreateGame(t *testing.T, server *GameServer) NewGameRes {
	t.Helper()

	response := httptest.NewRecorder()
	server.ServeHTTP(response, newCreateGameRequest())
	assertStatus(t, response.Code, http.StatusCreated)

	var got NewGameRes
	utils.AssertNoError(t, json.Unmarshal(response.Body.Bytes(), &got))
	return got
}

func decodeOutbound(t *testing.T, body *bytes.Buffer) protocol.OutboundMessage {
	t.Helper()

	var got protocol.OutboundMessage
	if err := json.Unmarshal(body.Bytes(), &got); err != nil {
		t.Fatalf("Could not unmarshal json: %s", err.Error())
	}
	return got
}

func mustDialWS(t *testing.T, server *httptest.Server, gameID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?game_id=" + gameID
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("could not open a ws connection on %s %v", url, err)
	}
	t.Cleanup(func() { ws.Close() })

	return ws
}
