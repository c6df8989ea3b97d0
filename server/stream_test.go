package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tiggercwh/go-bowling/bowling"
	"github.com/tiggercwh/go-bowling/gameModel"
)

func TestStream(t *testing.T) {
	server := NewGameServer()
	ts := httptest.NewServer(server.routes())
	defer ts.Close()

	game := newGame(t, server.routes(), "PJS")
	conn := dialStream(t, ts, game.ID)
	defer conn.Close()

	hello := readStream(t, conn)
	if !hello.Success || hello.GameState == nil || hello.GameState.ID != game.ID {
		t.Fatalf("unexpected greeting %+v", hello)
	}

	// A roll over HTTP is pushed to the stream.
	rollPins(t, server.routes(), game.ID, 7, http.StatusOK)
	update := readStream(t, conn)
	if !update.Success || update.GameState.Frames[0].Value != 7 {
		t.Fatalf("unexpected update %+v", update)
	}

	// A roll over the stream is applied and echoed back.
	pins := 3
	if err := conn.WriteJSON(gameModel.RollRequest{Pins: &pins}); err != nil {
		t.Fatalf("write roll: %v", err)
	}
	update = readStream(t, conn)
	first := update.GameState.Frames[0]
	if first.Status != bowling.StatusPending || first.Mark != "spare" {
		t.Errorf("expected pending spare, got %+v", first)
	}

	// A rejected roll is answered with an error.
	pins = 11
	if err := conn.WriteJSON(gameModel.RollRequest{Pins: &pins}); err != nil {
		t.Fatalf("write roll: %v", err)
	}
	rejected := readStream(t, conn)
	if rejected.Success || rejected.Code != string(bowling.CodeInvalidPinCount) {
		t.Errorf("expected invalid pin count, got %+v", rejected)
	}
}

func TestStreamUnknownGame(t *testing.T) {
	ts := httptest.NewServer(NewGameServer().routes())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/game/missing/stream"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("expected dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %v", resp)
	}
}

func dialStream(t *testing.T, ts *httptest.Server, gameID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/game/" + gameID + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial stream: %v", err)
	}
	return conn
}

func readStream(t *testing.T, conn *websocket.Conn) gameModel.RollResponse {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg gameModel.RollResponse
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read stream: %v", err)
	}
	return msg
}
