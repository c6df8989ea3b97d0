package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/tiggercwh/go-bowling/gameModel"
)

const (
	subscriberQueue = 16
	writeWait       = 10 * time.Second
	maxMessageSize  = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// handleStream upgrades to a websocket that receives the game state on
// connect and after every recorded roll. Clients may roll by sending
// {"pins": N}; rejected rolls are answered to the sender only.
func (gs *GameServer) handleStream(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["gameID"]
	entry, exists := gs.getGame(gameID)
	if !exists {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade stream for game %s: %v", gameID, err)
		return
	}
	conn.SetReadLimit(maxMessageSize)

	sub := &subscriber{
		conn: conn,
		send: make(chan []byte, subscriberQueue),
	}
	entry.mu.Lock()
	entry.subscribers[sub] = struct{}{}
	state := entry.stateLocked()
	if payload, err := json.Marshal(gameModel.RollResponse{
		Success:   true,
		Message:   "Connected",
		GameState: &state,
		GameOver:  state.GameOver,
	}); err == nil {
		entry.sendLocked(sub, payload)
	}
	entry.mu.Unlock()
	log.Printf("stream opened for game %s", gameID)

	go sub.writePump()
	gs.readPump(entry, sub)

	entry.mu.Lock()
	entry.unsubscribeLocked(sub)
	entry.mu.Unlock()
	log.Printf("stream closed for game %s", gameID)
}

func (gs *GameServer) readPump(entry *gameEntry, sub *subscriber) {
	for {
		var req gameModel.RollRequest
		if err := sub.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read stream for game %s: %v", entry.id, err)
			}
			return
		}
		if req.Pins == nil {
			gs.reject(entry, sub, errMissingPins)
			continue
		}
		if _, err := gs.roll(entry.id, *req.Pins); err != nil {
			gs.reject(entry, sub, err)
		}
	}
}

func (gs *GameServer) reject(entry *gameEntry, sub *subscriber, err error) {
	_, code := statusFor(err)
	payload, merr := json.Marshal(gameModel.RollResponse{
		Success: false,
		Message: err.Error(),
		Code:    code,
	})
	if merr != nil {
		log.Printf("marshal stream error for game %s: %v", entry.id, merr)
		return
	}
	entry.mu.Lock()
	entry.sendLocked(sub, payload)
	entry.mu.Unlock()
}

func (s *subscriber) writePump() {
	defer s.conn.Close()
	for payload := range s.send {
		s.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
