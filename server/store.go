package main

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tiggercwh/go-bowling/bowling"
	"github.com/tiggercwh/go-bowling/gameModel"
)

var errGameNotFound = errors.New("game not found")

// gameEntry is a stored game. mu serialises every access to game, which is
// not safe for concurrent use, and to the stream subscribers.
type gameEntry struct {
	mu           sync.Mutex
	id           string
	game         *bowling.Game
	createdAt    time.Time
	lastActivity time.Time
	subscribers  map[*subscriber]struct{}
}

type GameServer struct {
	games map[string]*gameEntry
	mutex sync.RWMutex
	now   func() time.Time
}

func NewGameServer() *GameServer {
	return &GameServer{
		games: make(map[string]*gameEntry),
		now:   time.Now,
	}
}

func (gs *GameServer) createGame(player string) (gameModel.GameState, error) {
	game, err := bowling.Start(player)
	if err != nil {
		return gameModel.GameState{}, err
	}
	now := gs.now()
	entry := &gameEntry{
		id:           uuid.NewString(),
		game:         game,
		createdAt:    now,
		lastActivity: now,
		subscribers:  make(map[*subscriber]struct{}),
	}
	state := entry.stateLocked()
	gs.mutex.Lock()
	gs.games[entry.id] = entry
	gs.mutex.Unlock()

	log.Printf("created game %s for %s", entry.id, game.Player())
	return state, nil
}

func (gs *GameServer) getGame(gameID string) (*gameEntry, bool) {
	gs.mutex.RLock()
	defer gs.mutex.RUnlock()
	entry, exists := gs.games[gameID]
	return entry, exists
}

func (gs *GameServer) gameState(gameID string) (gameModel.GameState, error) {
	entry, exists := gs.getGame(gameID)
	if !exists {
		return gameModel.GameState{}, errGameNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.stateLocked(), nil
}

// roll bowls pins in a game and pushes the new state to its stream
// subscribers.
func (gs *GameServer) roll(gameID string, pins int) (gameModel.GameState, error) {
	entry, exists := gs.getGame(gameID)
	if !exists {
		return gameModel.GameState{}, errGameNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if _, err := entry.game.Bowl(pins); err != nil {
		return gameModel.GameState{}, err
	}
	entry.lastActivity = gs.now()
	state := entry.stateLocked()
	entry.broadcastLocked(gameModel.RollResponse{
		Success:   true,
		Message:   "Roll recorded",
		GameState: &state,
		GameOver:  state.GameOver,
	})
	return state, nil
}

// sweep drops games idle for longer than ttl and reports how many it removed.
func (gs *GameServer) sweep(ttl time.Duration) int {
	cutoff := gs.now().Add(-ttl)

	gs.mutex.Lock()
	var expired []*gameEntry
	for id, entry := range gs.games {
		entry.mu.Lock()
		idle := entry.lastActivity.Before(cutoff)
		entry.mu.Unlock()
		if idle {
			delete(gs.games, id)
			expired = append(expired, entry)
		}
	}
	gs.mutex.Unlock()

	for _, entry := range expired {
		entry.mu.Lock()
		for sub := range entry.subscribers {
			entry.unsubscribeLocked(sub)
		}
		entry.mu.Unlock()
		log.Printf("swept idle game %s", entry.id)
	}
	return len(expired)
}

func (e *gameEntry) stateLocked() gameModel.GameState {
	return gameModel.NewGameState(e.id, e.game, e.createdAt, e.lastActivity)
}

func (e *gameEntry) broadcastLocked(msg gameModel.RollResponse) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal stream message for game %s: %v", e.id, err)
		return
	}
	for sub := range e.subscribers {
		e.sendLocked(sub, payload)
	}
}

// sendLocked queues payload for one subscriber, dropping the subscriber if
// its queue is full.
func (e *gameEntry) sendLocked(sub *subscriber, payload []byte) {
	if _, ok := e.subscribers[sub]; !ok {
		return
	}
	select {
	case sub.send <- payload:
	default:
		log.Printf("dropping slow stream subscriber on game %s", e.id)
		e.unsubscribeLocked(sub)
	}
}

func (e *gameEntry) unsubscribeLocked(sub *subscriber) {
	if _, ok := e.subscribers[sub]; !ok {
		return
	}
	delete(e.subscribers, sub)
	close(sub.send)
}
