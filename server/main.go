package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/tiggercwh/go-bowling/gameModel"
)

func setHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func (gs *GameServer) handleNewGame(w http.ResponseWriter, r *http.Request) {
	setHeaders(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	var req gameModel.NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	state, err := gs.createGame(req.Player)
	if err != nil {
		status, code := statusFor(err)
		writeJSON(w, status, gameModel.NewGameResponse{
			Success: false,
			Message: err.Error(),
			Code:    code,
		})
		return
	}
	writeJSON(w, http.StatusCreated, gameModel.NewGameResponse{
		Success:   true,
		Message:   "New game created successfully",
		GameState: &state,
	})
}

func (gs *GameServer) handleRoll(w http.ResponseWriter, r *http.Request) {
	setHeaders(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	var req gameModel.RollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	gameID := mux.Vars(r)["gameID"]

	var (
		state gameModel.GameState
		err   = errMissingPins
	)
	if req.Pins != nil {
		state, err = gs.roll(gameID, *req.Pins)
	}
	if err != nil {
		status, code := statusFor(err)
		writeJSON(w, status, gameModel.RollResponse{
			Success: false,
			Message: err.Error(),
			Code:    code,
		})
		return
	}
	writeJSON(w, http.StatusOK, gameModel.RollResponse{
		Success:   true,
		Message:   "Roll recorded",
		GameState: &state,
		GameOver:  state.GameOver,
	})
}

func (gs *GameServer) handleGetGame(w http.ResponseWriter, r *http.Request) {
	setHeaders(w)
	gameID := mux.Vars(r)["gameID"]
	state, err := gs.gameState(gameID)
	if err != nil {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (gs *GameServer) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/game/new", gs.handleNewGame).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/game/{gameID}/roll", gs.handleRoll).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/game/{gameID}/stream", gs.handleStream).Methods("GET")
	r.HandleFunc("/api/game/{gameID}", gs.handleGetGame).Methods("GET")
	return r
}

func (gs *GameServer) runSweeper(ctx context.Context, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gs.sweep(ttl)
		}
	}
}

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	log.SetPrefix("[BOWLING] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameServer := NewGameServer()
	go gameServer.runSweeper(ctx, cfg.GameTTL, cfg.SweepInterval)

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           gameServer.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("failed to serve: %v", err)
	}
}
