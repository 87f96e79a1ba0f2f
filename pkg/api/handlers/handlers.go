package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/input"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/queue"
	"github.com/cbodonnell/snake/pkg/repositories"
	"github.com/cbodonnell/snake/pkg/repositories/models"
	"github.com/cbodonnell/snake/pkg/state"
	"github.com/gorilla/mux"
)

func HandleGetState(stateManager state.StateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameState, err := stateManager.Get(r.Context())
		if err != nil {
			log.Error("failed to get game state: %v", err)
			http.Error(w, "Failed to get game state", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, gameState)
	}
}

func HandleGetSnapshot(stateManager state.StateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := stateManager.GetSnapshot(r.Context())
		if err != nil {
			log.Error("failed to get snapshot: %v", err)
			http.Error(w, "Failed to get snapshot", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}

func HandleGetHighScore(repository repositories.Repository, key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		highScore, err := repository.GetHighScore(r.Context(), key)
		if err != nil {
			if !repositories.IsNotFound(err) {
				log.Error("failed to get high score: %v", err)
				http.Error(w, "Failed to get high score", http.StatusInternalServerError)
				return
			}
			highScore = &models.HighScore{Key: key}
		}
		writeJSON(w, http.StatusOK, highScore)
	}
}

// HandleCommand enqueues a fresh command for every request.
func HandleCommand(commandQueue queue.Queue, newCommand func() interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enqueue(w, commandQueue, newCommand())
	}
}

func HandleDirection(commandQueue queue.Queue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		direction, err := types.ParseDirection(mux.Vars(r)["direction"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		enqueue(w, commandQueue, &types.DirectionCommand{Direction: direction})
	}
}

// HandleInput accepts a raw key, swipe or button event as JSON.
func HandleInput(commandQueue queue.Queue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event := input.Event{}
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&event); err != nil {
			http.Error(w, "Failed to decode input event", http.StatusBadRequest)
			return
		}
		command, ok := input.Map(event)
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		enqueue(w, commandQueue, command)
	}
}

func enqueue(w http.ResponseWriter, commandQueue queue.Queue, command interface{}) {
	if err := commandQueue.Enqueue(command); err != nil {
		log.Error("failed to enqueue %T: %v", command, err)
		http.Error(w, "Game is busy", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
