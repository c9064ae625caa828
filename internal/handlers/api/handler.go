package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/reelcraft/spindle/internal/renderer"
	"github.com/reelcraft/spindle/internal/repositories/spin_history"
	"github.com/reelcraft/spindle/internal/services/spin"
)

type HandlerDeps struct {
	Spin spin.Service

	// State is the renderer the spin service draws into
	State *renderer.Memory

	// History is optional; the history endpoint 404s without it
	History spin_history.Repository
}

type Handler struct {
	spin    spin.Service
	state   *renderer.Memory
	history spin_history.Repository
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		spin:    deps.Spin,
		state:   deps.State,
		history: deps.History,
	}
}

// Router builds the chi router for the machine endpoints
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Route("/machine", func(rr chi.Router) {
		rr.Post("/spin", h.Spin)
		rr.Get("/state", h.State)
		rr.Get("/history", h.History)
	})

	return r
}

// Spin dispatches one play; a play made while the reels are moving
// reports dispatched=false rather than failing
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	output, err := h.spin.Play(r.Context(), &spin.PlayInput{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toSpinResponse(output))
}

// State reports every reel's visual state
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toStateResponse(h.state.Strips()))
}

// History returns recent spins, newest first
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		http.Error(w, "spin history not enabled", http.StatusNotFound)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	output, err := h.history.GetRecentSpins(r.Context(), &spin_history.GetRecentSpinsInput{
		Limit: limit,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryResponse(output.Spins))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
