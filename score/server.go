package score

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lixenwraith/racer796/parameter"
)

// ListLimit caps the results served by /results
const ListLimit = 100

// SaveResponse acknowledges a saved result
type SaveResponse struct {
	OK   bool `json:"ok"`
	Rank int  `json:"rank"`
}

// Handler serves the score table
type Handler struct {
	store *Store
}

// NewHandler creates a handler backed by store
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the score table endpoints
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/results", h.results)
	r.Post("/save", h.save)
}

// NewRouter builds the complete server routing with the standard middleware stack
func NewRouter(store *Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	NewHandler(store).RegisterRoutes(r)
	return r
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	render(w, r, LeaderboardPage(h.store.Top(parameter.ScoreTableRows)))
}

func (h *Handler) results(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Top(ListLimit))
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	name := CleanName(r.FormValue("name"))
	if name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}

	score, err := Decode(r.FormValue("key"), r.FormValue("token"), r.UserAgent())
	if err != nil {
		log.Printf("score: rejected save from %s: %v", r.RemoteAddr, err)
		http.Error(w, "invalid token", http.StatusBadRequest)
		return
	}

	rank := h.store.Add(name, score)
	writeJSON(w, http.StatusOK, SaveResponse{OK: true, Rank: rank})
}

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
