package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the API surface. publicDir, when non-empty, is served at
// the root for the static client.
func NewRouter(h *Handlers, publicDir string) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/teams", h.Teams).Methods("GET")
	r.HandleFunc("/buildings", h.Buildings).Methods("GET")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/getTeamBoard", h.GetTeamBoard).Methods("GET")
	r.HandleFunc("/tile", h.Tile).Methods("POST")
	r.HandleFunc("/newboard", h.NewBoard).Methods("POST")
	r.HandleFunc("/updateBingos", h.UpdateBingos).Methods("POST")
	r.HandleFunc("/scoreboard", h.Scoreboard).Methods("GET")
	if publicDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(publicDir)))
	}
	return r
}
