package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/defective-development/ehswellnessbingo/internal/infra"
	uc "github.com/defective-development/ehswellnessbingo/internal/usecase"
)

type Handlers struct {
	UC  *uc.BingoUsecase
	Log infra.Logger
}

func NewHandlers(uc *uc.BingoUsecase, log infra.Logger) *Handlers {
	return &Handlers{UC: uc, Log: log}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func errorResp(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]interface{}{"error": map[string]string{"code": code, "message": msg}})
}

func (h *Handlers) internalError(w http.ResponseWriter, op string, err error) {
	h.Log.Errorf("%s: %v", op, err)
	errorResp(w, http.StatusInternalServerError, "INTERNAL", err.Error())
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (h *Handlers) Teams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.UC.Teams(r.Context())
	if err != nil {
		h.internalError(w, "list teams", err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

func (h *Handlers) Buildings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.UC.Buildings())
}

// Login runs the two-phase login: authenticate when the username is known,
// otherwise register, but only if the request carries a building and team.
// A first-phase probe without them gets 404 so the client can ask for the
// missing fields.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Building string `json:"building"`
		Team     string `json:"team"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	if payload.Username == "" || payload.Password == "" {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "username and password required")
		return
	}

	res, err := h.UC.Login(r.Context(), payload.Username, payload.Password)
	if errors.Is(err, uc.ErrNotFound) {
		if payload.Building == "" || payload.Team == "" {
			errorResp(w, http.StatusNotFound, "USER_NOT_FOUND", "user not found")
			return
		}
		res, err = h.UC.Register(r.Context(), payload.Username, payload.Password, payload.Building, payload.Team)
		if errors.Is(err, uc.ErrUserExists) {
			// Lost a registration race; the user exists now.
			res, err = h.UC.Login(r.Context(), payload.Username, payload.Password)
		}
	}
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrWrongPassword):
			errorResp(w, http.StatusForbidden, "WRONG_PASSWORD", "incorrect password")
		case errors.Is(err, uc.ErrNotFound):
			errorResp(w, http.StatusNotFound, "USER_NOT_FOUND", "user not found")
		case errors.Is(err, uc.ErrNoCapacity):
			errorResp(w, http.StatusConflict, "NO_CAPACITY", err.Error())
		default:
			h.internalError(w, "login", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) GetTeamBoard(w http.ResponseWriter, r *http.Request) {
	building := r.URL.Query().Get("building")
	team := r.URL.Query().Get("team")
	if building == "" || team == "" {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "building and team parameters are required")
		return
	}
	tb, err := h.UC.TeamBoard(r.Context(), building, team)
	if err != nil {
		if errors.Is(err, uc.ErrNotFound) {
			errorResp(w, http.StatusNotFound, "BOARD_NOT_FOUND", "board not found")
			return
		}
		h.internalError(w, "get team board", err)
		return
	}
	writeJSON(w, http.StatusOK, tb)
}

func (h *Handlers) Tile(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Building string `json:"building"`
		Team     string `json:"team"`
		Row      *int   `json:"row"`
		Col      *int   `json:"col"`
		Selected *bool  `json:"selected"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	if payload.Username == "" || payload.Building == "" || payload.Team == "" ||
		payload.Row == nil || payload.Col == nil || payload.Selected == nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "username, building, team, row, col, and selected are required")
		return
	}
	tile, err := h.UC.ToggleTile(r.Context(), payload.Username, payload.Building, payload.Team,
		*payload.Row, *payload.Col, *payload.Selected)
	if err != nil {
		if errors.Is(err, uc.ErrNotFound) {
			errorResp(w, http.StatusNotFound, "NOT_FOUND", "board or tile not found")
			return
		}
		h.internalError(w, "toggle tile", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "tile": tile})
}

func (h *Handlers) NewBoard(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Team     string `json:"team"`
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	if payload.Team == "" || payload.Username == "" {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "team and username are required")
		return
	}
	board, err := h.UC.NewBoard(r.Context(), payload.Username, payload.Team)
	if err != nil {
		if errors.Is(err, uc.ErrNotFound) {
			errorResp(w, http.StatusNotFound, "USER_NOT_FOUND", "user not found")
			return
		}
		h.internalError(w, "new board", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"board": board})
}

func (h *Handlers) UpdateBingos(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Building string `json:"building"`
		Team     string `json:"team"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json")
		return
	}
	if payload.Building == "" || payload.Team == "" {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "building and team are required")
		return
	}
	if err := h.UC.UpdateBingos(r.Context(), payload.Building, payload.Team); err != nil {
		h.internalError(w, "update bingos", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handlers) Scoreboard(w http.ResponseWriter, r *http.Request) {
	building := r.URL.Query().Get("building")
	if building == "" {
		errorResp(w, http.StatusBadRequest, "BAD_REQUEST", "building parameter is required")
		return
	}
	rankings, err := h.UC.Scoreboard(r.Context(), building)
	if err != nil {
		h.internalError(w, "scoreboard", err)
		return
	}
	writeJSON(w, http.StatusOK, rankings)
}
