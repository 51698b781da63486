// internal/httpserver/routes_boards.go
//
// HTTP routes for the hand-made reference boards.
// Exposes two endpoints under /api/boards:
//   - GET /api/boards     → number of reference boards
//   - GET /api/boards/{n} → board n (1-based) in the same shape as /api/board
//
// Boards are loaded once at startup by boards.Init and never change.

package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/battleship-backend/internal/boards"
)

// mountBoards registers all /boards routes on r.
func (s *Server) mountBoards(r chi.Router) {
	r.Route("/boards", func(r chi.Router) {
		r.Get("/", handleBoardCount)
		r.Get("/{n}", handleReferenceBoard)
	})
}

// countRes is returned by GET /api/boards.
type countRes struct {
	Count int `json:"count"`
}

func handleBoardCount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, countRes{Count: boards.Count()})
}

// handleReferenceBoard returns one reference board.
// - 400 if n is not an integer.
// - 404 if n is outside 1..count.
func handleReferenceBoard(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_board_number"})
		return
	}
	st, err := boards.Get(n)
	if errors.Is(err, boards.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "server_error"})
		return
	}
	writeJSON(w, http.StatusOK, st)
}
