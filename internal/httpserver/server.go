// internal/httpserver/server.go
//
// HTTP server wiring for the battleship backend.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     request logging, JSON, CORS).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /api/new-game, GET /api/board, GET /api/possible-states.
//   - Reference boards: mounted under /api/boards.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled for the single frontend origin.
//   - Board documents are rendered by game.State's MarshalJSON.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/battleship-backend/internal/service"
)

// Options configures the HTTP layer.
type Options struct {
	ClientOrigin string        // CORS origin; defaults to http://localhost:3000
	Timeout      time.Duration // per-request handler bound; defaults to 10s
}

// Server bundles the router and the game service.
type Server struct {
	r   *chi.Mux
	svc *service.Service
}

// New constructs a Server, installs middleware, and registers routes.
func New(svc *service.Service, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:3000"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	s := &Server{r: chi.NewRouter(), svc: svc}

	// --- middleware ---
	s.r.Use(chimw.RequestID)             // add X-Request-ID
	s.r.Use(chimw.RealIP)                // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)               // one log line per request
	s.r.Use(chimw.Recoverer)             // recover from panics
	s.r.Use(chimw.Timeout(opts.Timeout)) // bound handler time
	s.r.Use(jsonContentType)             // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"battleship-go","endpoints":["/health","POST /api/new-game","/api/board","/api/possible-states","/api/boards"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Game endpoints
	s.r.Route("/api", func(r chi.Router) {
		r.Post("/new-game", s.handleNewGame)
		r.Get("/board", s.handleBoard)
		r.Get("/possible-states", s.handlePossibleStates)
		s.mountBoards(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("dur", time.Since(start)).
			Msg("http")
	})
}

// ------------------------------ GAME ---------------------------------------

// handleNewGame replaces the current board and returns it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	st, err := s.svc.Reset(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("new game")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "generation_failed"})
		return
	}
	w.Header().Set("X-Game-ID", st.ID)
	writeJSON(w, http.StatusOK, st)
}

// handleBoard returns the current board unchanged.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	st, err := s.svc.Current(r.Context())
	if errors.Is(err, service.ErrNotInitialized) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "not_initialized"})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("current board")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "server_error"})
		return
	}
	w.Header().Set("X-Game-ID", st.ID)
	writeJSON(w, http.StatusOK, st)
}

// handlePossibleStates returns the fixed possible-states figure.
func (s *Server) handlePossibleStates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.StateSpaceEstimate())
}

// ------------------------------- small util --------------------------------

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}
