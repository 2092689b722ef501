// Package fsmhttp is a thin debug HTTP surface over the automaton core: it
// compiles, stores, and transforms automata in memory for the lifetime of
// the process. It exists purely as a development/inspection convenience —
// nothing here is required to construct, transform, or validate an
// automaton, and nothing it stores survives a restart.
package fsmhttp

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/dekarrin/fsmkit/automaton"
	"github.com/dekarrin/fsmkit/thompson"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PathPrefix is the prefix every route in this package is mounted under.
const PathPrefix = "/api/v1"

// Server holds the in-memory automaton table and wires it to a chi.Router.
// The zero value is not usable; use New.
type Server struct {
	mu     sync.RWMutex
	stored map[uuid.UUID]automaton.Automaton
}

// New returns an empty Server.
func New() *Server {
	return &Server{stored: make(map[uuid.UUID]automaton.Automaton)}
}

// Routes returns a chi.Router with every endpoint in this package mounted
// under PathPrefix.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLog)

	r.Route(PathPrefix, func(r chi.Router) {
		r.Post("/automata", s.handleCompile)
		r.Get("/automata/{id}", s.handleGet)
		r.Post("/automata/{id}/reverse", s.handleTransform(automaton.Automaton.Reverse))
		r.Post("/automata/{id}/determinize", s.handleTransform(automaton.Automaton.Determinize))
		r.Post("/automata/{id}/minimize", s.handleTransform(automaton.Automaton.Minimize))
	})

	return r
}

type compileRequest struct {
	Pattern string `json:"pattern"`
}

type automatonView struct {
	Alphabet []string        `json:"alphabet"`
	States   int             `json:"states"`
	Start    []int           `json:"start"`
	Accept   []int           `json:"accept"`
	Delta    []transitionRow `json:"delta"`
}

type transitionRow struct {
	From   int    `json:"from"`
	Symbol string `json:"symbol"`
	To     []int  `json:"to"`
}

func toView(a automaton.Automaton) automatonView {
	alphabet := a.Alphabet()
	symbols := make([]string, len(alphabet))
	for i, c := range alphabet {
		symbols[i] = string(c)
	}

	var rows []transitionRow
	for q := 0; q < a.Len(); q++ {
		for _, c := range alphabet {
			if to := a.Delta(q, automaton.Symbol(c)); len(to) > 0 {
				rows = append(rows, transitionRow{From: q, Symbol: string(c), To: to})
			}
		}
		if to := a.Delta(q, automaton.Epsilon); len(to) > 0 {
			rows = append(rows, transitionRow{From: q, Symbol: "", To: to})
		}
	}

	return automatonView{
		Alphabet: symbols,
		States:   a.Len(),
		Start:    a.Start(),
		Accept:   a.Accept(),
		Delta:    rows,
	}
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	a, err := thompson.BuildFSM(req.Pattern)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := s.put(a)
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":  id,
		"nfa": toView(a),
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	a, ok := s.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "no automaton with that id")
		return
	}

	writeJSON(w, http.StatusOK, toView(a))
}

// handleTransform returns a handler that applies transform to the stored
// automaton named by {id} and stores the result under a fresh id. transform
// never mutates its receiver, matching the core's value semantics.
func (s *Server) handleTransform(transform func(automaton.Automaton) automaton.Automaton) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		a, ok := s.get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "no automaton with that id")
			return
		}

		result := transform(a)
		newID := s.put(result)

		writeJSON(w, http.StatusCreated, map[string]any{
			"id":  newID,
			"nfa": toView(result),
		})
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed id")
		return uuid.UUID{}, false
	}
	return id, true
}

func (s *Server) put(a automaton.Automaton) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.stored[id] = a
	s.mu.Unlock()
	return id
}

func (s *Server) get(id uuid.UUID) (automaton.Automaton, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.stored[id]
	return a, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requestLog stamps every response with a fresh X-Request-Id and logs
// method, path, status, and duration once the handler returns.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		w.Header().Set("X-Request-Id", reqID.String())

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		log.Printf("[%s] %s %s -> %d (%s)", reqID, r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(status int) {
	sw.status = status
	sw.ResponseWriter.WriteHeader(status)
}
