package main

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/anusornc/owl2-rs/ontology"
	"github.com/anusornc/owl2-rs/owl2"
	"github.com/anusornc/owl2-rs/profile"
	"github.com/anusornc/owl2-rs/reasoner"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// server holds every loaded ontology, keyed by a uuid assigned at load
// time, the way a short-lived reasoning backend would hold sessions
// in memory rather than persisting them to a database.
type server struct {
	log      *zap.Logger
	validate *validator.Validate

	mu         sync.RWMutex
	ontologies map[string]*owl2.Engine
}

func newServer(log *zap.Logger) *server {
	return &server{
		log:        log,
		validate:   validator.New(),
		ontologies: make(map[string]*owl2.Engine),
	}
}

type createOntologyRequest struct {
	Functional string `json:"functional" validate:"required"`
}

type createOntologyResponse struct {
	ID string `json:"id"`
}

func (s *server) handleCreateOntology(w http.ResponseWriter, r *http.Request) {
	var req createOntologyRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	eng, err := owl2.LoadFromString(req.Functional, reasoner.DefaultConfig(), s.log)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := uuid.NewString()
	s.mu.Lock()
	s.ontologies[id] = eng
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, createOntologyResponse{ID: id})
}

func (s *server) lookup(w http.ResponseWriter, r *http.Request) (*owl2.Engine, bool) {
	id := chi.URLParam(r, "id")
	s.mu.RLock()
	eng, ok := s.ontologies[id]
	s.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, errNotFound(id))
		return nil, false
	}
	return eng, true
}

func (s *server) handleConsistency(w http.ResponseWriter, r *http.Request) {
	eng, ok := s.lookup(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	consistent, err := eng.IsConsistent(ctx)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"consistent": consistent})
}

type subsumptionRequest struct {
	Sub   string `json:"sub" validate:"required"`
	Super string `json:"super" validate:"required"`
}

func (s *server) handleSubsumption(w http.ResponseWriter, r *http.Request) {
	eng, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var req subsumptionRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	subsumed, err := eng.IsSubsumedBy(ctx, ontology.IRI(req.Sub), ontology.IRI(req.Super))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"subsumed": subsumed})
}

type instanceOfRequest struct {
	Individual string `json:"individual" validate:"required"`
	Class      string `json:"class" validate:"required"`
}

func (s *server) handleInstanceOf(w http.ResponseWriter, r *http.Request) {
	eng, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var req instanceOfRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	isInstance, err := eng.IsInstanceOf(ctx, ontology.NamedIndividual(ontology.IRI(req.Individual)), ontology.IRI(req.Class))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"instance_of": isInstance})
}

func (s *server) handleClassify(w http.ResponseWriter, r *http.Request) {
	eng, ok := s.lookup(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
	defer cancel()
	start := time.Now()
	tax, st, err := eng.ClassifyParallel(ctx)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, tax.ToJSON(st, time.Since(start)))
}

func (s *server) handleRealize(w http.ResponseWriter, r *http.Request) {
	eng, ok := s.lookup(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
	defer cancel()
	types, err := eng.RealizeParallel(ctx)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

func (s *server) handleProfile(w http.ResponseWriter, r *http.Request) {
	eng, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var p profile.Profile
	switch chi.URLParam(r, "name") {
	case "EL":
		p = profile.EL
	case "QL":
		p = profile.QL
	case "RL":
		p = profile.RL
	default:
		writeError(w, http.StatusBadRequest, errUnknownProfile(chi.URLParam(r, "name")))
		return
	}
	writeJSON(w, http.StatusOK, eng.CheckProfile(p))
}

func (s *server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
