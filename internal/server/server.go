// Package server exposes the single-lookup HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/rijuma15/cash-faster/internal/loan"
	"github.com/rijuma15/cash-faster/internal/report"
)

// Server routes loan-processing requests to the loan service.
type Server struct {
	loans        *loan.Service
	adminBaseURL string
	logger       zerolog.Logger
}

// New creates a Server. adminBaseURL is used for the report links.
func New(loans *loan.Service, adminBaseURL string, logger zerolog.Logger) *Server {
	return &Server{loans: loans, adminBaseURL: adminBaseURL, logger: logger}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestLogger(s.logger))
	r.Get("/healthz", s.handleHealth)
	r.Get("/process-loan/{loanID}", s.handleProcessLoan)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProcessLoan(w http.ResponseWriter, r *http.Request) {
	loanID, err := strconv.Atoi(chi.URLParam(r, "loanID"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid loan id %q", chi.URLParam(r, "loanID")))
		return
	}

	assessment, err := s.loans.Process(r.Context(), loanID)
	switch {
	case errors.Is(err, loan.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, fmt.Sprintf("loan %d not found", loanID))
		return
	case err != nil:
		zerolog.Ctx(r.Context()).Error().Err(err).Int("loan_id", loanID).Msg("processing failed")
		writeJSONError(w, http.StatusInternalServerError, "processing failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"output": report.Format(assessment, s.adminBaseURL),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
