package server

import (
	"encoding/json"
	"net/http"
	"time"

	"preshub/internal/core"
	"preshub/internal/persistence"
)

// HealthResponse is the /health payload
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// StatusResponse is the /api/status payload
type StatusResponse struct {
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Database bool   `json:"database"`
}

// saveBriefRequest is the POST /api/briefs body
type saveBriefRequest struct {
	BriefData      *core.BriefRequest   `json:"briefData"`
	GeneratedBrief *core.GeneratedBrief `json:"generatedBrief"`
}

// historyListLimit caps how many saved briefs the listing endpoint returns.
const historyListLimit = 50

var serverStartTime = time.Now()

// handleHealth handles the /health endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	if err := s.db.Ping(r.Context()); err != nil {
		checks["database"] = "error"
		s.respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unhealthy",
			Checks: checks,
		})
		return
	}

	checks["database"] = "ok"
	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Checks: checks,
	})
}

// handleStatus handles the /api/status endpoint
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, StatusResponse{
		Version:  "v1.0.0",
		Uptime:   time.Since(serverStartTime).String(),
		Database: s.db.Ping(r.Context()) == nil,
	})
}

// handleSaveBrief handles POST /api/briefs. The record is immutable once
// inserted; createdAt is server-assigned.
func (s *Server) handleSaveBrief(w http.ResponseWriter, r *http.Request) {
	var req saveBriefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.GeneratedBrief == nil {
		s.respondError(w, http.StatusBadRequest, "Missing generatedBrief payload")
		return
	}

	record := &core.BriefRecord{
		Input: req.BriefData,
		Brief: *req.GeneratedBrief,
	}

	if err := s.db.Briefs().Create(r.Context(), record); err != nil {
		s.log.Error().Err(err).Msg("Failed to persist brief")
		s.respondError(w, http.StatusInternalServerError, "Failed to save brief")
		return
	}

	s.respondJSON(w, http.StatusCreated, map[string]string{"id": record.ID})
}

// handleListBriefs handles GET /api/briefs: saved briefs newest first, with
// optional industry/clientRole filters.
func (s *Server) handleListBriefs(w http.ResponseWriter, r *http.Request) {
	filter := persistence.BriefFilter{
		Industry:   r.URL.Query().Get("industry"),
		ClientRole: r.URL.Query().Get("clientRole"),
		Limit:      historyListLimit,
	}

	records, err := s.db.Briefs().List(r.Context(), filter)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to load briefs")
		s.respondError(w, http.StatusInternalServerError, "Failed to load briefs")
		return
	}

	items := make([]core.BriefHistoryItem, 0, len(records))
	for _, record := range records {
		items = append(items, record.HistoryItem())
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"briefs": items})
}

// handleQuestions handles GET /api/questions
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	industry := r.URL.Query().Get("industry")
	clientRole := r.URL.Query().Get("clientRole")

	if industry == "" {
		s.respondError(w, http.StatusBadRequest, "Missing industry parameter")
		return
	}

	roleCategories, err := s.questions.GetQuestions(r.Context(), industry, clientRole)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to load discovery questions")
		s.respondError(w, http.StatusInternalServerError, "Failed to load discovery questions")
		return
	}

	if roleCategories == nil {
		roleCategories = []core.RoleCategories{}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"roleCategories": roleCategories})
}

// respondJSON writes a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// respondError writes a JSON error body in the {"error": ...} shape
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
