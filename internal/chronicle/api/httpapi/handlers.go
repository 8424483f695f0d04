// Package httpapi exposes entity resolution over a JSON HTTP surface for
// the web and ingestion plumbing. Resolution absence is part of the response
// body, not an HTTP error: only malformed requests and store failures map to
// error status codes.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/emberlight/chronicle/internal/chronicle/app"
	"github.com/emberlight/chronicle/internal/chronicle/resolve"
)

type handlers struct {
	service *app.Service
	logger  *slog.Logger
}

// NewMux builds the HTTP routing surface over the resolution service.
func NewMux(service *app.Service, logger *slog.Logger) *http.ServeMux {
	if logger == nil {
		logger = slog.Default()
	}
	h := handlers{service: service, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" /healthz", h.handleHealth)
	mux.HandleFunc(http.MethodPost+" /v1/campaigns/{campaign_id}/resolve/character", h.handleResolveCharacter)
	mux.HandleFunc(http.MethodPost+" /v1/campaigns/{campaign_id}/resolve/session", h.handleResolveSession)
	return mux
}

type resolveCharacterRequest struct {
	Name string `json:"name"`
}

type resolveCharacterResponse struct {
	CharacterID string `json:"characterId,omitempty"`
	MatchType   string `json:"matchType"`
}

type resolveSessionRequest struct {
	SessionNumber *int `json:"sessionNumber,omitempty"`
	IsLastSession bool `json:"isLastSession,omitempty"`
}

type sessionPayload struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId"`
	Number     int       `json:"number"`
	OccurredAt time.Time `json:"occurredAt"`
}

type resolveSessionResponse struct {
	Found   bool            `json:"found"`
	Session *sessionPayload `json:"session,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h handlers) handleResolveCharacter(w http.ResponseWriter, r *http.Request) {
	campaignID := strings.TrimSpace(r.PathValue("campaign_id"))
	if campaignID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "campaign id is required"})
		return
	}

	var req resolveCharacterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	match, err := h.service.ResolveCharacter(r.Context(), campaignID, req.Name)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "resolve character failed",
			"campaign_id", campaignID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "resolution failed"})
		return
	}

	writeJSON(w, http.StatusOK, resolveCharacterResponse{
		CharacterID: match.CharacterID,
		MatchType:   string(match.Type),
	})
}

func (h handlers) handleResolveSession(w http.ResponseWriter, r *http.Request) {
	campaignID := strings.TrimSpace(r.PathValue("campaign_id"))
	if campaignID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "campaign id is required"})
		return
	}

	var req resolveSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	session, found, err := h.service.ResolveSession(r.Context(), campaignID, resolve.Hints{
		Number: req.SessionNumber,
		Latest: req.IsLastSession,
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "resolve session failed",
			"campaign_id", campaignID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "resolution failed"})
		return
	}

	response := resolveSessionResponse{Found: found}
	if found {
		response.Session = &sessionPayload{
			ID:         session.ID,
			CampaignID: session.CampaignID,
			Number:     session.Number,
			OccurredAt: session.OccurredAt,
		}
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already written; an encode failure here has nowhere to go.
	_ = json.NewEncoder(w).Encode(payload)
}
