package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/conductorhq/conductor/internal/adapters/http/dto"
	"github.com/conductorhq/conductor/internal/adapters/http/middleware"
	"github.com/conductorhq/conductor/internal/ports"
)

// AutomationHandler handles HTTP requests for command submission, action
// inspection, and rollback.
type AutomationHandler struct {
	automations ports.AutomationService
}

// NewAutomationHandler creates a new AutomationHandler with the given
// service port.
func NewAutomationHandler(automations ports.AutomationService) *AutomationHandler {
	return &AutomationHandler{automations: automations}
}

// SubmitCommand handles POST /api/v1/commands. The response status is 201
// whether the action completed or failed: the resource that was created is
// the action record, and its status says how execution went.
func (h *AutomationHandler) SubmitCommand(w http.ResponseWriter, r *http.Request) {
	var req dto.CommandRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID := middleware.UserFromContext(r.Context()).ID
	a, err := h.automations.Submit(r.Context(), userID, req.Command)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToSubmitResponse(a))
}

// GetAction handles GET /api/v1/actions/{id}.
func (h *AutomationHandler) GetAction(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context()).ID

	a, err := h.automations.GetAction(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActionResponse(a))
}

// ListActions handles GET /api/v1/actions. The optional limit query parameter
// caps the page size; the service applies its own default and maximum.
func (h *AutomationHandler) ListActions(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, "limit")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	userID := middleware.UserFromContext(r.Context()).ID
	actions, err := h.automations.ListActions(r.Context(), userID, limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActionListResponse(actions))
}

// RollbackAction handles POST /api/v1/actions/{id}/rollback. An empty body
// is accepted; the reason defaults to blank.
func (h *AutomationHandler) RollbackAction(w http.ResponseWriter, r *http.Request) {
	var req dto.RollbackRequest
	if r.ContentLength > 0 && !decodeJSONBody(w, r, &req) {
		return
	}

	userID := middleware.UserFromContext(r.Context()).ID
	actionID := chi.URLParam(r, "id")

	result, err := h.automations.Rollback(r.Context(), userID, actionID, req.Reason)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRollbackResponse(actionID, result))
}
