package handlers

import (
	"net/http"

	"github.com/conductorhq/conductor/internal/adapters/http/dto"
	"github.com/conductorhq/conductor/internal/adapters/http/middleware"
	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/ports"
)

// ConnectionHandler handles HTTP requests for the credential lifecycle:
// OAuth grants, disconnects, and listing connected services.
type ConnectionHandler struct {
	connections ports.ConnectionService
}

// NewConnectionHandler creates a new ConnectionHandler with the given
// service port.
func NewConnectionHandler(connections ports.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connections: connections}
}

// BeginGrant handles GET /api/v1/connect/{service}. It returns the provider
// authorization URL the client should redirect the user to.
func (h *ConnectionHandler) BeginGrant(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context()).ID
	redirectURI := r.URL.Query().Get("redirect_uri")

	authURL, err := h.connections.BeginGrant(r.Context(), userID, serviceParam(r), redirectURI)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.GrantResponse{AuthorizationURL: authURL})
}

// Callback handles GET /api/v1/connect/{service}/callback, the provider's
// redirect target. The handshake state carries the user, so the route is not
// session-authenticated.
func (h *ConnectionHandler) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	code := q.Get("code")
	state := q.Get("state")
	if code == "" || state == "" {
		fields := make(map[string]string)
		if code == "" {
			fields["code"] = "is required"
		}
		if state == "" {
			fields["state"] = "is required"
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: fields})
		return
	}

	record, err := h.connections.CompleteGrant(r.Context(), serviceParam(r), code, state, q.Get("redirect_uri"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToConnectionResponse(record))
}

// Disconnect handles DELETE /api/v1/connect/{service}.
func (h *ConnectionHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context()).ID

	if err := h.connections.Disconnect(r.Context(), userID, serviceParam(r)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListConnections handles GET /api/v1/connections.
func (h *ConnectionHandler) ListConnections(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context()).ID

	records, err := h.connections.Connections(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToConnectionListResponse(records))
}
