package handlers

import (
	"net/http"

	"github.com/conductorhq/conductor/internal/adapters/http/dto"
	"github.com/conductorhq/conductor/internal/adapters/http/middleware"
	"github.com/conductorhq/conductor/internal/ports"
)

// AccountHandler handles HTTP requests for registration and sessions.
type AccountHandler struct {
	accounts ports.AccountService
}

// NewAccountHandler creates a new AccountHandler with the given service port.
func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register handles POST /api/v1/auth/register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.accounts.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(u))
}

// Login handles POST /api/v1/auth/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, u, err := h.accounts.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionResponse{
		Token: token,
		User:  dto.ToUserResponse(u),
	})
}

// Logout handles POST /api/v1/auth/logout. The session to invalidate is the
// one the request authenticated with.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.accounts.Logout(r.Context(), middleware.SessionTokenFromContext(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}
