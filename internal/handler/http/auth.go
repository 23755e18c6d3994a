package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Dados inválidos", "Formato de requisição inválido")
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"message": "Login realizado com sucesso",
		"user":    tokenResponse.User,
		"token":   tokenResponse.Token,
	})
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Dados inválidos", "Formato de requisição inválido")
		return
	}

	if err := registerReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User registered", "user_id", tokenResponse.User.ID, "email", tokenResponse.User.Email)
	response.Created(w, map[string]interface{}{
		"message": "Usuário registrado com sucesso",
		"user":    tokenResponse.User,
		"token":   tokenResponse.Token,
	})
}

// Profile implements AuthHandler.
func (a *AuthHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	userData, err := a.authService.Profile(r.Context(), principal.UserID)
	if err != nil {
		slog.Error("Profile service error", "user_id", principal.UserID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"user": userData,
	})
}
