package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/user"
	"github.com/vitalis-care/vitalis-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	UpdateSubscription(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// UpdateProfile implements UserHandler.
func (u *UserHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Dados inválidos", "Formato de requisição inválido")
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := u.userService.UpdateProfile(r.Context(), principal.UserID, updateReq)
	if err != nil {
		slog.Error("UpdateProfile service error", "user_id", principal.UserID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"message": "Perfil atualizado com sucesso",
		"user":    updated,
	})
}

// UpdateSubscription implements UserHandler.
func (u *UserHandlerImpl) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var subscriptionReq user.UpdateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&subscriptionReq); err != nil {
		slog.Error("UpdateSubscription decode error", "error", err)
		response.BadRequest(w, "Dados inválidos", "Formato de requisição inválido")
		return
	}

	if err := subscriptionReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := u.userService.UpdateSubscription(r.Context(), principal.UserID, *subscriptionReq.IsPremium)
	if err != nil {
		slog.Error("UpdateSubscription service error", "user_id", principal.UserID, "error", err)
		response.HandleError(w, err)
		return
	}

	message := "Assinatura alterada para versão gratuita"
	if updated.IsPremium {
		message = "Assinatura premium ativada com sucesso!"
	}

	slog.Info("Subscription updated", "user_id", principal.UserID, "is_premium", updated.IsPremium)
	response.Success(w, map[string]interface{}{
		"message": message,
		"user":    updated,
	})
}
