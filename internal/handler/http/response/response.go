package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the wire shape of every error: a short category plus a
// human-readable message, optionally with per-field validation details.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorResponse{
			Error:   "Erro no servidor",
			Message: "Erro ao codificar resposta",
		})
	}
}

func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	writeJSON(w, statusCode, payload)
}

func Success(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusOK, payload)
}

func Created(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusCreated, payload)
}

func BadRequest(w http.ResponseWriter, errorTitle, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: errorTitle, Message: message})
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "Dados inválidos",
		Message: "Verifique os campos informados",
		Details: details,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Não autorizado", Message: message})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "Acesso negado", Message: message})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Não encontrado", Message: message})
}

func Conflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, ErrorResponse{Error: "Conflito", Message: message})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Erro no servidor", Message: message})
}
