package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/employee"
	"github.com/vitalis-care/vitalis-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	funcionarios, err := e.employeeService.List(r.Context(), principal.EmpresaID)
	if err != nil {
		slog.Error("List funcionarios error", "empresa_id", principal.EmpresaID, "error", err)
		response.HandleError(w, err)
		return
	}

	if funcionarios == nil {
		funcionarios = []employee.Funcionario{}
	}
	response.Success(w, map[string]interface{}{
		"funcionarios": funcionarios,
	})
}

// Get implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return
	}

	funcionario, err := e.employeeService.Get(r.Context(), id, principal.EmpresaID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"funcionario": funcionario,
	})
}

// Sync implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := e.employeeService.Sync(r.Context(), principal)
	if err != nil {
		slog.Error("Sync funcionarios error", "empresa_id", principal.EmpresaID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Funcionarios synced",
		"empresa_id", principal.EmpresaID,
		"total", result.TotalRegistros,
		"atualizados", result.RegistrosAtualizados,
		"log_id", result.LogID)
	response.Success(w, map[string]interface{}{
		"message":              "Sincronização de funcionários realizada com sucesso",
		"totalRegistros":       result.TotalRegistros,
		"registrosAtualizados": result.RegistrosAtualizados,
		"logId":                result.LogID,
	})
}
