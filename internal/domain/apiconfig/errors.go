package apiconfig

import "errors"

var (
	ErrConfigNotFound            = errors.New("configuração da API não encontrada")
	ErrEmployeeFeedNotConfigured = errors.New("configure os parâmetros da API de funcionários")
	ErrAbsenceFeedNotConfigured  = errors.New("configure os parâmetros da API de absenteísmo")
)
