package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("funcionário não existe ou não pertence a esta empresa")

	// ErrInvalidFeedResponse is returned when the feed answers with
	// anything other than a JSON array, typically an error object.
	ErrInvalidFeedResponse = errors.New("a API retornou uma resposta inválida ou vazia")
)
