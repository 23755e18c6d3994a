package company

import "errors"

var ErrCompanyNotFound = errors.New("empresa não encontrada")
