package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (Empresa, error)
	GetByCodigo(ctx context.Context, codigo string) (Empresa, error)
	// Create inserts a new empresa, returning the existing row when the
	// codigo is already registered.
	Create(ctx context.Context, empresa Empresa) (Empresa, error)
	UpdateNome(ctx context.Context, id int64, nome string) (Empresa, error)
}
