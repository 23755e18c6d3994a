package apiconfig

import "context"

type ConfigRepository interface {
	GetByEmpresa(ctx context.Context, empresaID int64) (ConfigAPI, error)
	// Save inserts the empresa's configuration row or updates the existing
	// one. There is at most one row per empresa.
	Save(ctx context.Context, config ConfigAPI) (ConfigAPI, error)
}
