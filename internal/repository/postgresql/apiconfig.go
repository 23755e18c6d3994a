package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/apiconfig"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/database"
)

type configRepositoryImpl struct {
	db *database.DB
}

func NewConfigRepository(db *database.DB) apiconfig.ConfigRepository {
	return &configRepositoryImpl{db: db}
}

const configColumns = `id, empresa_id, chave_funcionario, codigo_funcionario,
	flag_ativo, flag_inativo, flag_pendente, flag_ferias, flag_afastado,
	chave_absenteismo, codigo_absenteismo, created_at, updated_at`

func scanConfig(row pgx.Row) (apiconfig.ConfigAPI, error) {
	var c apiconfig.ConfigAPI
	err := row.Scan(
		&c.ID, &c.EmpresaID, &c.ChaveFuncionario, &c.CodigoFuncionario,
		&c.FlagAtivo, &c.FlagInativo, &c.FlagPendente, &c.FlagFerias, &c.FlagAfastado,
		&c.ChaveAbsenteismo, &c.CodigoAbsenteismo, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// GetByEmpresa implements apiconfig.ConfigRepository.
func (r *configRepositoryImpl) GetByEmpresa(ctx context.Context, empresaID int64) (apiconfig.ConfigAPI, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + configColumns + ` FROM configuracoes_api WHERE empresa_id = $1`

	c, err := scanConfig(q.QueryRow(ctx, query, empresaID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return apiconfig.ConfigAPI{}, apiconfig.ErrConfigNotFound
		}
		return apiconfig.ConfigAPI{}, fmt.Errorf("failed to get configuracao: %w", err)
	}
	return c, nil
}

// Save implements apiconfig.ConfigRepository.
func (r *configRepositoryImpl) Save(ctx context.Context, config apiconfig.ConfigAPI) (apiconfig.ConfigAPI, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO configuracoes_api (
			empresa_id, chave_funcionario, codigo_funcionario, flag_ativo,
			flag_inativo, flag_pendente, flag_ferias, flag_afastado,
			chave_absenteismo, codigo_absenteismo
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (empresa_id) DO UPDATE SET
			chave_funcionario = EXCLUDED.chave_funcionario,
			codigo_funcionario = EXCLUDED.codigo_funcionario,
			flag_ativo = EXCLUDED.flag_ativo,
			flag_inativo = EXCLUDED.flag_inativo,
			flag_pendente = EXCLUDED.flag_pendente,
			flag_ferias = EXCLUDED.flag_ferias,
			flag_afastado = EXCLUDED.flag_afastado,
			chave_absenteismo = EXCLUDED.chave_absenteismo,
			codigo_absenteismo = EXCLUDED.codigo_absenteismo,
			updated_at = NOW()
		RETURNING ` + configColumns

	c, err := scanConfig(q.QueryRow(ctx, query,
		config.EmpresaID, config.ChaveFuncionario, config.CodigoFuncionario,
		config.FlagAtivo, config.FlagInativo, config.FlagPendente,
		config.FlagFerias, config.FlagAfastado,
		config.ChaveAbsenteismo, config.CodigoAbsenteismo,
	))
	if err != nil {
		return apiconfig.ConfigAPI{}, fmt.Errorf("failed to save configuracao: %w", err)
	}
	return c, nil
}
