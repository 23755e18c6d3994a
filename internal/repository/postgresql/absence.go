package postgresql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/absence"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

const absenteismoColumns = `a.id, a.unidade, a.setor, a.matricula_func, a.dt_nascimento,
	a.sexo, a.tipo_atestado, a.dt_inicio_atestado, a.dt_fim_atestado,
	a.hora_inicio_atestado, a.hora_fim_atestado, a.dias_afastados,
	a.horas_afastado, a.cid_principal, a.descricao_cid, a.grupo_patologico,
	a.tipo_licenca, a.empresa_id, a.funcionario_id, a.created_at, a.updated_at`

// ListByEmpresa implements absence.AbsenceRepository. Filters are appended as
// numbered placeholders; values never reach the query text.
func (r *absenceRepositoryImpl) ListByEmpresa(ctx context.Context, empresaID int64, filter absence.ListFilter) ([]absence.Absenteismo, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenteismoColumns + `, f.nome
		FROM absenteismo a
		LEFT JOIN funcionarios f ON f.id = a.funcionario_id
		WHERE a.empresa_id = $1`
	args := []any{empresaID}

	if filter.DataInicio != nil {
		args = append(args, *filter.DataInicio)
		query += ` AND a.dt_inicio_atestado >= $` + strconv.Itoa(len(args))
	}
	if filter.DataFim != nil {
		args = append(args, *filter.DataFim)
		query += ` AND a.dt_fim_atestado <= $` + strconv.Itoa(len(args))
	}
	if filter.Setor != "" {
		args = append(args, filter.Setor)
		query += ` AND a.setor = $` + strconv.Itoa(len(args))
	}
	if filter.CID != "" {
		args = append(args, filter.CID)
		query += ` AND a.cid_principal = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY a.dt_inicio_atestado DESC NULLS LAST, a.id DESC`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list absenteismo: %w", err)
	}
	defer rows.Close()

	var registros []absence.Absenteismo
	for rows.Next() {
		var a absence.Absenteismo
		err := rows.Scan(
			&a.ID, &a.Unidade, &a.Setor, &a.MatriculaFunc, &a.DtNascimento,
			&a.Sexo, &a.TipoAtestado, &a.DtInicioAtestado, &a.DtFimAtestado,
			&a.HoraInicioAtestado, &a.HoraFimAtestado, &a.DiasAfastados,
			&a.HorasAfastado, &a.CIDPrincipal, &a.DescricaoCID, &a.GrupoPatologico,
			&a.TipoLicenca, &a.EmpresaID, &a.FuncionarioID, &a.CreatedAt, &a.UpdatedAt,
			&a.NomeFuncionario,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absenteismo: %w", err)
		}
		registros = append(registros, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return registros, nil
}

// Create implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Create(ctx context.Context, registro absence.Absenteismo) (absence.Absenteismo, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absenteismo (
			unidade, setor, matricula_func, dt_nascimento, sexo, tipo_atestado,
			dt_inicio_atestado, dt_fim_atestado, hora_inicio_atestado,
			hora_fim_atestado, dias_afastados, horas_afastado, cid_principal,
			descricao_cid, grupo_patologico, tipo_licenca, empresa_id, funcionario_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		registro.Unidade, registro.Setor, registro.MatriculaFunc, registro.DtNascimento,
		registro.Sexo, registro.TipoAtestado, registro.DtInicioAtestado, registro.DtFimAtestado,
		registro.HoraInicioAtestado, registro.HoraFimAtestado, registro.DiasAfastados,
		registro.HorasAfastado, registro.CIDPrincipal, registro.DescricaoCID,
		registro.GrupoPatologico, registro.TipoLicenca, registro.EmpresaID, registro.FuncionarioID,
	).Scan(&registro.ID, &registro.CreatedAt, &registro.UpdatedAt)
	if err != nil {
		return absence.Absenteismo{}, fmt.Errorf("failed to create absenteismo: %w", err)
	}
	return registro, nil
}

func statsWhere(empresaID int64, filter absence.StatsFilter) (string, []any) {
	where := ` WHERE empresa_id = $1`
	args := []any{empresaID}

	if filter.DataInicio != nil {
		args = append(args, *filter.DataInicio)
		where += ` AND dt_inicio_atestado >= $` + strconv.Itoa(len(args))
	}
	if filter.DataFim != nil {
		args = append(args, *filter.DataFim)
		where += ` AND dt_fim_atestado <= $` + strconv.Itoa(len(args))
	}
	return where, args
}

// CountRecords implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) CountRecords(ctx context.Context, empresaID int64, filter absence.StatsFilter) (int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args := statsWhere(empresaID, filter)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM absenteismo`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count absenteismo: %w", err)
	}
	return count, nil
}

// GetTotals implements absence.AbsenceRepository. Distinct matriculas stand in
// for funcionarios because feed rows may lack a resolved funcionario_id.
func (r *absenceRepositoryImpl) GetTotals(ctx context.Context, empresaID int64, filter absence.StatsFilter) (absence.Totals, error) {
	q := GetQuerier(ctx, r.db)

	where, args := statsWhere(empresaID, filter)

	query := `
		SELECT COALESCE(SUM(dias_afastados), 0), COUNT(DISTINCT matricula_func)
		FROM absenteismo` + where

	var totals absence.Totals
	err := q.QueryRow(ctx, query, args...).Scan(&totals.TotalDiasAfastados, &totals.TotalFuncionariosAfastados)
	if err != nil {
		return absence.Totals{}, fmt.Errorf("failed to get absenteismo totals: %w", err)
	}
	return totals, nil
}

// TopCIDs implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) TopCIDs(ctx context.Context, empresaID int64, filter absence.StatsFilter, limit int) ([]absence.CIDCount, error) {
	q := GetQuerier(ctx, r.db)

	where, args := statsWhere(empresaID, filter)
	args = append(args, limit)

	query := `
		SELECT cid_principal, MIN(descricao_cid), COUNT(*) AS total
		FROM absenteismo` + where + `
		AND cid_principal IS NOT NULL
		GROUP BY cid_principal
		ORDER BY total DESC
		LIMIT $` + strconv.Itoa(len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to rank CIDs: %w", err)
	}
	defer rows.Close()

	var result []absence.CIDCount
	for rows.Next() {
		var c absence.CIDCount
		if err := rows.Scan(&c.CIDPrincipal, &c.DescricaoCID, &c.Total); err != nil {
			return nil, fmt.Errorf("failed to scan CID count: %w", err)
		}
		result = append(result, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// TopSetores implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) TopSetores(ctx context.Context, empresaID int64, filter absence.StatsFilter, limit int) ([]absence.SetorCount, error) {
	q := GetQuerier(ctx, r.db)

	where, args := statsWhere(empresaID, filter)
	args = append(args, limit)

	query := `
		SELECT setor, COUNT(*), COALESCE(SUM(dias_afastados), 0) AS total_dias
		FROM absenteismo` + where + `
		AND setor IS NOT NULL
		GROUP BY setor
		ORDER BY total_dias DESC
		LIMIT $` + strconv.Itoa(len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to rank setores: %w", err)
	}
	defer rows.Close()

	var result []absence.SetorCount
	for rows.Next() {
		var s absence.SetorCount
		if err := rows.Scan(&s.Setor, &s.TotalRegistros, &s.TotalDias); err != nil {
			return nil, fmt.Errorf("failed to scan setor count: %w", err)
		}
		result = append(result, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// MonthlyEvolution implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) MonthlyEvolution(ctx context.Context, empresaID int64, filter absence.StatsFilter) ([]absence.MonthBucket, error) {
	q := GetQuerier(ctx, r.db)

	where, args := statsWhere(empresaID, filter)

	query := `
		SELECT TO_CHAR(DATE_TRUNC('month', dt_inicio_atestado), 'YYYY-MM') AS mes,
			COUNT(*), COALESCE(SUM(dias_afastados), 0)
		FROM absenteismo` + where + `
		AND dt_inicio_atestado IS NOT NULL
		GROUP BY mes
		ORDER BY mes`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly evolution: %w", err)
	}
	defer rows.Close()

	var result []absence.MonthBucket
	for rows.Next() {
		var b absence.MonthBucket
		if err := rows.Scan(&b.Mes, &b.TotalRegistros, &b.TotalDias); err != nil {
			return nil, fmt.Errorf("failed to scan month bucket: %w", err)
		}
		result = append(result, b)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
