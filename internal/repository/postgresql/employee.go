package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/employee"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const funcionarioColumns = `id, codigo, nome, empresa_id, codigoempresa, nomeempresa,
	codigounidade, nomeunidade, codigosetor, nomesetor, codigocargo, nomecargo,
	cbocargo, ccusto, nomecentrocusto, matriculafuncionario, cpf, rg, ufrg,
	orgaoemissorrg, situacao, sexo, pis, ctps, seriectps, estadocivil,
	tipocontatacao, data_nascimento, data_admissao, data_demissao, endereco,
	numero_endereco, bairro, cidade, uf, cep, telefoneresidencial,
	telefonecelular, email, deficiente, deficiencia, nm_mae_funcionario,
	dataultalteracao, matricularh, cor, escolaridade, naturalidade, ramal,
	regimerevezamento, regimetrabalho, telcomercial, turnotrabalho, rhunidade,
	rhsetor, rhcargo, rhcentrocustounidade, created_at, updated_at`

func scanFuncionario(row pgx.Row) (employee.Funcionario, error) {
	var f employee.Funcionario
	err := row.Scan(
		&f.ID, &f.Codigo, &f.Nome, &f.EmpresaID, &f.CodigoEmpresa, &f.NomeEmpresa,
		&f.CodigoUnidade, &f.NomeUnidade, &f.CodigoSetor, &f.NomeSetor, &f.CodigoCargo, &f.NomeCargo,
		&f.CBOCargo, &f.CCusto, &f.NomeCentroCusto, &f.MatriculaFuncionario, &f.CPF, &f.RG, &f.UFRG,
		&f.OrgaoEmissorRG, &f.Situacao, &f.Sexo, &f.PIS, &f.CTPS, &f.SerieCTPS, &f.EstadoCivil,
		&f.TipoContratacao, &f.DataNascimento, &f.DataAdmissao, &f.DataDemissao, &f.Endereco,
		&f.NumeroEndereco, &f.Bairro, &f.Cidade, &f.UF, &f.CEP, &f.TelefoneResidencial,
		&f.TelefoneCelular, &f.Email, &f.Deficiente, &f.Deficiencia, &f.NomeMaeFuncionario,
		&f.DataUltAlteracao, &f.MatriculaRH, &f.Cor, &f.Escolaridade, &f.Naturalidade, &f.Ramal,
		&f.RegimeRevezamento, &f.RegimeTrabalho, &f.TelComercial, &f.TurnoTrabalho, &f.RHUnidade,
		&f.RHSetor, &f.RHCargo, &f.RHCentroCustoUnidade, &f.CreatedAt, &f.UpdatedAt,
	)
	return f, err
}

// ListByEmpresa implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByEmpresa(ctx context.Context, empresaID int64) ([]employee.Funcionario, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + funcionarioColumns + ` FROM funcionarios WHERE empresa_id = $1 ORDER BY nome`

	rows, err := q.Query(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list funcionarios: %w", err)
	}
	defer rows.Close()

	var funcionarios []employee.Funcionario
	for rows.Next() {
		f, err := scanFuncionario(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan funcionario: %w", err)
		}
		funcionarios = append(funcionarios, f)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return funcionarios, nil
}

// GetByID implements employee.EmployeeRepository. The empresa filter rejects
// cross-tenant reads.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64, empresaID int64) (employee.Funcionario, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + funcionarioColumns + ` FROM funcionarios WHERE id = $1 AND empresa_id = $2`

	f, err := scanFuncionario(q.QueryRow(ctx, query, id, empresaID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Funcionario{}, employee.ErrEmployeeNotFound
		}
		return employee.Funcionario{}, fmt.Errorf("failed to get funcionario by id: %w", err)
	}
	return f, nil
}

// GetByMatricula implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByMatricula(ctx context.Context, matricula string, empresaID int64) (employee.Funcionario, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + funcionarioColumns + ` FROM funcionarios WHERE matriculafuncionario = $1 AND empresa_id = $2 LIMIT 1`

	f, err := scanFuncionario(q.QueryRow(ctx, query, matricula, empresaID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Funcionario{}, employee.ErrEmployeeNotFound
		}
		return employee.Funcionario{}, fmt.Errorf("failed to get funcionario by matricula: %w", err)
	}
	return f, nil
}

// Upsert implements employee.EmployeeRepository. The unique constraint on
// (codigo, empresa_id) drives the conflict resolution; xmax = 0 reports
// whether the row was freshly inserted.
func (r *employeeRepositoryImpl) Upsert(ctx context.Context, funcionario employee.Funcionario) (employee.Funcionario, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO funcionarios (
			codigo, nome, empresa_id, codigoempresa, nomeempresa,
			codigounidade, nomeunidade, codigosetor, nomesetor, codigocargo, nomecargo,
			cbocargo, ccusto, nomecentrocusto, matriculafuncionario, cpf, rg, ufrg,
			orgaoemissorrg, situacao, sexo, pis, ctps, seriectps, estadocivil,
			tipocontatacao, data_nascimento, data_admissao, data_demissao, endereco,
			numero_endereco, bairro, cidade, uf, cep, telefoneresidencial,
			telefonecelular, email, deficiente, deficiencia, nm_mae_funcionario,
			dataultalteracao, matricularh, cor, escolaridade, naturalidade, ramal,
			regimerevezamento, regimetrabalho, telcomercial, turnotrabalho, rhunidade,
			rhsetor, rhcargo, rhcentrocustounidade
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41, $42, $43, $44,
			$45, $46, $47, $48, $49, $50, $51, $52, $53, $54, $55
		)
		ON CONFLICT (codigo, empresa_id) DO UPDATE SET
			nome = EXCLUDED.nome,
			codigoempresa = EXCLUDED.codigoempresa,
			nomeempresa = EXCLUDED.nomeempresa,
			codigounidade = EXCLUDED.codigounidade,
			nomeunidade = EXCLUDED.nomeunidade,
			codigosetor = EXCLUDED.codigosetor,
			nomesetor = EXCLUDED.nomesetor,
			codigocargo = EXCLUDED.codigocargo,
			nomecargo = EXCLUDED.nomecargo,
			cbocargo = EXCLUDED.cbocargo,
			ccusto = EXCLUDED.ccusto,
			nomecentrocusto = EXCLUDED.nomecentrocusto,
			matriculafuncionario = EXCLUDED.matriculafuncionario,
			cpf = EXCLUDED.cpf,
			rg = EXCLUDED.rg,
			ufrg = EXCLUDED.ufrg,
			orgaoemissorrg = EXCLUDED.orgaoemissorrg,
			situacao = EXCLUDED.situacao,
			sexo = EXCLUDED.sexo,
			pis = EXCLUDED.pis,
			ctps = EXCLUDED.ctps,
			seriectps = EXCLUDED.seriectps,
			estadocivil = EXCLUDED.estadocivil,
			tipocontatacao = EXCLUDED.tipocontatacao,
			data_nascimento = EXCLUDED.data_nascimento,
			data_admissao = EXCLUDED.data_admissao,
			data_demissao = EXCLUDED.data_demissao,
			endereco = EXCLUDED.endereco,
			numero_endereco = EXCLUDED.numero_endereco,
			bairro = EXCLUDED.bairro,
			cidade = EXCLUDED.cidade,
			uf = EXCLUDED.uf,
			cep = EXCLUDED.cep,
			telefoneresidencial = EXCLUDED.telefoneresidencial,
			telefonecelular = EXCLUDED.telefonecelular,
			email = EXCLUDED.email,
			deficiente = EXCLUDED.deficiente,
			deficiencia = EXCLUDED.deficiencia,
			nm_mae_funcionario = EXCLUDED.nm_mae_funcionario,
			dataultalteracao = EXCLUDED.dataultalteracao,
			matricularh = EXCLUDED.matricularh,
			cor = EXCLUDED.cor,
			escolaridade = EXCLUDED.escolaridade,
			naturalidade = EXCLUDED.naturalidade,
			ramal = EXCLUDED.ramal,
			regimerevezamento = EXCLUDED.regimerevezamento,
			regimetrabalho = EXCLUDED.regimetrabalho,
			telcomercial = EXCLUDED.telcomercial,
			turnotrabalho = EXCLUDED.turnotrabalho,
			rhunidade = EXCLUDED.rhunidade,
			rhsetor = EXCLUDED.rhsetor,
			rhcargo = EXCLUDED.rhcargo,
			rhcentrocustounidade = EXCLUDED.rhcentrocustounidade,
			updated_at = NOW()
		RETURNING ` + funcionarioColumns + `, (xmax = 0) AS inserted`

	var f employee.Funcionario
	var inserted bool
	err := q.QueryRow(ctx, query,
		funcionario.Codigo, funcionario.Nome, funcionario.EmpresaID, funcionario.CodigoEmpresa, funcionario.NomeEmpresa,
		funcionario.CodigoUnidade, funcionario.NomeUnidade, funcionario.CodigoSetor, funcionario.NomeSetor,
		funcionario.CodigoCargo, funcionario.NomeCargo, funcionario.CBOCargo, funcionario.CCusto,
		funcionario.NomeCentroCusto, funcionario.MatriculaFuncionario, funcionario.CPF, funcionario.RG,
		funcionario.UFRG, funcionario.OrgaoEmissorRG, funcionario.Situacao, funcionario.Sexo, funcionario.PIS,
		funcionario.CTPS, funcionario.SerieCTPS, funcionario.EstadoCivil, funcionario.TipoContratacao,
		funcionario.DataNascimento, funcionario.DataAdmissao, funcionario.DataDemissao, funcionario.Endereco,
		funcionario.NumeroEndereco, funcionario.Bairro, funcionario.Cidade, funcionario.UF, funcionario.CEP,
		funcionario.TelefoneResidencial, funcionario.TelefoneCelular, funcionario.Email, funcionario.Deficiente,
		funcionario.Deficiencia, funcionario.NomeMaeFuncionario, funcionario.DataUltAlteracao, funcionario.MatriculaRH,
		funcionario.Cor, funcionario.Escolaridade, funcionario.Naturalidade, funcionario.Ramal,
		funcionario.RegimeRevezamento, funcionario.RegimeTrabalho, funcionario.TelComercial, funcionario.TurnoTrabalho,
		funcionario.RHUnidade, funcionario.RHSetor, funcionario.RHCargo, funcionario.RHCentroCustoUnidade,
	).Scan(
		&f.ID, &f.Codigo, &f.Nome, &f.EmpresaID, &f.CodigoEmpresa, &f.NomeEmpresa,
		&f.CodigoUnidade, &f.NomeUnidade, &f.CodigoSetor, &f.NomeSetor, &f.CodigoCargo, &f.NomeCargo,
		&f.CBOCargo, &f.CCusto, &f.NomeCentroCusto, &f.MatriculaFuncionario, &f.CPF, &f.RG, &f.UFRG,
		&f.OrgaoEmissorRG, &f.Situacao, &f.Sexo, &f.PIS, &f.CTPS, &f.SerieCTPS, &f.EstadoCivil,
		&f.TipoContratacao, &f.DataNascimento, &f.DataAdmissao, &f.DataDemissao, &f.Endereco,
		&f.NumeroEndereco, &f.Bairro, &f.Cidade, &f.UF, &f.CEP, &f.TelefoneResidencial,
		&f.TelefoneCelular, &f.Email, &f.Deficiente, &f.Deficiencia, &f.NomeMaeFuncionario,
		&f.DataUltAlteracao, &f.MatriculaRH, &f.Cor, &f.Escolaridade, &f.Naturalidade, &f.Ramal,
		&f.RegimeRevezamento, &f.RegimeTrabalho, &f.TelComercial, &f.TurnoTrabalho, &f.RHUnidade,
		&f.RHSetor, &f.RHCargo, &f.RHCentroCustoUnidade, &f.CreatedAt, &f.UpdatedAt, &inserted,
	)
	if err != nil {
		return employee.Funcionario{}, false, fmt.Errorf("failed to upsert funcionario %s: %w", funcionario.Codigo, err)
	}
	return f, inserted, nil
}

// CountActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountActive(ctx context.Context, empresaID int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM funcionarios
		WHERE empresa_id = $1 AND (data_demissao IS NULL OR data_demissao > CURRENT_DATE)
	`

	var count int64
	if err := q.QueryRow(ctx, query, empresaID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active funcionarios: %w", err)
	}
	return count, nil
}
