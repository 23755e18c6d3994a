package employee

import "context"

type EmployeeRepository interface {
	ListByEmpresa(ctx context.Context, empresaID int64) ([]Funcionario, error)
	GetByID(ctx context.Context, id int64, empresaID int64) (Funcionario, error)
	GetByMatricula(ctx context.Context, matricula string, empresaID int64) (Funcionario, error)
	// Upsert inserts the funcionario or, when a row with the same
	// (codigo, empresa_id) exists, updates it. Reports whether a new row
	// was inserted.
	Upsert(ctx context.Context, funcionario Funcionario) (Funcionario, bool, error)
	// CountActive counts funcionarios with no termination date or a future
	// one. Used as the headcount proxy for the absenteeism rate.
	CountActive(ctx context.Context, empresaID int64) (int64, error)
}
