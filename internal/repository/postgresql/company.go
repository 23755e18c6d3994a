package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/company"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id int64) (company.Empresa, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, codigo, nome, created_at, updated_at
		FROM empresas
		WHERE id = $1
	`

	var emp company.Empresa
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Codigo, &emp.Nome, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Empresa{}, company.ErrCompanyNotFound
		}
		return company.Empresa{}, fmt.Errorf("failed to get empresa by id: %w", err)
	}
	return emp, nil
}

// GetByCodigo implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByCodigo(ctx context.Context, codigo string) (company.Empresa, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, codigo, nome, created_at, updated_at
		FROM empresas
		WHERE codigo = $1
	`

	var emp company.Empresa
	err := q.QueryRow(ctx, query, codigo).Scan(
		&emp.ID, &emp.Codigo, &emp.Nome, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Empresa{}, company.ErrCompanyNotFound
		}
		return company.Empresa{}, fmt.Errorf("failed to get empresa by codigo: %w", err)
	}
	return emp, nil
}

// Create implements company.CompanyRepository. When the codigo is already
// registered the existing row is returned unchanged. The lookup and insert
// run in one transaction.
func (r *companyRepositoryImpl) Create(ctx context.Context, empresa company.Empresa) (company.Empresa, error) {
	var created company.Empresa

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := WithTx(ctx, tx)

		existing, err := r.GetByCodigo(txCtx, empresa.Codigo)
		if err == nil {
			created = existing
			return nil
		}
		if err != company.ErrCompanyNotFound {
			return err
		}

		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO empresas (codigo, nome)
			VALUES ($1, $2)
			RETURNING id, codigo, nome, created_at, updated_at
		`

		err = q.QueryRow(txCtx, query, empresa.Codigo, empresa.Nome).Scan(
			&created.ID, &created.Codigo, &created.Nome, &created.CreatedAt, &created.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create empresa: %w", err)
		}
		return nil
	})
	if err != nil {
		return company.Empresa{}, err
	}
	return created, nil
}

// UpdateNome implements company.CompanyRepository.
func (r *companyRepositoryImpl) UpdateNome(ctx context.Context, id int64, nome string) (company.Empresa, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE empresas
		SET nome = $1
		WHERE id = $2
		RETURNING id, codigo, nome, created_at, updated_at
	`

	var updated company.Empresa
	err := q.QueryRow(ctx, query, nome, id).Scan(
		&updated.ID, &updated.Codigo, &updated.Nome, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Empresa{}, company.ErrCompanyNotFound
		}
		return company.Empresa{}, fmt.Errorf("failed to update empresa: %w", err)
	}
	return updated, nil
}
