package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
)

type InsurerRepository struct {
	db *sql.DB
}

func NewInsurerRepository(db *sql.DB) *InsurerRepository {
	return &InsurerRepository{db: db}
}

func (r *InsurerRepository) Create(ctx context.Context, insurer domain.Insurer) error {
	return xray.Capture(ctx, "Postgres.CreateInsurer", func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO insurers (id, organization_id, name, email, phone, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			insurer.ID, insurer.OrganizationID, insurer.Name, insurer.Email, insurer.Phone,
			insurer.CreatedAt, insurer.UpdatedAt,
		)
		return err
	})
}

func (r *InsurerRepository) Update(ctx context.Context, insurer domain.Insurer) error {
	return xray.Capture(ctx, "Postgres.UpdateInsurer", func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx,
			`UPDATE insurers SET name = $1, email = $2, phone = $3, updated_at = $4
			 WHERE id = $5 AND organization_id = $6`,
			insurer.Name, insurer.Email, insurer.Phone, insurer.UpdatedAt,
			insurer.ID, insurer.OrganizationID,
		)
		if err != nil {
			return err
		}
		return errIfNoRows(res)
	})
}

func (r *InsurerRepository) GetByID(ctx context.Context, orgID, insurerID string) (domain.Insurer, error) {
	var insurer domain.Insurer
	err := xray.Capture(ctx, "Postgres.GetInsurer", func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx,
			`SELECT id, organization_id, name, email, phone, created_at, updated_at
			 FROM insurers
			 WHERE id = $1 AND organization_id = $2`,
			insurerID, orgID,
		)
		err := row.Scan(
			&insurer.ID, &insurer.OrganizationID, &insurer.Name, &insurer.Email,
			&insurer.Phone, &insurer.CreatedAt, &insurer.UpdatedAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	})
	if err != nil {
		return domain.Insurer{}, err
	}
	return insurer, nil
}

func (r *InsurerRepository) ListByOrganization(ctx context.Context, orgID string) ([]domain.Insurer, error) {
	var insurers []domain.Insurer
	err := xray.Capture(ctx, "Postgres.ListInsurers", func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx,
			`SELECT id, organization_id, name, email, phone, created_at, updated_at
			 FROM insurers
			 WHERE organization_id = $1
			 ORDER BY name`,
			orgID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var insurer domain.Insurer
			if err := rows.Scan(
				&insurer.ID, &insurer.OrganizationID, &insurer.Name, &insurer.Email,
				&insurer.Phone, &insurer.CreatedAt, &insurer.UpdatedAt,
			); err != nil {
				return err
			}
			insurers = append(insurers, insurer)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return insurers, nil
}
