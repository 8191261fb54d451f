package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
)

type PolicyRepository struct {
	db *sql.DB
}

func NewPolicyRepository(db *sql.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

func (r *PolicyRepository) Create(ctx context.Context, policy domain.Policy) error {
	return xray.Capture(ctx, "Postgres.CreatePolicy", func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO policies (id, organization_id, client_id, insurer_id, policy_number,
			                       type, start_date, end_date, status, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			policy.ID, policy.OrganizationID, policy.ClientID, policy.InsurerID,
			policy.PolicyNumber, policy.Type, policy.StartDate, policy.EndDate,
			policy.Status, policy.CreatedAt, policy.UpdatedAt,
		)
		return err
	})
}

func (r *PolicyRepository) Update(ctx context.Context, policy domain.Policy) error {
	return xray.Capture(ctx, "Postgres.UpdatePolicy", func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx,
			`UPDATE policies SET type = $1, start_date = $2, end_date = $3, status = $4, updated_at = $5
			 WHERE id = $6 AND organization_id = $7`,
			policy.Type, policy.StartDate, policy.EndDate, policy.Status, policy.UpdatedAt,
			policy.ID, policy.OrganizationID,
		)
		if err != nil {
			return err
		}
		return errIfNoRows(res)
	})
}

func (r *PolicyRepository) GetByID(ctx context.Context, orgID, policyID string) (domain.Policy, error) {
	var policy domain.Policy
	err := xray.Capture(ctx, "Postgres.GetPolicy", func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx,
			`SELECT id, organization_id, client_id, insurer_id, policy_number,
			        type, start_date, end_date, status, created_at, updated_at
			 FROM policies
			 WHERE id = $1 AND organization_id = $2`,
			policyID, orgID,
		)
		err := row.Scan(
			&policy.ID, &policy.OrganizationID, &policy.ClientID, &policy.InsurerID,
			&policy.PolicyNumber, &policy.Type, &policy.StartDate, &policy.EndDate,
			&policy.Status, &policy.CreatedAt, &policy.UpdatedAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	})
	if err != nil {
		return domain.Policy{}, err
	}
	return policy, nil
}

func (r *PolicyRepository) ListByOrganization(ctx context.Context, orgID string) ([]domain.Policy, error) {
	var policies []domain.Policy
	err := xray.Capture(ctx, "Postgres.ListPolicies", func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx,
			`SELECT id, organization_id, client_id, insurer_id, policy_number,
			        type, start_date, end_date, status, created_at, updated_at
			 FROM policies
			 WHERE organization_id = $1
			 ORDER BY created_at DESC`,
			orgID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var policy domain.Policy
			if err := rows.Scan(
				&policy.ID, &policy.OrganizationID, &policy.ClientID, &policy.InsurerID,
				&policy.PolicyNumber, &policy.Type, &policy.StartDate, &policy.EndDate,
				&policy.Status, &policy.CreatedAt, &policy.UpdatedAt,
			); err != nil {
				return err
			}
			policies = append(policies, policy)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return policies, nil
}
