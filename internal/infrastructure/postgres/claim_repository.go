package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
	"github.com/jmjalil96/friendly-system-sub003/internal/ports"
)

type ClaimRepository struct {
	db *sql.DB
}

func NewClaimRepository(db *sql.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

const claimColumns = `id, organization_id, client_id, policy_id, claim_number,
	title, description, status, amount, created_by, created_at, updated_at`

// scopeClause appends the data-access filter for the resolved permission
// scope. ScopeAll sees the whole organization, ScopeClient what the user's
// client memberships cover, ScopeOwn only rows the user created.
func scopeClause(filter ports.ClaimFilter, args []any) (string, []any) {
	switch filter.Scope {
	case domain.ScopeOwn:
		args = append(args, filter.UserID)
		return fmt.Sprintf(" AND created_by = $%d", len(args)), args
	case domain.ScopeClient:
		args = append(args, filter.UserID)
		return fmt.Sprintf(" AND client_id IN (SELECT client_id FROM client_members WHERE user_id = $%d)", len(args)), args
	default:
		return "", args
	}
}

func (r *ClaimRepository) Create(ctx context.Context, claim domain.Claim) error {
	return xray.Capture(ctx, "Postgres.CreateClaim", func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO claims (id, organization_id, client_id, policy_id, claim_number,
			                     title, description, status, amount, created_by, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			claim.ID, claim.OrganizationID, claim.ClientID, claim.PolicyID, claim.ClaimNumber,
			claim.Title, claim.Description, claim.Status, claim.Amount, claim.CreatedBy,
			claim.CreatedAt, claim.UpdatedAt,
		)
		return err
	})
}

func (r *ClaimRepository) Update(ctx context.Context, claim domain.Claim) error {
	return xray.Capture(ctx, "Postgres.UpdateClaim", func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx,
			`UPDATE claims SET title = $1, description = $2, status = $3, amount = $4, updated_at = $5
			 WHERE id = $6 AND organization_id = $7`,
			claim.Title, claim.Description, claim.Status, claim.Amount, claim.UpdatedAt,
			claim.ID, claim.OrganizationID,
		)
		if err != nil {
			return err
		}
		return errIfNoRows(res)
	})
}

func (r *ClaimRepository) GetByID(ctx context.Context, filter ports.ClaimFilter, claimID string) (domain.Claim, error) {
	var claim domain.Claim
	err := xray.Capture(ctx, "Postgres.GetClaim", func(ctx context.Context) error {
		args := []any{claimID, filter.OrganizationID}
		query := `SELECT ` + claimColumns + ` FROM claims WHERE id = $1 AND organization_id = $2`
		clause, args := scopeClause(filter, args)
		row := r.db.QueryRowContext(ctx, query+clause, args...)
		err := row.Scan(
			&claim.ID, &claim.OrganizationID, &claim.ClientID, &claim.PolicyID,
			&claim.ClaimNumber, &claim.Title, &claim.Description, &claim.Status,
			&claim.Amount, &claim.CreatedBy, &claim.CreatedAt, &claim.UpdatedAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	})
	if err != nil {
		return domain.Claim{}, err
	}
	return claim, nil
}

func (r *ClaimRepository) List(ctx context.Context, filter ports.ClaimFilter) ([]domain.Claim, error) {
	var claims []domain.Claim
	err := xray.Capture(ctx, "Postgres.ListClaims", func(ctx context.Context) error {
		args := []any{filter.OrganizationID}
		query := `SELECT ` + claimColumns + ` FROM claims WHERE organization_id = $1`
		clause, args := scopeClause(filter, args)
		rows, err := r.db.QueryContext(ctx, query+clause+` ORDER BY created_at DESC`, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var claim domain.Claim
			if err := rows.Scan(
				&claim.ID, &claim.OrganizationID, &claim.ClientID, &claim.PolicyID,
				&claim.ClaimNumber, &claim.Title, &claim.Description, &claim.Status,
				&claim.Amount, &claim.CreatedBy, &claim.CreatedAt, &claim.UpdatedAt,
			); err != nil {
				return err
			}
			claims = append(claims, claim)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}
