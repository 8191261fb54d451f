package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User
	err := xray.Capture(ctx, "Postgres.FindUserByEmail", func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx,
			`SELECT id, organization_id, email, password_hash, first_name, last_name,
			        role_id, is_active, created_at, updated_at
			 FROM users
			 WHERE email = $1`,
			email,
		)
		err := row.Scan(
			&user.ID, &user.OrganizationID, &user.Email, &user.PasswordHash,
			&user.FirstName, &user.LastName, &user.RoleID, &user.IsActive,
			&user.CreatedAt, &user.UpdatedAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *UserRepository) ListByOrganization(ctx context.Context, orgID string) ([]domain.User, error) {
	var users []domain.User
	err := xray.Capture(ctx, "Postgres.ListUsers", func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx,
			`SELECT id, organization_id, email, password_hash, first_name, last_name,
			        role_id, is_active, created_at, updated_at
			 FROM users
			 WHERE organization_id = $1
			 ORDER BY created_at`,
			orgID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var user domain.User
			if err := rows.Scan(
				&user.ID, &user.OrganizationID, &user.Email, &user.PasswordHash,
				&user.FirstName, &user.LastName, &user.RoleID, &user.IsActive,
				&user.CreatedAt, &user.UpdatedAt,
			); err != nil {
				return err
			}
			users = append(users, user)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
