package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/lib/pq"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session domain.Session) error {
	return xray.Capture(ctx, "Postgres.CreateSession", func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO sessions (id, user_id, token_hash, expires_at, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			session.ID, session.UserID, session.TokenHash, session.ExpiresAt, session.CreatedAt,
		)
		return err
	})
}

// FindByTokenHash performs the single joined read behind every authenticated
// request: session, user, organization and role come back together. Expiry is
// not filtered here; the caller compares timestamps.
func (r *SessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (domain.SessionUser, error) {
	var su domain.SessionUser
	err := xray.Capture(ctx, "Postgres.FindSessionByTokenHash", func(ctx context.Context) error {
		var permissions pq.StringArray
		row := r.db.QueryRowContext(ctx,
			`SELECT s.id, s.user_id, s.expires_at, s.created_at,
			        u.email, u.first_name, u.last_name, u.is_active,
			        o.id, o.slug,
			        r.name, r.permissions
			 FROM sessions s
			 JOIN users u ON u.id = s.user_id
			 JOIN organizations o ON o.id = u.organization_id
			 JOIN roles r ON r.id = u.role_id
			 WHERE s.token_hash = $1`,
			tokenHash,
		)
		err := row.Scan(
			&su.Session.ID, &su.Session.UserID, &su.Session.ExpiresAt, &su.Session.CreatedAt,
			&su.User.Email, &su.User.FirstName, &su.User.LastName, &su.IsActive,
			&su.User.OrganizationID, &su.User.OrganizationSlug,
			&su.User.Role, &permissions,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		su.Session.TokenHash = tokenHash
		su.User.ID = su.Session.UserID
		su.User.Permissions = []string(permissions)
		return nil
	})
	if err != nil {
		return domain.SessionUser{}, err
	}
	return su, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	return xray.Capture(ctx, "Postgres.DeleteSession", func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
		return err
	})
}
