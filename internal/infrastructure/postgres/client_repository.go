package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
)

type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client domain.Client) error {
	return xray.Capture(ctx, "Postgres.CreateClient", func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO clients (id, organization_id, name, email, phone, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			client.ID, client.OrganizationID, client.Name, client.Email, client.Phone,
			client.CreatedAt, client.UpdatedAt,
		)
		return err
	})
}

func (r *ClientRepository) Update(ctx context.Context, client domain.Client) error {
	return xray.Capture(ctx, "Postgres.UpdateClient", func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx,
			`UPDATE clients SET name = $1, email = $2, phone = $3, updated_at = $4
			 WHERE id = $5 AND organization_id = $6`,
			client.Name, client.Email, client.Phone, client.UpdatedAt,
			client.ID, client.OrganizationID,
		)
		if err != nil {
			return err
		}
		return errIfNoRows(res)
	})
}

func (r *ClientRepository) GetByID(ctx context.Context, orgID, clientID string) (domain.Client, error) {
	var client domain.Client
	err := xray.Capture(ctx, "Postgres.GetClient", func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx,
			`SELECT id, organization_id, name, email, phone, created_at, updated_at
			 FROM clients
			 WHERE id = $1 AND organization_id = $2`,
			clientID, orgID,
		)
		err := row.Scan(
			&client.ID, &client.OrganizationID, &client.Name, &client.Email,
			&client.Phone, &client.CreatedAt, &client.UpdatedAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	})
	if err != nil {
		return domain.Client{}, err
	}
	return client, nil
}

func (r *ClientRepository) ListByOrganization(ctx context.Context, orgID string) ([]domain.Client, error) {
	var clients []domain.Client
	err := xray.Capture(ctx, "Postgres.ListClients", func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx,
			`SELECT id, organization_id, name, email, phone, created_at, updated_at
			 FROM clients
			 WHERE organization_id = $1
			 ORDER BY name`,
			orgID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var client domain.Client
			if err := rows.Scan(
				&client.ID, &client.OrganizationID, &client.Name, &client.Email,
				&client.Phone, &client.CreatedAt, &client.UpdatedAt,
			); err != nil {
				return err
			}
			clients = append(clients, client)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func errIfNoRows(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
