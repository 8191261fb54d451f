package ports

import (
	"context"

	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) error
	// FindByTokenHash returns the session joined with its owning user,
	// profile, organization and role in a single read. Expired sessions are
	// still returned; expiry is the caller's check.
	FindByTokenHash(ctx context.Context, tokenHash string) (domain.SessionUser, error)
	Delete(ctx context.Context, sessionID string) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	ListByOrganization(ctx context.Context, orgID string) ([]domain.User, error)
}

type ClientRepository interface {
	Create(ctx context.Context, client domain.Client) error
	Update(ctx context.Context, client domain.Client) error
	GetByID(ctx context.Context, orgID, clientID string) (domain.Client, error)
	ListByOrganization(ctx context.Context, orgID string) ([]domain.Client, error)
}

type InsurerRepository interface {
	Create(ctx context.Context, insurer domain.Insurer) error
	Update(ctx context.Context, insurer domain.Insurer) error
	GetByID(ctx context.Context, orgID, insurerID string) (domain.Insurer, error)
	ListByOrganization(ctx context.Context, orgID string) ([]domain.Insurer, error)
}

type PolicyRepository interface {
	Create(ctx context.Context, policy domain.Policy) error
	Update(ctx context.Context, policy domain.Policy) error
	GetByID(ctx context.Context, orgID, policyID string) (domain.Policy, error)
	ListByOrganization(ctx context.Context, orgID string) ([]domain.Policy, error)
}

// ClaimFilter narrows claim reads to what the resolved permission scope
// allows. UserID is only consulted for ScopeOwn and ScopeClient.
type ClaimFilter struct {
	OrganizationID string
	Scope          domain.Scope
	UserID         string
}

type ClaimRepository interface {
	Create(ctx context.Context, claim domain.Claim) error
	Update(ctx context.Context, claim domain.Claim) error
	GetByID(ctx context.Context, filter ClaimFilter, claimID string) (domain.Claim, error)
	List(ctx context.Context, filter ClaimFilter) ([]domain.Claim, error)
}
