package domain

import (
	"strings"
	"time"
)

type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type User struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	FirstName      *string   `json:"first_name,omitempty"`
	LastName       *string   `json:"last_name,omitempty"`
	RoleID         string    `json:"role_id"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Role struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Permissions    []string  `json:"permissions"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Client struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Insurer struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Policy struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	ClientID       string    `json:"client_id"`
	InsurerID      string    `json:"insurer_id"`
	PolicyNumber   string    `json:"policy_number"`
	Type           string    `json:"type"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Claim struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	ClientID       string    `json:"client_id"`
	PolicyID       string    `json:"policy_id"`
	ClaimNumber    string    `json:"claim_number"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Amount         float64   `json:"amount"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Session rows only ever hold the SHA-256 hash of the raw token. The raw
// token lives in the client's cookie and nowhere else.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthenticatedUser is built fresh per request from the joined session
// lookup and attached to the request context; it is never persisted.
type AuthenticatedUser struct {
	ID               string   `json:"id"`
	Email            string   `json:"email"`
	FirstName        *string  `json:"first_name,omitempty"`
	LastName         *string  `json:"last_name,omitempty"`
	OrganizationID   string   `json:"organization_id"`
	OrganizationSlug string   `json:"organization_slug"`
	Role             string   `json:"role"`
	Permissions      []string `json:"permissions"`
}

// SessionUser is the composite record returned by the joined session lookup.
type SessionUser struct {
	Session  Session
	User     AuthenticatedUser
	IsActive bool
}

type Scope string

const (
	ScopeAll    Scope = "all"
	ScopeClient Scope = "client"
	ScopeOwn    Scope = "own"
)

// scopeRank orders scopes by permissiveness; lower wins.
var scopeRank = map[Scope]int{
	ScopeAll:    0,
	ScopeClient: 1,
	ScopeOwn:    2,
}

// ResolveScope returns the most permissive scope granted for action by the
// flat "action:scope" permission list. Unknown scope suffixes are ignored.
func ResolveScope(permissions []string, action string) (Scope, bool) {
	prefix := action + ":"
	best := len(scopeRank)
	var resolved Scope
	found := false
	for _, p := range permissions {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		scope := Scope(strings.TrimPrefix(p, prefix))
		rank, known := scopeRank[scope]
		if !known {
			continue
		}
		if rank < best {
			best = rank
			resolved = scope
			found = true
		}
	}
	return resolved, found
}
