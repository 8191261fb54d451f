package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
	"github.com/jmjalil96/friendly-system-sub003/internal/ports"
)

type ClientService struct {
	repo ports.ClientRepository
}

func NewClientService(repo ports.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	if client.OrganizationID == "" || client.Name == "" {
		return domain.Client{}, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	client.ID = uuid.NewString()
	client.CreatedAt = now
	client.UpdatedAt = now
	if err := s.repo.Create(ctx, client); err != nil {
		return domain.Client{}, err
	}
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, client domain.Client) (domain.Client, error) {
	if client.ID == "" || client.OrganizationID == "" || client.Name == "" {
		return domain.Client{}, domain.ErrInvalidInput
	}
	client.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, client); err != nil {
		return domain.Client{}, err
	}
	return s.repo.GetByID(ctx, client.OrganizationID, client.ID)
}

func (s *ClientService) GetByID(ctx context.Context, orgID, clientID string) (domain.Client, error) {
	if orgID == "" || clientID == "" {
		return domain.Client{}, domain.ErrInvalidInput
	}
	return s.repo.GetByID(ctx, orgID, clientID)
}

func (s *ClientService) List(ctx context.Context, orgID string) ([]domain.Client, error) {
	if orgID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.ListByOrganization(ctx, orgID)
}

type InsurerService struct {
	repo ports.InsurerRepository
}

func NewInsurerService(repo ports.InsurerRepository) *InsurerService {
	return &InsurerService{repo: repo}
}

func (s *InsurerService) Create(ctx context.Context, insurer domain.Insurer) (domain.Insurer, error) {
	if insurer.OrganizationID == "" || insurer.Name == "" {
		return domain.Insurer{}, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	insurer.ID = uuid.NewString()
	insurer.CreatedAt = now
	insurer.UpdatedAt = now
	if err := s.repo.Create(ctx, insurer); err != nil {
		return domain.Insurer{}, err
	}
	return insurer, nil
}

func (s *InsurerService) Update(ctx context.Context, insurer domain.Insurer) (domain.Insurer, error) {
	if insurer.ID == "" || insurer.OrganizationID == "" || insurer.Name == "" {
		return domain.Insurer{}, domain.ErrInvalidInput
	}
	insurer.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, insurer); err != nil {
		return domain.Insurer{}, err
	}
	return s.repo.GetByID(ctx, insurer.OrganizationID, insurer.ID)
}

func (s *InsurerService) GetByID(ctx context.Context, orgID, insurerID string) (domain.Insurer, error) {
	if orgID == "" || insurerID == "" {
		return domain.Insurer{}, domain.ErrInvalidInput
	}
	return s.repo.GetByID(ctx, orgID, insurerID)
}

func (s *InsurerService) List(ctx context.Context, orgID string) ([]domain.Insurer, error) {
	if orgID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.ListByOrganization(ctx, orgID)
}

type PolicyService struct {
	repo ports.PolicyRepository
}

func NewPolicyService(repo ports.PolicyRepository) *PolicyService {
	return &PolicyService{repo: repo}
}

func (s *PolicyService) Create(ctx context.Context, policy domain.Policy) (domain.Policy, error) {
	if policy.OrganizationID == "" || policy.ClientID == "" || policy.InsurerID == "" || policy.PolicyNumber == "" {
		return domain.Policy{}, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	policy.ID = uuid.NewString()
	if policy.Status == "" {
		policy.Status = "active"
	}
	policy.CreatedAt = now
	policy.UpdatedAt = now
	if err := s.repo.Create(ctx, policy); err != nil {
		return domain.Policy{}, err
	}
	return policy, nil
}

func (s *PolicyService) Update(ctx context.Context, policy domain.Policy) (domain.Policy, error) {
	if policy.ID == "" || policy.OrganizationID == "" {
		return domain.Policy{}, domain.ErrInvalidInput
	}
	policy.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, policy); err != nil {
		return domain.Policy{}, err
	}
	return s.repo.GetByID(ctx, policy.OrganizationID, policy.ID)
}

func (s *PolicyService) GetByID(ctx context.Context, orgID, policyID string) (domain.Policy, error) {
	if orgID == "" || policyID == "" {
		return domain.Policy{}, domain.ErrInvalidInput
	}
	return s.repo.GetByID(ctx, orgID, policyID)
}

func (s *PolicyService) List(ctx context.Context, orgID string) ([]domain.Policy, error) {
	if orgID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.ListByOrganization(ctx, orgID)
}

type ClaimService struct {
	repo ports.ClaimRepository
}

func NewClaimService(repo ports.ClaimRepository) *ClaimService {
	return &ClaimService{repo: repo}
}

func (s *ClaimService) Create(ctx context.Context, claim domain.Claim) (domain.Claim, error) {
	if claim.OrganizationID == "" || claim.ClientID == "" || claim.PolicyID == "" || claim.Title == "" || claim.CreatedBy == "" {
		return domain.Claim{}, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	claim.ID = uuid.NewString()
	claim.ClaimNumber = "CLM-" + strings.ToUpper(claim.ID[:8])
	if claim.Status == "" {
		claim.Status = "open"
	}
	claim.CreatedAt = now
	claim.UpdatedAt = now
	if err := s.repo.Create(ctx, claim); err != nil {
		return domain.Claim{}, err
	}
	return claim, nil
}

// Update re-reads through the scope filter first so a caller can never touch
// a claim their resolved scope does not cover.
func (s *ClaimService) Update(ctx context.Context, filter ports.ClaimFilter, claim domain.Claim) (domain.Claim, error) {
	if claim.ID == "" || filter.OrganizationID == "" {
		return domain.Claim{}, domain.ErrInvalidInput
	}
	existing, err := s.repo.GetByID(ctx, filter, claim.ID)
	if err != nil {
		return domain.Claim{}, err
	}
	existing.Title = claim.Title
	existing.Description = claim.Description
	if claim.Status != "" {
		existing.Status = claim.Status
	}
	existing.Amount = claim.Amount
	existing.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, existing); err != nil {
		return domain.Claim{}, err
	}
	return existing, nil
}

func (s *ClaimService) GetByID(ctx context.Context, filter ports.ClaimFilter, claimID string) (domain.Claim, error) {
	if filter.OrganizationID == "" || claimID == "" {
		return domain.Claim{}, domain.ErrInvalidInput
	}
	return s.repo.GetByID(ctx, filter, claimID)
}

func (s *ClaimService) List(ctx context.Context, filter ports.ClaimFilter) ([]domain.Claim, error) {
	if filter.OrganizationID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.List(ctx, filter)
}

type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context, orgID string) ([]domain.User, error) {
	if orgID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.ListByOrganization(ctx, orgID)
}
