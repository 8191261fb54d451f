package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
	"github.com/jmjalil96/friendly-system-sub003/internal/ports"
)

type clientRepoMock struct{ mock.Mock }

func (m *clientRepoMock) Create(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *clientRepoMock) Update(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *clientRepoMock) GetByID(ctx context.Context, orgID, clientID string) (domain.Client, error) {
	args := m.Called(ctx, orgID, clientID)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *clientRepoMock) ListByOrganization(ctx context.Context, orgID string) ([]domain.Client, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.Client), args.Error(1)
}

type claimRepoMock struct{ mock.Mock }

func (m *claimRepoMock) Create(ctx context.Context, claim domain.Claim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *claimRepoMock) Update(ctx context.Context, claim domain.Claim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *claimRepoMock) GetByID(ctx context.Context, filter ports.ClaimFilter, claimID string) (domain.Claim, error) {
	args := m.Called(ctx, filter, claimID)
	return args.Get(0).(domain.Claim), args.Error(1)
}

func (m *claimRepoMock) List(ctx context.Context, filter ports.ClaimFilter) ([]domain.Claim, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Claim), args.Error(1)
}

func TestClientService_Create(t *testing.T) {
	repo := new(clientRepoMock)
	svc := NewClientService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c domain.Client) bool {
		return c.ID != "" && c.OrganizationID == "org-1" && c.Name == "Acme Corp" &&
			!c.CreatedAt.IsZero() && !c.UpdatedAt.IsZero()
	})).Return(nil)

	client, err := svc.Create(context.Background(), domain.Client{OrganizationID: "org-1", Name: "Acme Corp"})
	require.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	repo.AssertExpectations(t)
}

func TestClientService_Create_MissingName(t *testing.T) {
	repo := new(clientRepoMock)
	svc := NewClientService(repo)

	_, err := svc.Create(context.Background(), domain.Client{OrganizationID: "org-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClaimService_Create(t *testing.T) {
	repo := new(claimRepoMock)
	svc := NewClaimService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c domain.Claim) bool {
		return c.ID != "" && c.ClaimNumber != "" && c.Status == "open" &&
			c.CreatedBy == "user-1" && c.OrganizationID == "org-1"
	})).Return(nil)

	claim, err := svc.Create(context.Background(), domain.Claim{
		OrganizationID: "org-1",
		ClientID:       "client-1",
		PolicyID:       "policy-1",
		Title:          "Water damage",
		CreatedBy:      "user-1",
	})
	require.NoError(t, err)
	assert.Contains(t, claim.ClaimNumber, "CLM-")
	repo.AssertExpectations(t)
}

func TestClaimService_Create_MissingTitle(t *testing.T) {
	repo := new(claimRepoMock)
	svc := NewClaimService(repo)

	_, err := svc.Create(context.Background(), domain.Claim{
		OrganizationID: "org-1", ClientID: "client-1", PolicyID: "policy-1", CreatedBy: "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClaimService_List_PassesScopeFilter(t *testing.T) {
	repo := new(claimRepoMock)
	svc := NewClaimService(repo)

	filter := ports.ClaimFilter{OrganizationID: "org-1", Scope: domain.ScopeOwn, UserID: "user-1"}
	repo.On("List", mock.Anything, filter).Return([]domain.Claim{{ID: "claim-1"}}, nil)

	claims, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, claims, 1)
	repo.AssertExpectations(t)
}

func TestClaimService_Update_ScopedReadFirst(t *testing.T) {
	repo := new(claimRepoMock)
	svc := NewClaimService(repo)

	filter := ports.ClaimFilter{OrganizationID: "org-1", Scope: domain.ScopeOwn, UserID: "user-1"}
	existing := domain.Claim{
		ID: "claim-1", OrganizationID: "org-1", Title: "Old title", Status: "open", CreatedBy: "user-1",
	}
	repo.On("GetByID", mock.Anything, filter, "claim-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c domain.Claim) bool {
		return c.ID == "claim-1" && c.Title == "New title" && c.Status == "in_review"
	})).Return(nil)

	updated, err := svc.Update(context.Background(), filter, domain.Claim{
		ID: "claim-1", Title: "New title", Status: "in_review",
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	repo.AssertExpectations(t)
}

func TestClaimService_Update_OutOfScope(t *testing.T) {
	repo := new(claimRepoMock)
	svc := NewClaimService(repo)

	filter := ports.ClaimFilter{OrganizationID: "org-1", Scope: domain.ScopeOwn, UserID: "user-1"}
	repo.On("GetByID", mock.Anything, filter, "claim-2").Return(domain.Claim{}, domain.ErrNotFound)

	_, err := svc.Update(context.Background(), filter, domain.Claim{ID: "claim-2", Title: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
