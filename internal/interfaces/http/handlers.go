package http

import (
	stdhttp "net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/jmjalil96/friendly-system-sub003/internal/adapters/http/middleware"
	"github.com/jmjalil96/friendly-system-sub003/internal/application"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
	"github.com/jmjalil96/friendly-system-sub003/internal/ports"
)

type idParam struct {
	ID string `param:"id" validate:"required,uuid4"`
}

// actor pulls the authenticated user off the context; routes behind the
// session middleware always have one.
func actor(c echo.Context) (domain.AuthenticatedUser, error) {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return domain.AuthenticatedUser{}, domain.NewAuthRequired()
	}
	return user, nil
}

func Health(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{"status": "ok"})
}

type ClientsHandler struct {
	service *application.ClientService
}

func NewClientsHandler(service *application.ClientService) *ClientsHandler {
	return &ClientsHandler{service: service}
}

type clientRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

func (h *ClientsHandler) Create(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	req := middleware.Body[clientRequest](c)
	client, err := h.service.Create(c.Request().Context(), domain.Client{
		OrganizationID: user.OrganizationID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusCreated, client)
}

func (h *ClientsHandler) Update(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	params := middleware.Params[idParam](c)
	req := middleware.Body[clientRequest](c)
	client, err := h.service.Update(c.Request().Context(), domain.Client{
		ID:             params.ID,
		OrganizationID: user.OrganizationID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusOK, client)
}

func (h *ClientsHandler) Get(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	params := middleware.Params[idParam](c)
	client, err := h.service.GetByID(c.Request().Context(), user.OrganizationID, params.ID)
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusOK, client)
}

func (h *ClientsHandler) List(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	clients, err := h.service.List(c.Request().Context(), user.OrganizationID)
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusOK, clients)
}

type InsurersHandler struct {
	service *application.InsurerService
}

func NewInsurersHandler(service *application.InsurerService) *InsurersHandler {
	return &InsurersHandler{service: service}
}

type insurerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

func (h *InsurersHandler) Create(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	req := middleware.Body[insurerRequest](c)
	insurer, err := h.service.Create(c.Request().Context(), domain.Insurer{
		OrganizationID: user.OrganizationID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusCreated, insurer)
}

func (h *InsurersHandler) Update(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	params := middleware.Params[idParam](c)
	req := middleware.Body[insurerRequest](c)
	insurer, err := h.service.Update(c.Request().Context(), domain.Insurer{
		ID:             params.ID,
		OrganizationID: user.OrganizationID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusOK, insurer)
}

func (h *InsurersHandler) Get(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	params := middleware.Params[idParam](c)
	insurer, err := h.service.GetByID(c.Request().Context(), user.OrganizationID, params.ID)
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusOK, insurer)
}

func (h *InsurersHandler) List(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	insurers, err := h.service.List(c.Request().Context(), user.OrganizationID)
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusOK, insurers)
}

type PoliciesHandler struct {
	service *application.PolicyService
}

func NewPoliciesHandler(service *application.PolicyService) *PoliciesHandler {
	return &PoliciesHandler{service: service}
}

type createPolicyRequest struct {
	ClientID     string    `json:"client_id" validate:"required,uuid4"`
	InsurerID    string    `json:"insurer_id" validate:"required,uuid4"`
	PolicyNumber string    `json:"policy_number" validate:"required"`
	Type         string    `json:"type" validate:"required"`
	StartDate    time.Time `json:"start_date" validate:"required"`
	EndDate      time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}

type updatePolicyRequest struct {
	Type      string    `json:"type" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	Status    string    `json:"status" validate:"omitempty,oneof=active expired cancelled"`
}

func (h *PoliciesHandler) Create(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	req := middleware.Body[createPolicyRequest](c)
	policy, err := h.service.Create(c.Request().Context(), domain.Policy{
		OrganizationID: user.OrganizationID,
		ClientID:       req.ClientID,
		InsurerID:      req.InsurerID,
		PolicyNumber:   req.PolicyNumber,
		Type:           req.Type,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusCreated, policy)
}

func (h *PoliciesHandler) Update(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	params := middleware.Params[idParam](c)
	req := middleware.Body[updatePolicyRequest](c)
	policy, err := h.service.Update(c.Request().Context(), domain.Policy{
		ID:             params.ID,
		OrganizationID: user.OrganizationID,
		Type:           req.Type,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusOK, policy)
}

func (h *PoliciesHandler) Get(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	params := middleware.Params[idParam](c)
	policy, err := h.service.GetByID(c.Request().Context(), user.OrganizationID, params.ID)
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusOK, policy)
}

func (h *PoliciesHandler) List(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	policies, err := h.service.List(c.Request().Context(), user.OrganizationID)
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusOK, policies)
}

type ClaimsHandler struct {
	service *application.ClaimService
}

func NewClaimsHandler(service *application.ClaimService) *ClaimsHandler {
	return &ClaimsHandler{service: service}
}

type createClaimRequest struct {
	ClientID    string  `json:"client_id" validate:"required,uuid4"`
	PolicyID    string  `json:"policy_id" validate:"required,uuid4"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"gte=0"`
}

type updateClaimRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=open in_review approved rejected closed"`
	Amount      float64 `json:"amount" validate:"gte=0"`
}

// claimFilter combines the authenticated user with the scope the permission
// middleware resolved for this route.
func claimFilter(c echo.Context) (ports.ClaimFilter, error) {
	user, err := actor(c)
	if err != nil {
		return ports.ClaimFilter{}, err
	}
	scope, ok := middleware.PermissionScope(c)
	if !ok {
		return ports.ClaimFilter{}, domain.NewPermissionDenied()
	}
	return ports.ClaimFilter{
		OrganizationID: user.OrganizationID,
		Scope:          scope,
		UserID:         user.ID,
	}, nil
}

func (h *ClaimsHandler) Create(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	req := middleware.Body[createClaimRequest](c)
	claim, err := h.service.Create(c.Request().Context(), domain.Claim{
		OrganizationID: user.OrganizationID,
		ClientID:       req.ClientID,
		PolicyID:       req.PolicyID,
		Title:          req.Title,
		Description:    req.Description,
		Amount:         req.Amount,
		CreatedBy:      user.ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusCreated, claim)
}

func (h *ClaimsHandler) Update(c echo.Context) error {
	filter, err := claimFilter(c)
	if err != nil {
		return err
	}
	params := middleware.Params[idParam](c)
	req := middleware.Body[updateClaimRequest](c)
	claim, err := h.service.Update(c.Request().Context(), filter, domain.Claim{
		ID:          params.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Amount:      req.Amount,
	})
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusOK, claim)
}

func (h *ClaimsHandler) Get(c echo.Context) error {
	filter, err := claimFilter(c)
	if err != nil {
		return err
	}
	params := middleware.Params[idParam](c)
	claim, err := h.service.GetByID(c.Request().Context(), filter, params.ID)
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusOK, claim)
}

func (h *ClaimsHandler) List(c echo.Context) error {
	filter, err := claimFilter(c)
	if err != nil {
		return err
	}
	claims, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusOK, claims)
}

type UsersHandler struct {
	service *application.UserService
}

func NewUsersHandler(service *application.UserService) *UsersHandler {
	return &UsersHandler{service: service}
}

func (h *UsersHandler) List(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	users, err := h.service.List(c.Request().Context(), user.OrganizationID)
	if err != nil {
		return err
	}
	return c.JSON(stdhttp.StatusOK, users)
}
