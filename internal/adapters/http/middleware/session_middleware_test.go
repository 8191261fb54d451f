package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/jmjalil96/friendly-system-sub003/internal/application"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
	"github.com/jmjalil96/friendly-system-sub003/internal/infrastructure/auth"
)

const testCookieName = "claims_session"

type sessionRepoMock struct{ mock.Mock }

func (m *sessionRepoMock) Create(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *sessionRepoMock) FindByTokenHash(ctx context.Context, tokenHash string) (domain.SessionUser, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(domain.SessionUser), args.Error(1)
}

func (m *sessionRepoMock) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepoMock) ListByOrganization(ctx context.Context, orgID string) ([]domain.User, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.User), args.Error(1)
}

func newTestContext(cookie string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/claims", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSession_MissingCookie(t *testing.T) {
	sessions := new(sessionRepoMock)
	svc := application.NewAuthService(sessions, new(userRepoMock), 24*time.Hour, &mockLogger{})
	mw := Session(svc, testCookieName)

	c, _ := newTestContext("")
	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)

	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeAuthRequired, appErr.Code)
	sessions.AssertNotCalled(t, "FindByTokenHash", mock.Anything, mock.Anything)
}

func TestSession_ValidCookieAttachesUser(t *testing.T) {
	sessions := new(sessionRepoMock)
	svc := application.NewAuthService(sessions, new(userRepoMock), 24*time.Hour, &mockLogger{})
	mw := Session(svc, testCookieName)

	raw := "raw-token"
	sessions.On("FindByTokenHash", mock.Anything, auth.HashToken(raw)).Return(domain.SessionUser{
		Session: domain.Session{ID: "sess-1", UserID: "user-1", ExpiresAt: time.Now().UTC().Add(time.Hour)},
		User: domain.AuthenticatedUser{
			ID:             "user-1",
			Email:          "ana@example.com",
			OrganizationID: "org-1",
			Permissions:    []string{"claims:view:own"},
		},
		IsActive: true,
	}, nil)

	c, _ := newTestContext(raw)
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		user, ok := AuthUser(c)
		require.True(t, ok)
		assert.Equal(t, "user-1", user.ID)
		sessionID, ok := SessionID(c)
		require.True(t, ok)
		assert.Equal(t, "sess-1", sessionID)
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestSession_InvalidTokenShortCircuits(t *testing.T) {
	sessions := new(sessionRepoMock)
	svc := application.NewAuthService(sessions, new(userRepoMock), 24*time.Hour, &mockLogger{})
	mw := Session(svc, testCookieName)

	sessions.On("FindByTokenHash", mock.Anything, mock.Anything).
		Return(domain.SessionUser{}, domain.ErrNotFound)

	c, _ := newTestContext("bogus")
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return nil
	})(c)

	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeAuthSessionInvalid, appErr.Code)
	assert.False(t, called)
}
