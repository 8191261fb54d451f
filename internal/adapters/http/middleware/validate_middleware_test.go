package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
)

type createThingRequest struct {
	Title  string  `json:"title" validate:"required"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

type thingParams struct {
	ID string `param:"id" validate:"required,uuid4"`
}

type listQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=open closed"`
}

func jsonContext(method, target, body string) echo.Context {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestValidate_BodyRequiredFieldMissing(t *testing.T) {
	logger := &mockLogger{}
	mw := Validate(Schema{Body: func() any { return new(createThingRequest) }}, logger)

	c := jsonContext(http.MethodPost, "/things", `{}`)
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return nil
	})(c)

	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeValidationError, appErr.Code)
	assert.Contains(t, appErr.Message, "title is required")
	assert.False(t, called, "handler must not run on validation failure")
	assert.Equal(t, "request validation failed", logger.debugMsg)
}

func TestValidate_BodyReplacedWithParsedValue(t *testing.T) {
	mw := Validate(Schema{Body: func() any { return new(createThingRequest) }}, &mockLogger{})

	c := jsonContext(http.MethodPost, "/things", `{"title":"Water damage","amount":120.5}`)
	err := mw(func(c echo.Context) error {
		body := Body[createThingRequest](c)
		require.NotNil(t, body)
		assert.Equal(t, "Water damage", body.Title)
		assert.Equal(t, 120.5, body.Amount)
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
}

func TestValidate_MalformedBody(t *testing.T) {
	mw := Validate(Schema{Body: func() any { return new(createThingRequest) }}, &mockLogger{})

	c := jsonContext(http.MethodPost, "/things", `{not json`)
	err := mw(func(c echo.Context) error { return nil })(c)

	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeValidationError, appErr.Code)
	assert.Contains(t, appErr.Message, "malformed request body")
}

func TestValidate_ParamsCheckedBeforeBody(t *testing.T) {
	mw := Validate(Schema{
		Params: func() any { return new(thingParams) },
		Body:   func() any { return new(createThingRequest) },
	}, &mockLogger{})

	// Both params and body are invalid; only the params failure may surface.
	c := jsonContext(http.MethodPut, "/things/abc", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := mw(func(c echo.Context) error { return nil })(c)

	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "id")
	assert.NotContains(t, appErr.Message, "title")
}

func TestValidate_QueryCoercion(t *testing.T) {
	mw := Validate(Schema{Query: func() any { return new(listQuery) }}, &mockLogger{})

	c := jsonContext(http.MethodGet, "/things?status=open", "")
	err := mw(func(c echo.Context) error {
		q := Query[listQuery](c)
		require.NotNil(t, q)
		assert.Equal(t, "open", q.Status)
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
}

func TestValidate_QueryRejected(t *testing.T) {
	mw := Validate(Schema{Query: func() any { return new(listQuery) }}, &mockLogger{})

	c := jsonContext(http.MethodGet, "/things?status=sideways", "")
	err := mw(func(c echo.Context) error { return nil })(c)

	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeValidationError, appErr.Code)
}

func TestValidate_MultipleIssuesJoined(t *testing.T) {
	type strictRequest struct {
		Title string `json:"title" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}
	mw := Validate(Schema{Body: func() any { return new(strictRequest) }}, &mockLogger{})

	c := jsonContext(http.MethodPost, "/things", `{}`)
	err := mw(func(c echo.Context) error { return nil })(c)

	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "title is required")
	assert.Contains(t, appErr.Message, "email is required")
	assert.Contains(t, appErr.Message, ", ")
}
