package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
	"github.com/jmjalil96/friendly-system-sub003/internal/ports"
)

const (
	paramsContextKey = "validated_params"
	queryContextKey  = "validated_query"
	bodyContextKey   = "validated_body"
)

var validate = newValidator()

// newValidator reports issues under the wire-level field names rather than
// Go struct field names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "param", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// Schema declares which request parts a route validates. Each factory
// returns a fresh tagged struct to bind into. Keys are evaluated in a fixed
// order (params, query, body); the first failing key short-circuits.
type Schema struct {
	Params func() any
	Query  func() any
	Body   func() any
}

// Validate binds and validates the declared request parts, attaching the
// parsed structs to the context. Handlers read input via Params/Query/Body
// and never see the raw request fields.
func Validate(schema Schema, logger ports.Logger) echo.MiddlewareFunc {
	binder := &echo.DefaultBinder{}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if schema.Params != nil {
				target := schema.Params()
				if err := binder.BindPathParams(c, target); err != nil {
					return failValidation(c, logger, "params", []string{"malformed path parameters"})
				}
				if msgs := issueMessages(validate.Struct(target)); len(msgs) > 0 {
					return failValidation(c, logger, "params", msgs)
				}
				c.Set(paramsContextKey, target)
			}
			if schema.Query != nil {
				target := schema.Query()
				if err := binder.BindQueryParams(c, target); err != nil {
					return failValidation(c, logger, "query", []string{"malformed query parameters"})
				}
				if msgs := issueMessages(validate.Struct(target)); len(msgs) > 0 {
					return failValidation(c, logger, "query", msgs)
				}
				c.Set(queryContextKey, target)
			}
			if schema.Body != nil {
				target := schema.Body()
				if err := binder.BindBody(c, target); err != nil {
					return failValidation(c, logger, "body", []string{"malformed request body"})
				}
				if msgs := issueMessages(validate.Struct(target)); len(msgs) > 0 {
					return failValidation(c, logger, "body", msgs)
				}
				c.Set(bodyContextKey, target)
			}
			return next(c)
		}
	}
}

func failValidation(c echo.Context, logger ports.Logger, field string, issues []string) error {
	logger.Debug(c.Request().Context(), "request validation failed",
		"field", field,
		"issues", issues,
	)
	return domain.NewValidationError(strings.Join(issues, ", "))
}

func issueMessages(err error) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"invalid input"}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "email":
			msgs = append(msgs, fe.Field()+" must be a valid email")
		case "uuid4", "uuid":
			msgs = append(msgs, fe.Field()+" must be a valid id")
		default:
			msgs = append(msgs, fe.Field()+" failed "+fe.Tag()+" validation")
		}
	}
	return msgs
}

// Params returns the validated path parameters for the request.
func Params[T any](c echo.Context) *T {
	v, _ := c.Get(paramsContextKey).(*T)
	return v
}

// Query returns the validated query parameters for the request.
func Query[T any](c echo.Context) *T {
	v, _ := c.Get(queryContextKey).(*T)
	return v
}

// Body returns the validated request body for the request.
func Body[T any](c echo.Context) *T {
	v, _ := c.Get(bodyContextKey).(*T)
	return v
}
