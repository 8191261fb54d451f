package middleware

import (
	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/labstack/echo/v4"
)

func XRayMiddleware(segmentName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, seg := xray.BeginSegment(c.Request().Context(), segmentName)
			req := c.Request().Clone(ctx)
			c.SetRequest(req)
			_ = xray.AddAnnotation(ctx, "method", c.Request().Method)
			_ = xray.AddAnnotation(ctx, "path", c.Request().URL.Path)
			err := next(c)
			seg.Close(err)
			return err
		}
	}
}
