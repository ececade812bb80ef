package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AccessPolicy names how requests are authorized.
type AccessPolicy string

// PermitAll lets every request through. No authentication is performed.
const PermitAll AccessPolicy = "permit_all"

const CtxAccessPolicyKey = "access_policy" // AccessPolicy

func ParseAccessPolicy(s string) (AccessPolicy, error) {
	switch p := AccessPolicy(s); p {
	case PermitAll:
		return p, nil
	default:
		return "", fmt.Errorf("unknown access policy %q", s)
	}
}

// Authorize enforces the configured policy and records it on the context.
// A policy that is not recognised rejects every request.
func Authorize(policy AccessPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(CtxAccessPolicyKey, policy)

			switch policy {
			case PermitAll:
				return next(c)
			default:
				return c.JSON(http.StatusForbidden, errorJSON("forbidden"))
			}
		}
	}
}

func errorJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}
