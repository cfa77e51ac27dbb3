package http

import (
	"errors"
	"net/http"

	"marketing_site/internal/domain/models"
	"marketing_site/internal/transport/http/dto/response"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var errNoToken = errors.New("no token in context")

// UserIDFromContext extracts the authenticated user id from the JWT the
// echo-jwt middleware stored in the context.
func UserIDFromContext(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errNoToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errNoToken
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return uuid.Nil, errNoToken
	}

	return uuid.Parse(uid)
}

// AdminOnly rejects authenticated requests whose token does not carry
// the admin role. It must run after the JWT middleware.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
		}

		if role, _ := claims["role"].(string); role != models.RoleAdmin {
			return c.JSON(http.StatusForbidden, response.ErrorResponse{
				Status: "error",
				Error:  "forbidden",
			})
		}

		return next(c)
	}
}
