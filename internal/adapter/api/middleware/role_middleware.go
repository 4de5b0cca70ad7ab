package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"giglance/internal/domain/repository"
)

type RoleMiddleware struct {
	profileRepo repository.ProfileRepository
}

func NewRoleMiddleware(profileRepo repository.ProfileRepository) *RoleMiddleware {
	return &RoleMiddleware{
		profileRepo: profileRepo,
	}
}

func (m *RoleMiddleware) SellerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(next, "seller", "Seller privileges required")
}

func (m *RoleMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(next, "admin", "Admin privileges required")
}

func (m *RoleMiddleware) requireRole(next echo.HandlerFunc, role, denied string) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		profile, err := m.profileRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify privileges")
		}

		if profile.Role != role {
			return echo.NewHTTPError(http.StatusForbidden, denied)
		}

		return next(c)
	}
}
