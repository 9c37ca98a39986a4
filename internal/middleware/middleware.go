package middleware

import (
	"strings"

	"FitLog-Backend/domain"
	"FitLog-Backend/internal/api/presenters"
	"FitLog-Backend/pkg/jwt"
	"FitLog-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const SessionCookieName = "session_token"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		ApprovedOnly() fiber.Handler
		AdminOnly() fiber.Handler
		PageGate(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct {
		userService user.UserService
	}
)

func NewMiddleware(userService user.UserService) Middleware {
	return &middleware{userService: userService}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowMethods: "GET,POST,PATCH,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

func tokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Cookies(SessionCookieName)
}

// AuthMiddleware validates the session token, then re-resolves role and
// approval from the user store so that approval granted after sign-in takes
// effect without a new login.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, nil)
		}

		claims, err := jwtService.GetClaimsByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, nil)
		}

		currentUser, err := m.userService.RehydrateSession(c.Context(), claims.UserID)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, nil)
		}

		c.Locals("user_id", currentUser.ID.String())
		c.Locals("role", currentUser.Role)
		c.Locals("approved", currentUser.Approved)
		c.Locals("email", currentUser.Email)
		return c.Next()
	}
}

func (m *middleware) ApprovedOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		approved, ok := c.Locals("approved").(bool)
		if !ok || !approved {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageAccessPending, nil)
		}
		return c.Next()
	}
}

func (m *middleware) AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role != domain.RoleSuperAdmin {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageForbidden, nil)
		}
		return c.Next()
	}
}

// PageGate applies the route-level redirect rules for browser-facing pages:
// unauthenticated visitors go to the sign-in page, unapproved users are held
// on the access-pending page, and only super admins may open admin pages.
func (m *middleware) PageGate(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.Redirect("/auth/signin", fiber.StatusFound)
		}

		claims, err := jwtService.GetClaimsByToken(token)
		if err != nil {
			return c.Redirect("/auth/signin", fiber.StatusFound)
		}

		currentUser, err := m.userService.RehydrateSession(c.Context(), claims.UserID)
		if err != nil {
			return c.Redirect("/auth/signin", fiber.StatusFound)
		}

		path := c.Path()
		if !currentUser.Approved && path != "/access-pending" {
			return c.Redirect("/access-pending", fiber.StatusFound)
		}

		if strings.HasPrefix(path, "/approval") && currentUser.Role != domain.RoleSuperAdmin {
			return c.Redirect("/meals", fiber.StatusFound)
		}

		c.Locals("user_id", currentUser.ID.String())
		c.Locals("role", currentUser.Role)
		c.Locals("approved", currentUser.Approved)
		return c.Next()
	}
}
