package handlers

import (
	"bps-peka/internal/core/domain"
	"bps-peka/internal/core/services"
	"bps-peka/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NavigationHandler handles the route guard endpoints used by the shell
type NavigationHandler struct {
	navService  *services.NavigationService
	authService *services.AuthService
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(navService *services.NavigationService, authService *services.AuthService) *NavigationHandler {
	return &NavigationHandler{
		navService:  navService,
		authService: authService,
	}
}

// RememberPathRequest represents a last-visited-route update
type RememberPathRequest struct {
	Path string `json:"path" validate:"required"`
}

// Resolve maps a requested route to the screen the shell should show
// @Summary Resolve a route
// @Description Apply the navigation guard to a requested route for the current caller
// @Tags Navigation
// @Accept json
// @Produce json
// @Param route query string false "Requested route"
// @Success 200 {object} response.Response
// @Router /navigation/resolve [get]
func (h *NavigationHandler) Resolve(c *fiber.Ctx) error {
	requested := c.Query("route")

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		res := services.Resolve(services.NavState{}, requested, "")
		return response.Success(c, "Route resolved", res)
	}

	session, err := h.authService.Session(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to resolve route")
	}

	state := services.NavState{
		HasSession: session.HasSession,
		HasProfile: session.HasProfile,
	}
	if session.Profile != nil {
		state.Role = domain.Role(session.Profile.Role)
	}

	res, err := h.navService.ResolveFor(c.Context(), state, userID, requested)
	if err != nil {
		return response.InternalServerError(c, "Failed to resolve route")
	}
	return response.Success(c, "Route resolved", res)
}

// RememberPath persists the caller's last visited route
// @Summary Remember last path
// @Description Persist the last successfully visited route as the default landing target
// @Tags Navigation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RememberPathRequest true "Visited route"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /navigation/last-path [put]
func (h *NavigationHandler) RememberPath(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req RememberPathRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Path == "" {
		return response.BadRequest(c, "Path is required")
	}

	if err := h.navService.RememberPath(c.Context(), userID, req.Path); err != nil {
		return response.InternalServerError(c, "Failed to remember path")
	}
	return response.Success(c, "Path remembered", nil)
}
