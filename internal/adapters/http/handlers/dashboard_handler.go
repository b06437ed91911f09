package handlers

import (
	"bps-peka/internal/core/domain"
	"bps-peka/internal/core/services"
	"bps-peka/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get returns the role-specific dashboard
// @Summary Get dashboard
// @Description Employee dashboard for pegawai, approval statistics for kepala satker
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Description substring, case-insensitive (pegawai only)"
// @Param status query string false "selesai or proses (pegawai only)"
// @Param date query string false "Exact date YYYY-MM-DD (pegawai only)"
// @Success 200 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	if role == string(domain.RoleKepalaSatker) {
		data, err := h.dashboardService.GetKepalaDashboard(c.Context())
		if err != nil {
			return response.InternalServerError(c, "Failed to build dashboard")
		}
		return response.Success(c, "Dashboard retrieved successfully", data)
	}

	data, err := h.dashboardService.GetEmployeeDashboard(c.Context(), userID, filterFromQuery(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to build dashboard")
	}
	return response.Success(c, "Dashboard retrieved successfully", data)
}
