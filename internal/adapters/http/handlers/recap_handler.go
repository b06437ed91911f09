package handlers

import (
	"errors"
	"strconv"
	"time"

	"bps-peka/internal/core/domain"
	"bps-peka/internal/core/services"
	"bps-peka/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RecapHandler handles monthly recap endpoints
type RecapHandler struct {
	recapService *services.RecapService
}

// NewRecapHandler creates a new recap handler
func NewRecapHandler(recapService *services.RecapService) *RecapHandler {
	return &RecapHandler{recapService: recapService}
}

// MonthOptions returns the selectable recap months
// @Summary List recap months
// @Description Selectable months for recaps, most recent first, with Indonesian labels
// @Tags Recaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /recaps/months [get]
func (h *RecapHandler) MonthOptions(c *fiber.Ctx) error {
	return response.Success(c, "Month options retrieved successfully", h.recapService.MonthOptions())
}

// Own returns the caller's approved entries for a month
// @Summary Get own monthly recap
// @Description The caller's approved entries within a month
// @Tags Recaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month YYYY-MM, defaults to the current month"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /recaps/own [get]
func (h *RecapHandler) Own(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	month := c.Query("month", time.Now().Format("2006-01"))

	data, err := h.recapService.GetOwnRecap(c.Context(), userID, month)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Month must be in YYYY-MM format")
		}
		return response.InternalServerError(c, "Failed to build recap")
	}
	return response.Success(c, "Recap retrieved successfully", data)
}

// AllEmployees returns the satker-wide recap for a month
// @Summary Get all-employees recap
// @Description Approved entries of every pegawai within a month, optionally narrowed to one employee
// @Tags Recaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month YYYY-MM, defaults to the current month"
// @Param employee_id query int false "Narrow to a single employee"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /recaps/all [get]
func (h *RecapHandler) AllEmployees(c *fiber.Ctx) error {
	month := c.Query("month", time.Now().Format("2006-01"))
	employeeID := queryUint(c, "employee_id")

	data, err := h.recapService.GetAllEmployeesRecap(c.Context(), month, employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Month must be in YYYY-MM format")
		}
		return response.InternalServerError(c, "Failed to build recap")
	}
	return response.Success(c, "Recap retrieved successfully", data)
}

// Export downloads the satker-wide recap as a spreadsheet
// @Summary Export all-employees recap
// @Description Download the monthly recap as an xlsx workbook
// @Tags Recaps
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param month query string false "Month YYYY-MM, defaults to the current month"
// @Param employee_id query int false "Narrow to a single employee"
// @Success 200 {file} binary
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /recaps/all/export [get]
func (h *RecapHandler) Export(c *fiber.Ctx) error {
	month := c.Query("month", time.Now().Format("2006-01"))
	employeeID := queryUint(c, "employee_id")

	buf, filename, err := h.recapService.ExportAllEmployeesRecap(c.Context(), month, employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Month must be in YYYY-MM format")
		}
		return response.InternalServerError(c, "Failed to export recap")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func queryUint(c *fiber.Ctx, key string) uint {
	v, err := strconv.ParseUint(c.Query(key), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}
