package handlers

import (
	"errors"
	"strings"

	"bps-peka/internal/core/services"
	"bps-peka/internal/pkg/response"
	"bps-peka/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get returns the caller's profile
// @Summary Get own profile
// @Description Get the authenticated caller's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return response.NotFound(c, "Profile not completed yet")
		}
		return response.InternalServerError(c, "Failed to fetch profile")
	}

	return response.Success(c, "Profile retrieved successfully", profile.ToResponse())
}

// Save creates or updates the caller's profile
// @Summary Save own profile
// @Description Complete or update the caller's profile; saving again overwrites previous values
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SaveProfileInput true "Profile data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /profile [put]
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input services.SaveProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	input.FullName = strings.TrimSpace(input.FullName)
	input.NIP = strings.TrimSpace(input.NIP)
	input.Department = strings.TrimSpace(input.Department)
	input.Position = strings.TrimSpace(input.Position)
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, validate.Message(err))
	}

	profile, err := h.profileService.Save(c.Context(), userID, &input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRole) {
			return response.BadRequest(c, "Invalid role")
		}
		return response.InternalServerError(c, "Failed to save profile")
	}

	return response.Success(c, "Profile saved successfully", profile.ToResponse())
}
