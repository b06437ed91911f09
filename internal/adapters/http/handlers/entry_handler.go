package handlers

import (
	"errors"
	"time"

	"bps-peka/internal/core/aggregate"
	"bps-peka/internal/core/services"
	"bps-peka/internal/pkg/response"
	"bps-peka/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// EntryHandler handles work entry endpoints
type EntryHandler struct {
	entryService *services.EntryService
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(entryService *services.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// List returns the caller's entries with optional filters
// @Summary List own entries
// @Description List the caller's work entries, newest date first, with optional search, status, and date filters
// @Tags Entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Description substring, case-insensitive"
// @Param status query string false "selesai or proses"
// @Param date query string false "Exact date YYYY-MM-DD"
// @Success 200 {object} response.Response
// @Router /entries [get]
func (h *EntryHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	entries, err := h.entryService.ListOwn(c.Context(), userID, filterFromQuery(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch entries")
	}

	responses := make([]interface{}, len(entries))
	for i, e := range entries {
		responses[i] = e.ToResponse()
	}
	return response.Success(c, "Entries retrieved successfully", responses)
}

// Create submits a new work entry
// @Summary Create entry
// @Description Submit a daily work entry; it always starts pending approval
// @Tags Entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.EntryInput true "Entry data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /entries [post]
func (h *EntryHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input, err := h.parseInput(c)
	if err != nil {
		return err
	}

	entry, err := h.entryService.Create(c.Context(), userID, input)
	if err != nil {
		return h.mapEntryError(c, err, "Failed to create entry")
	}

	return response.Created(c, "Entry created successfully", entry.ToResponse())
}

// Update edits a pending entry owned by the caller
// @Summary Update entry
// @Description Edit an entry; only the owner may edit, and only while pending approval
// @Tags Entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param body body services.EntryInput true "Entry data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /entries/{id} [put]
func (h *EntryHandler) Update(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	entryID := c.Params("id")

	input, err := h.parseInput(c)
	if err != nil {
		return err
	}

	entry, err := h.entryService.Update(c.Context(), userID, entryID, input)
	if err != nil {
		return h.mapEntryError(c, err, "Failed to update entry")
	}

	return response.Success(c, "Entry updated successfully", entry.ToResponse())
}

// Delete removes a pending entry owned by the caller
// @Summary Delete entry
// @Description Delete an entry; only the owner may delete, and only while pending approval
// @Tags Entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /entries/{id} [delete]
func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	entryID := c.Params("id")

	if err := h.entryService.Delete(c.Context(), userID, entryID); err != nil {
		return h.mapEntryError(c, err, "Failed to delete entry")
	}

	return response.Success(c, "Entry deleted successfully", nil)
}

func (h *EntryHandler) parseInput(c *fiber.Ctx) (*services.EntryInput, error) {
	var input services.EntryInput
	if err := c.BodyParser(&input); err != nil {
		return nil, response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return nil, response.BadRequest(c, validate.Message(err))
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, response.BadRequest(c, "Date must be in YYYY-MM-DD format")
	}
	return &input, nil
}

func (h *EntryHandler) mapEntryError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrEntryNotFound):
		return response.NotFound(c, "Entry not found")
	case errors.Is(err, services.ErrEntryNotOwned):
		return response.Forbidden(c, "Entry belongs to another user")
	case errors.Is(err, services.ErrEntryNotPending):
		return response.Forbidden(c, "Entry has already been reviewed")
	case errors.Is(err, services.ErrInvalidUnit):
		return response.BadRequest(c, "Invalid unit")
	case errors.Is(err, services.ErrInvalidStatus):
		return response.BadRequest(c, "Invalid status")
	default:
		return response.InternalServerError(c, fallback)
	}
}

// filterFromQuery reads the shared search/status/date filter from the query
// string.
func filterFromQuery(c *fiber.Ctx) aggregate.Filter {
	return aggregate.Filter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Date:   c.Query("date"),
	}
}
