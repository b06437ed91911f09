package handlers

import (
	"errors"

	"bps-peka/internal/core/services"
	"bps-peka/internal/pkg/pagination"
	"bps-peka/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ApprovalHandler handles the review queue endpoints
type ApprovalHandler struct {
	approvalService *services.ApprovalService
}

// NewApprovalHandler creates a new approval handler
func NewApprovalHandler(approvalService *services.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvalService: approvalService}
}

// DecisionRequest represents an approval decision body
type DecisionRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// ListPending returns the pending review queue
// @Summary List pending entries
// @Description List entries awaiting review, with owner identity attached, paginated
// @Tags Approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /approvals/pending [get]
func (h *ApprovalHandler) ListPending(c *fiber.Ctx) error {
	reviewerID := c.Locals("userID").(uint)
	params := pagination.GetParams(c)

	entries, total, err := h.approvalService.ListPending(c.Context(), reviewerID, params.Offset, params.Limit)
	if err != nil {
		if errors.Is(err, services.ErrNotKepalaSatker) {
			return response.Forbidden(c, "Only kepala satker may review entries")
		}
		return response.InternalServerError(c, "Failed to fetch pending entries")
	}

	responses := make([]interface{}, len(entries))
	for i, e := range entries {
		responses[i] = e.ToResponse()
	}

	return response.Success(c, "Pending entries retrieved successfully", pagination.NewResponse(responses, params, total))
}

// Decide records an approval or rejection
// @Summary Decide on an entry
// @Description Approve or reject a work entry; a later decision overwrites an earlier one
// @Tags Approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param body body DecisionRequest true "Decision"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /approvals/{id} [post]
func (h *ApprovalHandler) Decide(c *fiber.Ctx) error {
	reviewerID := c.Locals("userID").(uint)
	entryID := c.Params("id")

	var req DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Approved == nil {
		return response.BadRequest(c, "Approved is required")
	}

	entry, err := h.approvalService.Decide(c.Context(), reviewerID, entryID, *req.Approved)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotKepalaSatker):
			return response.Forbidden(c, "Only kepala satker may review entries")
		case errors.Is(err, services.ErrEntryNotFound):
			return response.NotFound(c, "Entry not found")
		default:
			return response.InternalServerError(c, "Failed to record decision")
		}
	}

	message := "Entri berhasil ditolak"
	if *req.Approved {
		message = "Entri berhasil disetujui"
	}
	return response.Success(c, message, entry.ToResponse())
}
