// internals/features/responses/controller/response_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"citizenvoice_backend/internals/features/responses/dto"
	"citizenvoice_backend/internals/features/responses/service"
	helper "citizenvoice_backend/internals/helpers"
)

type ResponseController struct {
	DB *gorm.DB
}

func NewResponseController(db *gorm.DB) *ResponseController {
	return &ResponseController{DB: db}
}

// POST /api/complaints/:id/responses
// Citizen comment on their own complaint. Always public regardless of the
// submitted flag; privacy is an agency-side capability.
func (ctrl *ResponseController) CreateCitizenResponse(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	complaintID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid complaint id")
	}

	var req dto.CreateResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	response, err := service.CreateCitizenResponse(ctrl.DB, userID, complaintID, req.ResponseMessage, true)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Response posted successfully", dto.FromResponseModel(response))
}

// POST /api/agency/complaints/:id/responses
// Agency reply on an assigned complaint; may be private (internal note).
func (ctrl *ResponseController) CreateAgencyResponse(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	agencyID, err := helper.GetAgencyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	complaintID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid complaint id")
	}

	var req dto.CreateResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	response, err := service.CreateAgencyResponse(ctrl.DB, userID, agencyID, complaintID, req.ResponseMessage, req.IsPublic())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Response posted successfully", dto.FromResponseModel(response))
}

// GET /api/responses/my
func (ctrl *ResponseController) MyResponses(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	feed, err := service.FeedForUser(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch responses")
	}

	sent, received := service.Partition(feed, userID)
	return helper.JsonOK(c, "Responses fetched successfully", dto.MyResponses{
		SentResponses:     dto.FromResponseModels(sent),
		ReceivedResponses: dto.FromResponseModels(received),
	})
}
