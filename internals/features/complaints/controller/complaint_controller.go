// internals/features/complaints/controller/complaint_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"citizenvoice_backend/internals/features/complaints/dto"
	complaintModel "citizenvoice_backend/internals/features/complaints/model"
	"citizenvoice_backend/internals/features/complaints/service"
	responseDTO "citizenvoice_backend/internals/features/responses/dto"
	responseService "citizenvoice_backend/internals/features/responses/service"
	helper "citizenvoice_backend/internals/helpers"
)

type ComplaintController struct {
	DB *gorm.DB
}

func NewComplaintController(db *gorm.DB) *ComplaintController {
	return &ComplaintController{DB: db}
}

// POST /api/complaints
// Accepts JSON or multipart/form-data; the multipart form may carry one
// "attachment" file. Assignment happens inside the creation transaction.
func (ctrl *ComplaintController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	attachment, _ := c.FormFile("attachment") // absent on JSON bodies

	complaint, err := service.CreateComplaint(ctrl.DB, userID, req.ToModel(userID), attachment)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Complaint submitted successfully", dto.FromComplaintModel(complaint))
}

// GET /api/complaints
func (ctrl *ComplaintController) MyComplaints(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&complaintModel.ComplaintModel{}).
		Where("complaint_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count complaints")
	}

	var complaints []complaintModel.ComplaintModel
	if err := q.
		Preload("Village.Cell.Sector.District.Province").
		Preload("AssignedAgency").
		Order("complaint_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&complaints).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch complaints")
	}

	return helper.JsonList(c, "Complaints fetched successfully",
		dto.FromComplaintModels(complaints),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/complaints/:id
// Owner-scoped detail; foreign complaints come back as the same 404 as
// missing ones. Embeds public responses only.
func (ctrl *ComplaintController) Detail(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	complaintID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid complaint id")
	}

	complaint, err := service.OwnedComplaint(ctrl.DB, userID, complaintID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	responses, err := responseService.PublicResponses(ctrl.DB, complaint.ComplaintID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch responses")
	}

	return helper.JsonOK(c, "Complaint fetched successfully", fiber.Map{
		"complaint": dto.FromComplaintModel(complaint),
		"responses": responseDTO.FromResponseModels(responses),
	})
}

// GET /api/track/:id
// Public status tracking, no auth. Exposes the complaint and its public
// responses to anyone holding the id.
func (ctrl *ComplaintController) PublicTracking(c *fiber.Ctx) error {
	complaintID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid complaint id")
	}

	var complaint complaintModel.ComplaintModel
	if err := ctrl.DB.
		Preload("Village.Cell.Sector.District.Province").
		Preload("AssignedAgency").
		First(&complaint, "complaint_id = ?", complaintID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Complaint not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch complaint")
	}

	responses, err := responseService.PublicResponses(ctrl.DB, complaint.ComplaintID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch responses")
	}

	c.Set("Cache-Control", "public, max-age=30")
	return helper.JsonOK(c, "Complaint status fetched successfully", fiber.Map{
		"complaint": dto.FromComplaintModel(&complaint),
		"responses": responseDTO.FromResponseModels(responses),
	})
}
