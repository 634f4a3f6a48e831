// internals/features/agencies/controller/agency_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"citizenvoice_backend/internals/constants"
	"citizenvoice_backend/internals/features/agencies/dto"
	agencyModel "citizenvoice_backend/internals/features/agencies/model"
	agencyService "citizenvoice_backend/internals/features/agencies/service"
	complaintDTO "citizenvoice_backend/internals/features/complaints/dto"
	complaintModel "citizenvoice_backend/internals/features/complaints/model"
	complaintService "citizenvoice_backend/internals/features/complaints/service"
	geoModel "citizenvoice_backend/internals/features/geography/model"
	authRepo "citizenvoice_backend/internals/features/users/auth/repository"
	authService "citizenvoice_backend/internals/features/users/auth/service"
	helper "citizenvoice_backend/internals/helpers"
)

type AgencyController struct {
	DB *gorm.DB
}

func NewAgencyController(db *gorm.DB) *AgencyController {
	return &AgencyController{DB: db}
}

// POST /api/agency/login
func (ctrl *AgencyController) Login(c *fiber.Ctx) error {
	var req dto.AgencyLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	agency, err := agencyService.VerifyCredentials(ctrl.DB, req.AgencyCode, req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	user, err := authRepo.FindUserByID(ctrl.DB, agency.AgencyUserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	accessToken, err := authService.IssueTokens(c, ctrl.DB, *user, &agency.AgencyID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": accessToken,
		"agency":       dto.FromAgencyModel(agency),
	})
}

// GET /api/agency/dashboard
func (ctrl *AgencyController) Dashboard(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var stats dto.DashboardStats
	err = ctrl.DB.Raw(`
		SELECT a.agency_id,
		       a.agency_name,
		       a.agency_category,
		       COALESCE(array_agg(DISTINCT d.district_name) FILTER (WHERE d.district_name IS NOT NULL), '{}') AS service_districts,
		       COUNT(DISTINCT cp.complaint_id)                                                                AS total_complaints,
		       COUNT(DISTINCT cp.complaint_id) FILTER (WHERE cp.complaint_status = 'Submitted')               AS submitted,
		       COUNT(DISTINCT cp.complaint_id) FILTER (WHERE cp.complaint_status = 'In Progress')             AS in_progress,
		       COUNT(DISTINCT cp.complaint_id) FILTER (WHERE cp.complaint_status = 'Resolved')                AS resolved,
		       COUNT(DISTINCT cp.complaint_id) FILTER (WHERE cp.complaint_status = 'Rejected')                AS rejected
		FROM agencies a
		LEFT JOIN agency_service_districts asd ON asd.agency_id = a.agency_id
		LEFT JOIN districts d ON d.district_id = asd.district_id
		LEFT JOIN complaints cp ON cp.complaint_assigned_agency_id = a.agency_id
		WHERE a.agency_id = ?
		GROUP BY a.agency_id, a.agency_name, a.agency_category
	`, agencyID).Scan(&stats).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}
	if stats.AgencyID != agencyID {
		return helper.JsonError(c, fiber.StatusNotFound, "Agency not found")
	}

	return helper.JsonOK(c, "Dashboard fetched successfully", stats)
}

// GET /api/agency/complaints
func (ctrl *AgencyController) Complaints(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	filter := dto.ComplaintFilter{
		Status:   strings.TrimSpace(c.Query("status")),
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
	}
	if raw := strings.TrimSpace(c.Query("priority")); raw != "" {
		p, convErr := strconv.Atoi(raw)
		if convErr != nil || p < constants.PriorityHigh || p > constants.PriorityLow {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid priority filter")
		}
		filter.Priority = p
	}
	if !filter.ValidStatus() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
	}
	if !filter.ValidCategory() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category filter")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&complaintModel.ComplaintModel{}).
		Where("complaint_assigned_agency_id = ?", agencyID)
	if filter.Status != "" {
		q = q.Where("complaint_status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("complaint_category = ?", filter.Category)
	}
	if filter.Priority != 0 {
		q = q.Where("complaint_priority = ?", filter.Priority)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("complaint_title ILIKE ? OR complaint_description ILIKE ?", like, like)
	}

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
		complaintDTO.FromComplaintModels(complaints),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/agency/complaints/:id/status
func (ctrl *AgencyController) UpdateComplaintStatus(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	complaintID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid complaint id")
	}

	var req complaintDTO.UpdateComplaintStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if !constants.IsValidStatus(req.ComplaintStatus) {
		return helper.JsonValidationError(c, map[string][]string{
			"complaint_status": {"must be one of: " + strings.Join(constants.ComplaintStatuses, ", ")},
		})
	}

	complaint, err := complaintService.UpdateStatusForAgency(ctrl.DB, agencyID, complaintID, req.ComplaintStatus)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Complaint status updated", complaintDTO.FromComplaintModel(complaint))
}

// PATCH /api/agency/password
func (ctrl *AgencyController) ChangePassword(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ChangeAgencyPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var agency agencyModel.AgencyModel
	if err := ctrl.DB.First(&agency, "agency_id = ?", agencyID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Agency not found")
	}
	if !agencyService.CheckPassword(agency.AgencyPassword, req.CurrentPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := agencyService.UpdateAgencyPassword(ctrl.DB, agencyID.String(), req.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	return helper.JsonUpdated(c, "Password updated successfully", nil)
}

// POST /api/admin/agencies
func (ctrl *AgencyController) Create(c *fiber.Ctx) error {
	var req dto.CreateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if !constants.IsValidCategory(req.AgencyCategory) {
		return helper.JsonValidationError(c, map[string][]string{
			"agency_category": {"unknown category"},
		})
	}

	var districts []geoModel.DistrictModel
	if err := ctrl.DB.Where("district_id IN ?", req.ServiceDistrictIDs).Find(&districts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load districts")
	}
	if len(districts) != len(req.ServiceDistrictIDs) {
		return helper.JsonValidationError(c, map[string][]string{
			"service_district_ids": {"one or more districts do not exist"},
		})
	}

	agency := req.ToModel()
	agency.ServiceDistricts = districts
	if err := agencyService.CreateAgency(ctrl.DB, agency); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Agency created successfully", dto.FromAgencyModel(agency))
}
