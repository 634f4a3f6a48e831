// internals/features/complaints/service/complaint_service.go
package service

import (
	"encoding/json"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"citizenvoice_backend/internals/constants"
	agencyModel "citizenvoice_backend/internals/features/agencies/model"
	complaintModel "citizenvoice_backend/internals/features/complaints/model"
	geoModel "citizenvoice_backend/internals/features/geography/model"
	helper "citizenvoice_backend/internals/helpers"
)

// CreateComplaint validates the village, stores the optional attachment, and
// inserts the complaint with assignment resolution inside one transaction so
// the resolved agency is consistent with the row being written. Resolution
// failure degrades to unassigned; it never blocks submission.
func CreateComplaint(db *gorm.DB, ownerID uuid.UUID, complaint *complaintModel.ComplaintModel, attachment *multipart.FileHeader) (*complaintModel.ComplaintModel, error) {
	if !constants.IsValidCategory(complaint.ComplaintCategory) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Unknown complaint category")
	}

	var village geoModel.VillageModel
	err := db.
		Preload("Cell.Sector.District.Province").
		First(&village, "village_id = ?", complaint.ComplaintVillageID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Village does not exist")
		}
		return nil, err
	}

	var storedURL string
	if attachment != nil {
		url, meta, err := helper.SaveComplaintAttachment(attachment)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		storedURL = url
		complaint.ComplaintAttachmentURL = &url
		if raw, err := json.Marshal(meta); err == nil {
			complaint.ComplaintAttachmentMeta = raw
		}
	}

	complaint.ComplaintUserID = ownerID

	var resolved *agencyModel.AgencyModel
	err = db.Transaction(func(tx *gorm.DB) error {
		agency, err := ResolveAssignment(NewAgencyDirectory(tx), complaint.ComplaintCategory, &village)
		if err != nil {
			return err
		}
		if agency != nil {
			resolved = agency
			complaint.ComplaintAssignedAgencyID = &agency.AgencyID
		}
		return tx.Create(complaint).Error
	})
	if err != nil {
		// the row never landed, so the stored file is an orphan
		if storedURL != "" {
			_ = helper.RemoveStoredAttachment(storedURL)
		}
		return nil, err
	}

	complaint.Village = &village
	complaint.AssignedAgency = resolved
	return complaint, nil
}

// OwnedComplaint fetches a complaint scoped to its owner. Missing and
// not-owned collapse into the same 404 so callers cannot probe other users'
// complaints.
func OwnedComplaint(db *gorm.DB, ownerID, complaintID uuid.UUID) (*complaintModel.ComplaintModel, error) {
	var complaint complaintModel.ComplaintModel
	err := db.
		Preload("Village.Cell.Sector.District.Province").
		Preload("AssignedAgency").
		Where("complaint_id = ? AND complaint_user_id = ?", complaintID, ownerID).
		First(&complaint).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Complaint not found or not owned by user")
		}
		return nil, err
	}
	return &complaint, nil
}

// UpdateStatusForAgency mutates a complaint's status, scoped to the agency
// it is assigned to.
func UpdateStatusForAgency(db *gorm.DB, agencyID, complaintID uuid.UUID, status string) (*complaintModel.ComplaintModel, error) {
	if !constants.IsValidStatus(status) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Unknown complaint status")
	}

	var complaint complaintModel.ComplaintModel
	err := db.
		Where("complaint_id = ? AND complaint_assigned_agency_id = ?", complaintID, agencyID).
		First(&complaint).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Complaint not found or not assigned to this agency")
		}
		return nil, err
	}

	if err := db.Model(&complaint).Update("complaint_status", status).Error; err != nil {
		return nil, err
	}
	complaint.ComplaintStatus = status
	return &complaint, nil
}
