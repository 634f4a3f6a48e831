// internals/features/responses/service/response_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	complaintModel "citizenvoice_backend/internals/features/complaints/model"
	responseModel "citizenvoice_backend/internals/features/responses/model"
)

// backfillFromComplaint copies the denormalized owner and assigned-agency
// snapshot from the parent complaint. Done once, at creation; later
// reassignment of the complaint does not touch existing responses.
func backfillFromComplaint(r *responseModel.ResponseModel, complaint *complaintModel.ComplaintModel) {
	if r.ResponseComplaintOwnerID == uuid.Nil {
		r.ResponseComplaintOwnerID = complaint.ComplaintUserID
	}
	if r.ResponseAssignedAgencyID == nil && complaint.ComplaintAssignedAgencyID != nil {
		id := *complaint.ComplaintAssignedAgencyID
		r.ResponseAssignedAgencyID = &id
	}
}

// CreateCitizenResponse lets the complaint owner respond on their own
// complaint. A complaint that does not exist or belongs to someone else
// yields the same 404, deliberately.
func CreateCitizenResponse(db *gorm.DB, userID, complaintID uuid.UUID, message string, isPublic bool) (*responseModel.ResponseModel, error) {
	var complaint complaintModel.ComplaintModel
	err := db.Where("complaint_id = ? AND complaint_user_id = ?", complaintID, userID).
		First(&complaint).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Complaint not found or not owned by user")
		}
		return nil, err
	}

	response := &responseModel.ResponseModel{
		ResponseComplaintID:      complaint.ComplaintID,
		ResponseResponderID:      userID,
		ResponseMessage:          message,
		ResponseIsPublic:         isPublic,
		ResponseIsAgencyResponse: false,
	}
	backfillFromComplaint(response, &complaint)

	if err := db.Create(response).Error; err != nil {
		return nil, err
	}
	return response, nil
}

// CreateAgencyResponse lets a user affiliated with the complaint's currently
// assigned agency respond. is_public=false produces an internal note that
// the modeled list endpoints never surface.
func CreateAgencyResponse(db *gorm.DB, userID, agencyID, complaintID uuid.UUID, message string, isPublic bool) (*responseModel.ResponseModel, error) {
	var complaint complaintModel.ComplaintModel
	err := db.Where("complaint_id = ? AND complaint_assigned_agency_id = ?", complaintID, agencyID).
		First(&complaint).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Complaint not found or not assigned to this agency")
		}
		return nil, err
	}

	response := &responseModel.ResponseModel{
		ResponseComplaintID:      complaint.ComplaintID,
		ResponseResponderID:      userID,
		ResponseAgencyID:         &agencyID,
		ResponseMessage:          message,
		ResponseIsPublic:         isPublic,
		ResponseIsAgencyResponse: true,
	}
	backfillFromComplaint(response, &complaint)

	if err := db.Create(response).Error; err != nil {
		return nil, err
	}
	return response, nil
}

// PublicResponses returns the is_public subset for a complaint, oldest
// first. Private responses are never returned here, not even to the owner.
func PublicResponses(db *gorm.DB, complaintID uuid.UUID) ([]responseModel.ResponseModel, error) {
	var responses []responseModel.ResponseModel
	err := db.
		Preload("Responder").
		Preload("Agency").
		Where("response_complaint_id = ? AND response_is_public = true", complaintID).
		Order("response_created_at ASC").
		Find(&responses).Error
	return responses, err
}

// FeedForUser loads every response the user may see in their feed: responses
// on complaints they own plus responses they authored, newest first.
func FeedForUser(db *gorm.DB, userID uuid.UUID) ([]responseModel.ResponseModel, error) {
	var responses []responseModel.ResponseModel
	err := db.
		Preload("Complaint").
		Preload("Responder").
		Preload("Agency").
		Where("response_complaint_owner_id = ? OR response_responder_id = ?", userID, userID).
		Order("response_created_at DESC").
		Find(&responses).Error
	return responses, err
}

// Partition splits a feed into sent (authored by the requester) and received
// (everything else). Classification keys purely on the responder, not on
// is_public.
func Partition(responses []responseModel.ResponseModel, requesterID uuid.UUID) (sent, received []responseModel.ResponseModel) {
	sent = []responseModel.ResponseModel{}
	received = []responseModel.ResponseModel{}
	for _, r := range responses {
		if r.ResponseResponderID == requesterID {
			sent = append(sent, r)
		} else {
			received = append(received, r)
		}
	}
	return sent, received
}
