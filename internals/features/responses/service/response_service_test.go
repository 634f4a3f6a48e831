package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	complaintModel "citizenvoice_backend/internals/features/complaints/model"
	responseModel "citizenvoice_backend/internals/features/responses/model"
)

func TestPartition(t *testing.T) {
	owner := uuid.New()
	agencyUser := uuid.New()

	mine := responseModel.ResponseModel{
		ResponseID:               uuid.New(),
		ResponseComplaintOwnerID: owner,
		ResponseResponderID:      owner,
	}
	theirsPublic := responseModel.ResponseModel{
		ResponseID:               uuid.New(),
		ResponseComplaintOwnerID: owner,
		ResponseResponderID:      agencyUser,
		ResponseIsPublic:         true,
	}
	theirsPrivate := responseModel.ResponseModel{
		ResponseID:               uuid.New(),
		ResponseComplaintOwnerID: owner,
		ResponseResponderID:      agencyUser,
		ResponseIsPublic:         false,
	}

	sent, received := Partition([]responseModel.ResponseModel{mine, theirsPublic, theirsPrivate}, owner)

	require.Len(t, sent, 1)
	assert.Equal(t, mine.ResponseID, sent[0].ResponseID)

	// is_public plays no role in the sent/received split
	require.Len(t, received, 2)
	assert.Equal(t, theirsPublic.ResponseID, received[0].ResponseID)
	assert.Equal(t, theirsPrivate.ResponseID, received[1].ResponseID)
}

func TestPartition_EmptyFeed(t *testing.T) {
	sent, received := Partition(nil, uuid.New())

	// callers serialize these; they must be empty slices, not nil
	require.NotNil(t, sent)
	require.NotNil(t, received)
	assert.Empty(t, sent)
	assert.Empty(t, received)
}

func TestBackfillFromComplaint(t *testing.T) {
	ownerID := uuid.New()
	agencyID := uuid.New()
	complaint := &complaintModel.ComplaintModel{
		ComplaintID:               uuid.New(),
		ComplaintUserID:           ownerID,
		ComplaintAssignedAgencyID: &agencyID,
	}

	r := &responseModel.ResponseModel{ResponseComplaintID: complaint.ComplaintID}
	backfillFromComplaint(r, complaint)

	assert.Equal(t, ownerID, r.ResponseComplaintOwnerID)
	require.NotNil(t, r.ResponseAssignedAgencyID)
	assert.Equal(t, agencyID, *r.ResponseAssignedAgencyID)
	assert.NotSame(t, complaint.ComplaintAssignedAgencyID, r.ResponseAssignedAgencyID)

	// reassigning the complaint later must not leak into the snapshot
	want := agencyID
	*complaint.ComplaintAssignedAgencyID = uuid.New()
	assert.Equal(t, want, *r.ResponseAssignedAgencyID)
}

func TestBackfillFromComplaint_Unassigned(t *testing.T) {
	complaint := &complaintModel.ComplaintModel{
		ComplaintID:     uuid.New(),
		ComplaintUserID: uuid.New(),
	}

	r := &responseModel.ResponseModel{ResponseComplaintID: complaint.ComplaintID}
	backfillFromComplaint(r, complaint)

	assert.Equal(t, complaint.ComplaintUserID, r.ResponseComplaintOwnerID)
	assert.Nil(t, r.ResponseAssignedAgencyID)
}
